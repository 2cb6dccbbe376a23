package config

import (
	"fmt"
	"runtime"

	"github.com/99designs/keyring"
)

const keychainService = "smolderctl"

const tokenKey = keychainService + ".api-token"

// Keystore wraps OS keychain access for the server API token. Private keys
// never pass through here — the server holds those.
type Keystore struct {
	ring keyring.Keyring
}

// DefaultKeystore returns a keystore backed by the OS keychain.
func DefaultKeystore() *Keystore {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		// Use file backend as ultimate fallback.
		ring, _ = keyring.Open(keyring.Config{
			ServiceName:     keychainService,
			AllowedBackends: []keyring.BackendType{keyring.FileBackend},
		})
	}

	return &Keystore{ring: ring}
}

// SetToken stores the server API token.
func (k *Keystore) SetToken(token string) error {
	if k.ring == nil {
		return fmt.Errorf("no keychain backend available")
	}
	return k.ring.Set(keyring.Item{Key: tokenKey, Data: []byte(token)})
}

// Token returns the stored API token, or "" when none is set.
func (k *Keystore) Token() string {
	if k.ring == nil {
		return ""
	}
	item, err := k.ring.Get(tokenKey)
	if err != nil {
		return ""
	}
	return string(item.Data)
}

// ClearToken removes the stored API token.
func (k *Keystore) ClearToken() error {
	if k.ring == nil {
		return nil
	}
	err := k.ring.Remove(tokenKey)
	if err == keyring.ErrKeyNotFound {
		return nil
	}
	return err
}
