package ui

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Selector computes the 4-byte selector for a canonical function signature
// like "transfer(address,uint256)". Display only — the server does all real
// encoding.
func Selector(signature string) string {
	if signature == "" {
		return ""
	}
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return "0x" + hex.EncodeToString(h.Sum(nil)[:4])
}
