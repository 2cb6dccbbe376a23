package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the server. Message is the response
// body verbatim — the server replies with plain-text errors.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned HTTP %d", e.Status)
	}
	return e.Message
}

// Client talks to a smolder server. All state a command needs — networks,
// wallets, contracts, deployments, history — lives behind this boundary.
type Client struct {
	base   string
	token  string
	client *http.Client
}

// New creates a Client for the given base URL ("http://localhost:4000").
// token, when non-empty, is attached as a bearer credential.
func New(baseURL, token string) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		token:  token,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListDeployments returns the deployments the server knows about.
func (c *Client) ListDeployments(ctx context.Context) ([]Deployment, error) {
	var out []Deployment
	err := c.get(ctx, "/api/deployments", &out)
	return out, err
}

// ListFunctions returns a deployment's functions split into read and write.
func (c *Client) ListFunctions(ctx context.Context, deploymentID int64) (*FunctionList, error) {
	var out FunctionList
	err := c.get(ctx, fmt.Sprintf("/api/deployments/%d/functions", deploymentID), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Call executes a read-only function.
func (c *Client) Call(ctx context.Context, deploymentID int64, req CallRequest) (*CallResponse, error) {
	var out CallResponse
	err := c.post(ctx, fmt.Sprintf("/api/deployments/%d/call", deploymentID), req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Send executes a state-changing function as a signed transaction.
func (c *Client) Send(ctx context.Context, deploymentID int64, req SendRequest) (*SendResponse, error) {
	var out SendResponse
	err := c.post(ctx, fmt.Sprintf("/api/deployments/%d/send", deploymentID), req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListHistory returns a deployment's call history, newest first.
func (c *Client) ListHistory(ctx context.Context, deploymentID int64) ([]HistoryEntry, error) {
	var out []HistoryEntry
	err := c.get(ctx, fmt.Sprintf("/api/deployments/%d/history", deploymentID), &out)
	return out, err
}

// ListArtifacts returns the compiled artifacts available to deploy.
func (c *Client) ListArtifacts(ctx context.Context) ([]ArtifactInfo, error) {
	var out []ArtifactInfo
	err := c.get(ctx, "/api/artifacts", &out)
	return out, err
}

// GetArtifactDetails returns an artifact's constructor schema and metadata.
func (c *Client) GetArtifactDetails(ctx context.Context, name string) (*ArtifactDetails, error) {
	var out ArtifactDetails
	err := c.get(ctx, "/api/artifacts/"+name, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Deploy submits a deployment transaction for an artifact.
func (c *Client) Deploy(ctx context.Context, req DeployRequest) (*DeployResponse, error) {
	var out DeployResponse
	err := c.post(ctx, "/api/deploy", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWallets returns the server's named wallets.
func (c *Client) ListWallets(ctx context.Context) ([]Wallet, error) {
	var out []Wallet
	err := c.get(ctx, "/api/wallets", &out)
	return out, err
}

// ListNetworks returns the server's configured networks.
func (c *Client) ListNetworks(ctx context.Context) ([]Network, error) {
	var out []Network
	err := c.get(ctx, "/api/networks", &out)
	return out, err
}

// --- transport ---

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, data, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}
