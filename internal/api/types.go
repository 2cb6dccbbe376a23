package api

import (
	"encoding/json"

	"github.com/smolder-dev/smolderctl/internal/schema"
)

// FunctionSchema describes one contract function as the server reports it.
type FunctionSchema struct {
	Name            string               `json:"name"`
	Signature       string               `json:"signature"`
	Inputs          []schema.ParamSchema `json:"inputs"`
	Outputs         []schema.ParamSchema `json:"outputs"`
	StateMutability string               `json:"state_mutability"`
}

// IsPayable reports whether the function accepts an attached value.
func (f FunctionSchema) IsPayable() bool { return f.StateMutability == "payable" }

// FunctionList is the server's read/write categorization of a deployment's ABI.
type FunctionList struct {
	Read  []FunctionSchema `json:"read"`
	Write []FunctionSchema `json:"write"`
}

// ConstructorSchema describes an artifact's constructor.
type ConstructorSchema struct {
	Inputs          []schema.ParamSchema `json:"inputs"`
	StateMutability string               `json:"state_mutability"`
}

// IsPayable reports whether the constructor accepts an attached value.
func (c ConstructorSchema) IsPayable() bool { return c.StateMutability == "payable" }

// ArtifactInfo is one entry of the artifact listing.
type ArtifactInfo struct {
	Name           string `json:"name"`
	SourcePath     string `json:"source_path"`
	HasConstructor bool   `json:"has_constructor"`
	HasBytecode    bool   `json:"has_bytecode"`
	InRegistry     bool   `json:"in_registry"`
}

// ArtifactDetails is the compiled-contract metadata behind a deploy.
type ArtifactDetails struct {
	Name        string             `json:"name"`
	SourcePath  string             `json:"source_path"`
	Constructor *ConstructorSchema `json:"constructor"`
	HasBytecode bool               `json:"has_bytecode"`
	InRegistry  bool               `json:"in_registry"`
}

// Deployment is one deployed contract instance.
type Deployment struct {
	ID           int64  `json:"id"`
	ContractName string `json:"contract_name"`
	NetworkName  string `json:"network_name"`
	ChainID      int64  `json:"chain_id"`
	Address      string `json:"address"`
	Deployer     string `json:"deployer"`
	TxHash       string `json:"tx_hash"`
	Version      int    `json:"version"`
	DeployedAt   string `json:"deployed_at"`
	IsCurrent    bool   `json:"is_current"`
}

// Wallet is a named signing identity held by the server.
type Wallet struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Network is a named chain the server can reach.
type Network struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpc_url"`
	ChainID int64  `json:"chain_id"`
}

// HistoryEntry is one recorded invocation of a deployment.
type HistoryEntry struct {
	ID                int64           `json:"id"`
	DeploymentID      int64           `json:"deployment_id"`
	ContractName      string          `json:"contract_name"`
	WalletName        string          `json:"wallet_name"`
	FunctionName      string          `json:"function_name"`
	FunctionSignature string          `json:"function_signature"`
	InputParams       json.RawMessage `json:"input_params"`
	CallType          string          `json:"call_type"` // "read" | "write"
	Result            json.RawMessage `json:"result"`
	TxHash            string          `json:"tx_hash"`
	BlockNumber       *int64          `json:"block_number"`
	Status            string          `json:"status"` // "pending" | "success" | "failed" | "reverted"
	ErrorMessage      string          `json:"error_message"`
	CreatedAt         string          `json:"created_at"`
	ConfirmedAt       string          `json:"confirmed_at"`
}

// Pending reports whether the entry still awaits confirmation.
func (h HistoryEntry) Pending() bool { return h.Status == "pending" }

// CallRequest is the body of POST /deployments/{id}/call.
type CallRequest struct {
	FunctionName string         `json:"function_name"`
	Params       []schema.Value `json:"params"`
}

// CallResponse carries a read invocation's decoded result.
type CallResponse struct {
	Result json.RawMessage `json:"result"`
}

// SendRequest is the body of POST /deployments/{id}/send.
type SendRequest struct {
	FunctionName string         `json:"function_name"`
	Params       []schema.Value `json:"params"`
	WalletName   string         `json:"wallet_name"`
	Value        string         `json:"value,omitempty"`
}

// SendResponse carries a write invocation's transaction identity.
type SendResponse struct {
	TxHash    string `json:"tx_hash"`
	HistoryID int64  `json:"history_id"`
}

// DeployRequest is the body of POST /deploy.
type DeployRequest struct {
	ArtifactName    string         `json:"artifact_name"`
	NetworkName     string         `json:"network_name"`
	WalletName      string         `json:"wallet_name"`
	ConstructorArgs []schema.Value `json:"constructor_args"`
	Value           string         `json:"value,omitempty"`
}

// DeployResponse carries a deployment transaction's identity.
type DeployResponse struct {
	TxHash          string `json:"tx_hash"`
	ContractAddress string `json:"contract_address"`
	DeploymentID    *int64 `json:"deployment_id"`
}
