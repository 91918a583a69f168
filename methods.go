package ethrpc

import (
	"context"

	"github.com/gabapcia/ethrpc/ethtypes"
)

// Typed blocking wrappers over the HTTP dispatch primitive, one per RPC
// method. Parameters are already validated by their ethtypes constructors, so
// no invalid value can reach the wire; optional parameters that are absent
// are omitted from the positional list entirely.

// ClientVersion calls web3_clientVersion.
func (c *Client) ClientVersion(ctx context.Context) (string, error) {
	var out string
	err := c.Call(ctx, "web3_clientVersion", &out)
	return out, err
}

// Sha3 calls web3_sha3, returning the Keccak-256 hash of the given data.
func (c *Client) Sha3(ctx context.Context, data ethtypes.Data) (ethtypes.Data, error) {
	var out ethtypes.Data
	err := c.Call(ctx, "web3_sha3", &out, data)
	return out, err
}

// NetVersion calls net_version.
func (c *Client) NetVersion(ctx context.Context) (string, error) {
	var out string
	err := c.Call(ctx, "net_version", &out)
	return out, err
}

// NetListening calls net_listening.
func (c *Client) NetListening(ctx context.Context) (bool, error) {
	var out bool
	err := c.Call(ctx, "net_listening", &out)
	return out, err
}

// NetPeerCount calls net_peerCount.
func (c *Client) NetPeerCount(ctx context.Context) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "net_peerCount", &out)
	return out, err
}

// ProtocolVersion calls eth_protocolVersion.
func (c *Client) ProtocolVersion(ctx context.Context) (string, error) {
	var out string
	err := c.Call(ctx, "eth_protocolVersion", &out)
	return out, err
}

// Syncing calls eth_syncing.
func (c *Client) Syncing(ctx context.Context) (ethtypes.SyncStatus, error) {
	var out ethtypes.SyncStatus
	err := c.Call(ctx, "eth_syncing", &out)
	return out, err
}

// Coinbase calls eth_coinbase.
func (c *Client) Coinbase(ctx context.Context) (ethtypes.Address, error) {
	var out ethtypes.Address
	err := c.Call(ctx, "eth_coinbase", &out)
	return out, err
}

// Mining calls eth_mining.
func (c *Client) Mining(ctx context.Context) (bool, error) {
	var out bool
	err := c.Call(ctx, "eth_mining", &out)
	return out, err
}

// Hashrate calls eth_hashrate.
func (c *Client) Hashrate(ctx context.Context) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_hashrate", &out)
	return out, err
}

// GasPrice calls eth_gasPrice.
func (c *Client) GasPrice(ctx context.Context) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_gasPrice", &out)
	return out, err
}

// Accounts calls eth_accounts.
func (c *Client) Accounts(ctx context.Context) ([]ethtypes.Address, error) {
	var out []ethtypes.Address
	err := c.Call(ctx, "eth_accounts", &out)
	return out, err
}

// BlockNumber calls eth_blockNumber.
func (c *Client) BlockNumber(ctx context.Context) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_blockNumber", &out)
	return out, err
}

// GetBalance calls eth_getBalance for the given address at the given block.
func (c *Client) GetBalance(ctx context.Context, addr ethtypes.Address, block ethtypes.BlockNumberOrTag) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_getBalance", &out, addr, block)
	return out, err
}

// GetStorageAt calls eth_getStorageAt.
func (c *Client) GetStorageAt(ctx context.Context, addr ethtypes.Address, position ethtypes.Quantity, block ethtypes.BlockNumberOrTag) (ethtypes.Data, error) {
	var out ethtypes.Data
	err := c.Call(ctx, "eth_getStorageAt", &out, addr, position, block)
	return out, err
}

// GetTransactionCount calls eth_getTransactionCount.
func (c *Client) GetTransactionCount(ctx context.Context, addr ethtypes.Address, block ethtypes.BlockNumberOrTag) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_getTransactionCount", &out, addr, block)
	return out, err
}

// GetBlockTransactionCountByHash calls eth_getBlockTransactionCountByHash.
func (c *Client) GetBlockTransactionCountByHash(ctx context.Context, h ethtypes.Hash) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_getBlockTransactionCountByHash", &out, h)
	return out, err
}

// GetBlockTransactionCountByNumber calls eth_getBlockTransactionCountByNumber.
func (c *Client) GetBlockTransactionCountByNumber(ctx context.Context, block ethtypes.BlockNumberOrTag) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_getBlockTransactionCountByNumber", &out, block)
	return out, err
}

// GetUncleCountByBlockHash calls eth_getUncleCountByBlockHash.
func (c *Client) GetUncleCountByBlockHash(ctx context.Context, h ethtypes.Hash) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_getUncleCountByBlockHash", &out, h)
	return out, err
}

// GetUncleCountByBlockNumber calls eth_getUncleCountByBlockNumber.
func (c *Client) GetUncleCountByBlockNumber(ctx context.Context, block ethtypes.BlockNumberOrTag) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_getUncleCountByBlockNumber", &out, block)
	return out, err
}

// GetCode calls eth_getCode.
func (c *Client) GetCode(ctx context.Context, addr ethtypes.Address, block ethtypes.BlockNumberOrTag) (ethtypes.Data, error) {
	var out ethtypes.Data
	err := c.Call(ctx, "eth_getCode", &out, addr, block)
	return out, err
}

// Sign calls eth_sign. The node signs with the key of the given unlocked
// account; this SDK does no signing of its own.
func (c *Client) Sign(ctx context.Context, addr ethtypes.Address, data ethtypes.Data) (ethtypes.Data, error) {
	var out ethtypes.Data
	err := c.Call(ctx, "eth_sign", &out, addr, data)
	return out, err
}

// SignTransaction calls eth_signTransaction.
func (c *Client) SignTransaction(ctx context.Context, msg ethtypes.CallMsg) (ethtypes.Data, error) {
	var out ethtypes.Data
	err := c.Call(ctx, "eth_signTransaction", &out, msg)
	return out, err
}

// SendTransaction calls eth_sendTransaction.
func (c *Client) SendTransaction(ctx context.Context, msg ethtypes.CallMsg) (ethtypes.Hash, error) {
	var out ethtypes.Hash
	err := c.Call(ctx, "eth_sendTransaction", &out, msg)
	return out, err
}

// SendRawTransaction calls eth_sendRawTransaction with an already signed
// transaction payload.
func (c *Client) SendRawTransaction(ctx context.Context, data ethtypes.Data) (ethtypes.Hash, error) {
	var out ethtypes.Hash
	err := c.Call(ctx, "eth_sendRawTransaction", &out, data)
	return out, err
}

// CallContract calls eth_call, executing the message against the state at the
// given block without creating a transaction.
func (c *Client) CallContract(ctx context.Context, msg ethtypes.CallMsg, block ethtypes.BlockNumberOrTag) (ethtypes.Data, error) {
	var out ethtypes.Data
	err := c.Call(ctx, "eth_call", &out, msg, block)
	return out, err
}

// EstimateGas calls eth_estimateGas.
func (c *Client) EstimateGas(ctx context.Context, msg ethtypes.CallMsg) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_estimateGas", &out, msg)
	return out, err
}

// GetBlockByHash calls eth_getBlockByHash. With fullTransactions the block
// carries full transaction objects, otherwise bare hashes. Returns nil when
// no block matches.
func (c *Client) GetBlockByHash(ctx context.Context, h ethtypes.Hash, fullTransactions bool) (*ethtypes.Block, error) {
	var out *ethtypes.Block
	err := c.Call(ctx, "eth_getBlockByHash", &out, h, fullTransactions)
	return out, err
}

// GetBlockByNumber calls eth_getBlockByNumber. Returns nil when no block
// matches.
func (c *Client) GetBlockByNumber(ctx context.Context, block ethtypes.BlockNumberOrTag, fullTransactions bool) (*ethtypes.Block, error) {
	var out *ethtypes.Block
	err := c.Call(ctx, "eth_getBlockByNumber", &out, block, fullTransactions)
	return out, err
}

// GetTransactionByHash calls eth_getTransactionByHash. Returns nil when no
// transaction matches.
func (c *Client) GetTransactionByHash(ctx context.Context, h ethtypes.Hash) (*ethtypes.Transaction, error) {
	var out *ethtypes.Transaction
	err := c.Call(ctx, "eth_getTransactionByHash", &out, h)
	return out, err
}

// GetTransactionByBlockHashAndIndex calls eth_getTransactionByBlockHashAndIndex.
func (c *Client) GetTransactionByBlockHashAndIndex(ctx context.Context, h ethtypes.Hash, index ethtypes.Quantity) (*ethtypes.Transaction, error) {
	var out *ethtypes.Transaction
	err := c.Call(ctx, "eth_getTransactionByBlockHashAndIndex", &out, h, index)
	return out, err
}

// GetTransactionByBlockNumberAndIndex calls eth_getTransactionByBlockNumberAndIndex.
func (c *Client) GetTransactionByBlockNumberAndIndex(ctx context.Context, block ethtypes.BlockNumberOrTag, index ethtypes.Quantity) (*ethtypes.Transaction, error) {
	var out *ethtypes.Transaction
	err := c.Call(ctx, "eth_getTransactionByBlockNumberAndIndex", &out, block, index)
	return out, err
}

// GetTransactionReceipt calls eth_getTransactionReceipt. Returns nil while
// the transaction is pending or unknown.
func (c *Client) GetTransactionReceipt(ctx context.Context, h ethtypes.Hash) (*ethtypes.TransactionReceipt, error) {
	var out *ethtypes.TransactionReceipt
	err := c.Call(ctx, "eth_getTransactionReceipt", &out, h)
	return out, err
}

// GetUncleByBlockHashAndIndex calls eth_getUncleByBlockHashAndIndex.
func (c *Client) GetUncleByBlockHashAndIndex(ctx context.Context, h ethtypes.Hash, index ethtypes.Quantity) (*ethtypes.Block, error) {
	var out *ethtypes.Block
	err := c.Call(ctx, "eth_getUncleByBlockHashAndIndex", &out, h, index)
	return out, err
}

// GetUncleByBlockNumberAndIndex calls eth_getUncleByBlockNumberAndIndex.
func (c *Client) GetUncleByBlockNumberAndIndex(ctx context.Context, block ethtypes.BlockNumberOrTag, index ethtypes.Quantity) (*ethtypes.Block, error) {
	var out *ethtypes.Block
	err := c.Call(ctx, "eth_getUncleByBlockNumberAndIndex", &out, block, index)
	return out, err
}

// NewFilter calls eth_newFilter, returning the new filter's id.
func (c *Client) NewFilter(ctx context.Context, query ethtypes.FilterQuery) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_newFilter", &out, query)
	return out, err
}

// NewBlockFilter calls eth_newBlockFilter.
func (c *Client) NewBlockFilter(ctx context.Context) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_newBlockFilter", &out)
	return out, err
}

// NewPendingTransactionFilter calls eth_newPendingTransactionFilter.
func (c *Client) NewPendingTransactionFilter(ctx context.Context) (ethtypes.Quantity, error) {
	var out ethtypes.Quantity
	err := c.Call(ctx, "eth_newPendingTransactionFilter", &out)
	return out, err
}

// UninstallFilter calls eth_uninstallFilter.
func (c *Client) UninstallFilter(ctx context.Context, id ethtypes.Quantity) (bool, error) {
	var out bool
	err := c.Call(ctx, "eth_uninstallFilter", &out, id)
	return out, err
}

// GetFilterChanges calls eth_getFilterChanges.
func (c *Client) GetFilterChanges(ctx context.Context, id ethtypes.Quantity) (ethtypes.FilterChanges, error) {
	var out ethtypes.FilterChanges
	err := c.Call(ctx, "eth_getFilterChanges", &out, id)
	return out, err
}

// GetFilterLogs calls eth_getFilterLogs.
func (c *Client) GetFilterLogs(ctx context.Context, id ethtypes.Quantity) ([]ethtypes.Log, error) {
	var out []ethtypes.Log
	err := c.Call(ctx, "eth_getFilterLogs", &out, id)
	return out, err
}

// GetLogs calls eth_getLogs.
func (c *Client) GetLogs(ctx context.Context, query ethtypes.FilterQuery) ([]ethtypes.Log, error) {
	var out []ethtypes.Log
	err := c.Call(ctx, "eth_getLogs", &out, query)
	return out, err
}
