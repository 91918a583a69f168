package ethrpc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/ethrpc/ethtypes"
)

// ErrUnknownMethod indicates a method name with no registered result schema.
var ErrUnknownMethod = errors.New("unknown method")

// decodeFunc decodes a raw JSON-RPC result payload into the typed value
// registered for one method.
type decodeFunc func(json.RawMessage) (any, error)

// decodeInto decodes the payload into a value of type T. A missing result
// field is a decode failure: the response either carried an error object or
// was not a result envelope at all.
func decodeInto[T any](raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing result payload")
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// resultSchemas is the static mapping from method name to the decode target
// for its result. It is fixed at compile time; the WebSocket correlator uses
// it to pick the type to decode into after recovering the method name from a
// correlation id.
var resultSchemas = map[string]decodeFunc{
	"web3_clientVersion": decodeInto[string],
	"web3_sha3":          decodeInto[ethtypes.Data],

	"net_version":   decodeInto[string],
	"net_listening": decodeInto[bool],
	"net_peerCount": decodeInto[ethtypes.Quantity],

	"eth_protocolVersion": decodeInto[string],
	"eth_syncing":         decodeInto[ethtypes.SyncStatus],
	"eth_coinbase":        decodeInto[ethtypes.Address],
	"eth_mining":          decodeInto[bool],
	"eth_hashrate":        decodeInto[ethtypes.Quantity],
	"eth_gasPrice":        decodeInto[ethtypes.Quantity],
	"eth_accounts":        decodeInto[[]ethtypes.Address],
	"eth_blockNumber":     decodeInto[ethtypes.Quantity],

	"eth_getBalance":                       decodeInto[ethtypes.Quantity],
	"eth_getStorageAt":                     decodeInto[ethtypes.Data],
	"eth_getTransactionCount":              decodeInto[ethtypes.Quantity],
	"eth_getBlockTransactionCountByHash":   decodeInto[ethtypes.Quantity],
	"eth_getBlockTransactionCountByNumber": decodeInto[ethtypes.Quantity],
	"eth_getUncleCountByBlockHash":         decodeInto[ethtypes.Quantity],
	"eth_getUncleCountByBlockNumber":       decodeInto[ethtypes.Quantity],
	"eth_getCode":                          decodeInto[ethtypes.Data],

	"eth_sign":               decodeInto[ethtypes.Data],
	"eth_signTransaction":    decodeInto[ethtypes.Data],
	"eth_sendTransaction":    decodeInto[ethtypes.Hash],
	"eth_sendRawTransaction": decodeInto[ethtypes.Hash],
	"eth_call":               decodeInto[ethtypes.Data],
	"eth_estimateGas":        decodeInto[ethtypes.Quantity],

	"eth_getBlockByHash":                      decodeInto[*ethtypes.Block],
	"eth_getBlockByNumber":                    decodeInto[*ethtypes.Block],
	"eth_getTransactionByHash":                decodeInto[*ethtypes.Transaction],
	"eth_getTransactionByBlockHashAndIndex":   decodeInto[*ethtypes.Transaction],
	"eth_getTransactionByBlockNumberAndIndex": decodeInto[*ethtypes.Transaction],
	"eth_getTransactionReceipt":               decodeInto[*ethtypes.TransactionReceipt],
	"eth_getUncleByBlockHashAndIndex":         decodeInto[*ethtypes.Block],
	"eth_getUncleByBlockNumberAndIndex":       decodeInto[*ethtypes.Block],

	"eth_newFilter":                   decodeInto[ethtypes.Quantity],
	"eth_newBlockFilter":              decodeInto[ethtypes.Quantity],
	"eth_newPendingTransactionFilter": decodeInto[ethtypes.Quantity],
	"eth_uninstallFilter":             decodeInto[bool],
	"eth_getFilterChanges":            decodeInto[ethtypes.FilterChanges],
	"eth_getFilterLogs":               decodeInto[[]ethtypes.Log],
	"eth_getLogs":                     decodeInto[[]ethtypes.Log],
}

// decodeResult decodes a raw result payload according to the schema
// registered for method. It fails with ErrUnknownMethod for method names this
// SDK version does not know, which the WebSocket correlator treats as "frame
// not for us".
func decodeResult(method string, result json.RawMessage) (any, error) {
	decode, ok := resultSchemas[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	return decode(result)
}

// Methods returns the names of every RPC method with a registered result
// schema.
func Methods() []string {
	methods := make([]string, 0, len(resultSchemas))
	for m := range resultSchemas {
		methods = append(methods, m)
	}
	return methods
}
