// Package jsonrpc defines the JSON-RPC 2.0 envelope types shared by every
// transport in this SDK, along with the correlation id codec used to route
// asynchronous WebSocket responses back to the call that issued them.
package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the JSON-RPC protocol version sent on every request.
const Version = "2.0"

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// Request represents a JSON-RPC 2.0 request envelope.
//
// Params are positional: the slice is marshaled in the exact order the caller
// supplied them. Optional parameters that are absent must simply not be
// appended, rather than appended as nil, unless the method's wire format
// requires a null placeholder to preserve position.
type Request struct {
	JsonRPC string `json:"jsonrpc"`          // JSON-RPC protocol version (always "2.0")
	ID      string `json:"id"`               // Correlation id; see NewCallID for the WebSocket form
	Method  string `json:"method"`           // Remote method name (e.g. "eth_blockNumber")
	Params  []any  `json:"params,omitempty"` // Positional parameters, already validated by the caller
}

// NewRequest builds a request envelope for the given method, correlation id,
// and positional parameters. It has no side effects.
func NewRequest(method, id string, params ...any) Request {
	return Request{
		JsonRPC: Version,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Response represents a standard JSON-RPC 2.0 response.
type Response struct {
	JsonRPC string `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	ID      string `json:"id"`      // Correlation id echoed back by the server
	Error   *struct {
		Code    int    `json:"code"`    // Error code defined by the JSON-RPC spec or custom server logic
		Message string `json:"message"` // Human-readable error message
	} `json:"error"`
	Result json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r Response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}
