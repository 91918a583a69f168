// Package httprpc implements the HTTP transport adapter: one JSON-RPC 2.0
// request per POST, one response per call, no shared state between calls.
// It is safe to issue any number of calls concurrently.
//
// The adapter performs no retries of its own; retry policy belongs to the
// caller, typically by passing an http.Client built with retry semantics.
package httprpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/ethrpc/jsonrpc"

	"github.com/google/uuid"
)

var (
	// ErrTransport indicates a network-level failure performing the HTTP round trip.
	ErrTransport = errors.New("http transport failure")

	// ErrDecode indicates the response body does not parse as a JSON-RPC response envelope.
	ErrDecode = errors.New("response decode failure")
)

// Client defines the interface for the HTTP JSON-RPC transport.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and positional
	// parameters, returning the raw result payload.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)

	// Do sends a fully built request envelope and returns the decoded response
	// envelope. The server's JSON-RPC error object, if any, is not turned into
	// an error here; use Response.Err.
	Do(ctx context.Context, req jsonrpc.Request) (jsonrpc.Response, error)
}

// client is the default implementation of the Client interface.
type client struct {
	endpoint   string       // URL of the remote JSON-RPC server
	httpClient *http.Client // HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// NewClient constructs a Client that sends JSON-RPC requests to the given
// endpoint. A nil httpClient falls back to http.DefaultClient; cancellation
// and timeouts beyond the client's own configuration are the caller's
// responsibility through ctx.
func NewClient(httpClient *http.Client, endpoint string) *client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Do performs exactly one POST of the serialized envelope and decodes the
// body as a response envelope. Network failures are wrapped in ErrTransport,
// malformed bodies in ErrDecode.
func (c *client) Do(ctx context.Context, reqEnvelope jsonrpc.Request) (jsonrpc.Response, error) {
	body, err := json.Marshal(reqEnvelope)
	if err != nil {
		return jsonrpc.Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return jsonrpc.Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return jsonrpc.Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer res.Body.Close()

	var data jsonrpc.Response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return jsonrpc.Response{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return data, nil
}

// Fetch sends a JSON-RPC request to the remote server with the given method
// and parameters. It returns the raw result as a json.RawMessage, or an error
// when the round trip, the envelope decode, or the server itself fails.
// The request id is a fresh UUID; the transport pairs request and response by
// construction, so no further correlation is needed.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	data, err := c.Do(ctx, jsonrpc.NewRequest(method, uuid.NewString(), params...))
	if err != nil {
		return nil, err
	}

	return data.Result, data.Err()
}
