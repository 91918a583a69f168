// Package ethrpc exposes the Ethereum JSON-RPC method set as strongly typed
// calls over two transports: request/response HTTP, and one persistent
// WebSocket shared by any number of fire-and-forget calls whose results come
// back on a broadcast stream.
//
// One generic dispatch primitive underlies three call styles:
//
//   - blocking typed methods over HTTP (BlockNumber, GetBalance, ...);
//   - CallStream, delivering a single result-or-error on a channel;
//   - CallAsync, writing a correlated frame on the WebSocket and returning
//     immediately; results are observed through SubscribeResults.
//
// The SDK performs no retries and no caching; both are caller policy.
package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/ethrpc/httprpc"
	"github.com/gabapcia/ethrpc/internal/pkg/validator"
	"github.com/gabapcia/ethrpc/internal/pkg/x/chflow"
	"github.com/gabapcia/ethrpc/jsonrpc"
	"github.com/gabapcia/ethrpc/wsrpc"
)

// Client is an Ethereum JSON-RPC client over HTTP and/or WebSocket. Its
// methods are safe for concurrent use; HTTP calls share no mutable state, and
// the WebSocket connection handle is owned exclusively by the transport
// adapter.
type Client struct {
	http httprpc.Client // nil when no HTTP endpoint is configured
	ws   *wsrpc.Conn    // nil when no WebSocket endpoint is configured
}

// New builds a Client from an explicit configuration. It fails with
// ErrNoEndpointConfigured when neither endpoint is set, and with a validation
// error when an endpoint is not a valid URL. No network activity happens
// here; the WebSocket connects lazily on the first ConnectWebSocket call.
func New(cfg Config) (*Client, error) {
	if cfg.HTTPEndpoint == "" && cfg.WSEndpoint == "" {
		return nil, ErrNoEndpointConfigured
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, err
	}

	c := new(Client)

	if cfg.HTTPEndpoint != "" {
		c.http = httprpc.NewClient(cfg.HTTPClient, cfg.HTTPEndpoint)
	}

	if cfg.WSEndpoint != "" {
		opts := []wsrpc.Option{
			wsrpc.WithResultBuffer(cfg.StreamBuffer),
		}
		if cfg.HandshakeTimeout > 0 {
			opts = append(opts, wsrpc.WithHandshakeTimeout(cfg.HandshakeTimeout))
		}
		if cfg.EnableCompression {
			opts = append(opts, wsrpc.WithCompression())
		}
		if cfg.TLSConfig != nil {
			opts = append(opts, wsrpc.WithTLSConfig(cfg.TLSConfig))
		}

		c.ws = wsrpc.New(cfg.WSEndpoint, decodeResult, opts...)
	}

	return c, nil
}

// Call performs one blocking JSON-RPC call over HTTP, decoding the result
// into out (which must be a pointer; pass nil to discard the result). This is
// the generic dispatch primitive behind every typed method.
func (c *Client) Call(ctx context.Context, method string, out any, params ...any) error {
	if c.http == nil {
		return ErrHTTPNotConfigured
	}

	raw, err := c.http.Fetch(ctx, method, params...)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", httprpc.ErrDecode, err)
	}

	return nil
}

// StreamResult is the single item delivered by CallStream: the raw result
// payload, or the error that ended the call.
type StreamResult struct {
	Raw json.RawMessage
	Err error
}

// CallStream is the observable-style adapter over the HTTP dispatch
// primitive: it returns a channel that delivers exactly one StreamResult and
// is then closed. Every error, including a missing HTTP endpoint, arrives on
// the channel rather than synchronously.
func (c *Client) CallStream(ctx context.Context, method string, params ...any) <-chan StreamResult {
	ch := make(chan StreamResult, 1)

	go func() {
		defer close(ch)

		if c.http == nil {
			chflow.Send(ctx, ch, StreamResult{Err: ErrHTTPNotConfigured})
			return
		}

		raw, err := c.http.Fetch(ctx, method, params...)
		chflow.Send(ctx, ch, StreamResult{Raw: raw, Err: err})
	}()

	return ch
}

// CallAsync is the fire-and-forget adapter: it writes one correlated frame on
// the shared WebSocket connection and returns as soon as the frame is queued.
// The correlation id is "<method>|<id>"; the decoded result is later
// published as (id, result) on the stream returned by SubscribeResults.
//
// Only pre-flight failures (missing configuration, serialization, writing on
// a closed connection) are returned here. Everything after the frame is
// written is observable only through the result and status streams.
func (c *Client) CallAsync(ctx context.Context, method string, id int64, params ...any) error {
	if c.ws == nil {
		return ErrWebSocketNotConfigured
	}

	data, err := json.Marshal(jsonrpc.NewRequest(method, jsonrpc.NewCallID(method, id), params...))
	if err != nil {
		return err
	}

	return c.ws.Write(ctx, data)
}

// ConnectWebSocket establishes the persistent WebSocket connection. It is a
// safe no-op while already connected and may be called again after a
// disconnect. Without a configured WebSocket endpoint it fails with
// ErrWebSocketNotConfigured and attempts no connection.
func (c *Client) ConnectWebSocket(ctx context.Context) error {
	if c.ws == nil {
		return ErrWebSocketNotConfigured
	}

	return c.ws.Connect(ctx)
}

// DisconnectWebSocket gracefully closes the WebSocket connection, abandoning
// every in-flight call. It is a no-op when not connected.
func (c *Client) DisconnectWebSocket() {
	if c.ws == nil {
		return
	}

	c.ws.Disconnect()
}

// WebSocketStatus returns the current connection status synchronously. A
// client without a WebSocket endpoint reports the zero (disconnected) status.
func (c *Client) WebSocketStatus() wsrpc.Status {
	if c.ws == nil {
		return wsrpc.Status{}
	}

	return c.ws.Status()
}

// SubscribeStatus registers an observer of connection status transitions.
// The channel first replays the current status, then delivers every
// subsequent transition; the cancel function releases the subscription.
func (c *Client) SubscribeStatus() (<-chan wsrpc.Status, func(), error) {
	if c.ws == nil {
		return nil, nil, ErrWebSocketNotConfigured
	}

	ch, cancel := c.ws.SubscribeStatus()
	return ch, cancel, nil
}

// SubscribeResults registers an observer of the shared (id, result) stream
// carrying every correlated WebSocket response. Delivery is broadcast: every
// subscriber receives every published result.
func (c *Client) SubscribeResults() (<-chan wsrpc.Result, func(), error) {
	if c.ws == nil {
		return nil, nil, ErrWebSocketNotConfigured
	}

	ch, cancel := c.ws.SubscribeResults()
	return ch, cancel, nil
}
