package ethrpc

import (
	"crypto/tls"
	"errors"
	"net/http"
	"time"
)

var (
	// ErrNoEndpointConfigured indicates that neither an HTTP nor a WebSocket
	// endpoint was configured. The client cannot be constructed.
	ErrNoEndpointConfigured = errors.New("no endpoint configured")

	// ErrHTTPNotConfigured indicates an HTTP-only code path was called on a
	// client configured without an HTTP endpoint.
	ErrHTTPNotConfigured = errors.New("http endpoint not configured")

	// ErrWebSocketNotConfigured indicates a WebSocket code path was called on
	// a client configured without a WebSocket endpoint. No connection attempt
	// is made in that case.
	ErrWebSocketNotConfigured = errors.New("websocket endpoint not configured")
)

// Config carries every knob the client needs at construction. There is no
// process-wide mutable configuration: two clients with different endpoints
// coexist without interference.
//
// At least one of HTTPEndpoint and WSEndpoint must be set. A client with only
// one transport configured fails the other transport's calls with a
// configuration error.
type Config struct {
	// HTTPEndpoint is the JSON-RPC HTTP endpoint (e.g. "https://node:8545").
	HTTPEndpoint string `validate:"omitempty,url"`

	// WSEndpoint is the JSON-RPC WebSocket endpoint (e.g. "wss://node:8546").
	WSEndpoint string `validate:"omitempty,url"`

	// HTTPClient performs the HTTP round trips. Session policy, including any
	// retry behavior, belongs to this client; the SDK itself never retries.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// HandshakeTimeout bounds the WebSocket handshake. Defaults to 10s.
	HandshakeTimeout time.Duration

	// EnableCompression negotiates per-message compression on the WebSocket.
	EnableCompression bool

	// TLSConfig is used for TLS on the WebSocket dial, e.g. for certificate
	// pinning. HTTP TLS policy belongs to HTTPClient.
	TLSConfig *tls.Config

	// StreamBuffer is the per-subscriber buffer of the result and status
	// streams. Defaults to 64.
	StreamBuffer int
}
