// Package wsrpc implements the WebSocket transport adapter: one persistent
// connection multiplexing any number of outstanding logical calls, a
// correlator routing inbound frames back to the call that issued them, and a
// status tracker broadcasting every connection lifecycle transition.
//
// Writes are fire-and-forget: Write returns once the frame is queued on the
// wire, and results arrive later on the shared result stream. There is no
// per-call timeout or cancellation; dropping everything in flight requires
// disconnecting the whole connection.
package wsrpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/ethrpc/internal/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is the time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// pongWait is the time allowed to read the next pong message from the peer.
	pongWait = 30 * time.Second

	// pingPeriod is the keep-alive ping interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var (
	// ErrNotConnected indicates a write was attempted with no connection up.
	// The adapter does not queue writes; establishing the connection first is
	// the caller's responsibility.
	ErrNotConnected = errors.New("websocket not connected")

	// ErrConnecting indicates a concurrent connect attempt is still in progress.
	ErrConnecting = errors.New("websocket connect in progress")
)

// connState tracks where the adapter is in its lifecycle.
type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateDisconnected
)

// session is one established connection attempt. The teardown guard ensures
// that whichever of the read loop, ping loop, or an explicit Disconnect
// observes the teardown first is the only one to publish the final status.
type session struct {
	ws       *websocket.Conn
	done     chan struct{}
	teardown sync.Once
}

// Conn owns the one persistent WebSocket connection. It is the only component
// that mutates the connection handle; the status tracker and correlator are
// driven by its events and share its lifetime.
type Conn struct {
	endpoint string
	dialer   *websocket.Dialer

	mu    sync.Mutex
	state connState
	sess  *session

	// writeMu serializes data writes; gorilla/websocket supports only one
	// concurrent writer per connection.
	writeMu sync.Mutex

	status     *statusTracker
	correlator *correlator
}

// config holds construction options for Conn.
type config struct {
	handshakeTimeout  time.Duration
	enableCompression bool
	tlsConfig         *tls.Config
	resultBuffer      int
}

// Option configures the connection before construction.
type Option func(*config)

// WithHandshakeTimeout sets the handshake timeout for the dial. Default: 10s.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *config) {
		c.handshakeTimeout = d
	}
}

// WithCompression enables negotiation of per-message compression.
func WithCompression() Option {
	return func(c *config) {
		c.enableCompression = true
	}
}

// WithTLSConfig sets the TLS configuration used for wss endpoints, e.g. for
// certificate pinning.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *config) {
		c.tlsConfig = cfg
	}
}

// WithResultBuffer sets the per-subscriber buffer of the result and status
// streams. Default: 64.
func WithResultBuffer(n int) Option {
	return func(c *config) {
		c.resultBuffer = n
	}
}

// New creates a connection adapter for the given endpoint. No network
// activity happens until the first Connect call. The decoder maps a method
// name recovered from a correlation id to that method's typed result.
func New(endpoint string, decode ResultDecoder, opts ...Option) *Conn {
	cfg := config{
		handshakeTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Conn{
		endpoint: endpoint,
		dialer: &websocket.Dialer{
			HandshakeTimeout:  cfg.handshakeTimeout,
			EnableCompression: cfg.enableCompression,
			TLSClientConfig:   cfg.tlsConfig,
		},
		status:     newStatusTracker(cfg.resultBuffer),
		correlator: newCorrelator(decode, cfg.resultBuffer),
	}
}

// Connect establishes the connection if it is not already up. Calling it
// while connected is a safe no-op; calling it again after a disconnect starts
// a fresh attempt. A failed handshake is reported both as the returned error
// and as a status transition.
func (c *Conn) Connect(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case stateConnected:
		c.mu.Unlock()
		return nil
	case stateConnecting:
		c.mu.Unlock()
		return ErrConnecting
	}
	c.state = stateConnecting
	c.mu.Unlock()

	ws, _, err := c.dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		c.mu.Lock()
		c.state = stateDisconnected
		c.mu.Unlock()

		err = fmt.Errorf("dialing %s: %w", c.endpoint, err)
		c.status.set(statusFailed(err))
		return err
	}

	sess := &session{
		ws:   ws,
		done: make(chan struct{}),
	}

	c.mu.Lock()
	c.state = stateConnected
	c.sess = sess
	c.mu.Unlock()

	c.status.set(statusConnected())
	logger.Debug(ctx, "websocket connected", "endpoint", c.endpoint)

	go c.readLoop(sess)
	go c.pingLoop(sess)

	return nil
}

// Disconnect gracefully closes the connection, abandoning everything in
// flight. Result stream subscribers simply stop receiving values; their
// channels stay open for a later reconnect. Calling Disconnect while not
// connected is a no-op.
func (c *Conn) Disconnect() {
	c.mu.Lock()
	sess := c.sess
	c.mu.Unlock()

	if sess == nil {
		return
	}

	deadline := time.Now().Add(writeWait)
	message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client disconnect")
	_ = sess.ws.WriteControl(websocket.CloseMessage, message, deadline)

	c.finish(sess, statusClosed(websocket.CloseNormalClosure, "client disconnect"))
}

// Write queues one frame on the wire and returns immediately. The call's
// eventual result, if any, arrives on the shared result stream. It fails with
// ErrNotConnected when no connection is up.
func (c *Conn) Write(ctx context.Context, data []byte) error {
	c.mu.Lock()
	sess := c.sess
	connected := c.state == stateConnected
	c.mu.Unlock()

	if !connected || sess == nil {
		return ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := sess.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return sess.ws.WriteMessage(websocket.TextMessage, data)
}

// Status returns the current connection status synchronously.
func (c *Conn) Status() Status {
	return c.status.status()
}

// SubscribeStatus registers a status observer. The channel first replays the
// current status, then delivers every subsequent transition. The cancel
// function releases the subscription.
func (c *Conn) SubscribeStatus() (<-chan Status, func()) {
	return c.status.subscribe()
}

// SubscribeResults registers an observer of the shared (id, result) stream.
// Every subscriber receives every published result.
func (c *Conn) SubscribeResults() (<-chan Result, func()) {
	return c.correlator.subscribe()
}

// readLoop drives the connection: every inbound text or binary frame is
// handed to the correlator in arrival order, and the first read failure
// tears the session down with a status transition.
func (c *Conn) readLoop(sess *session) {
	ctx := context.Background()

	for {
		messageType, data, err := sess.ws.ReadMessage()
		if err != nil {
			c.finish(sess, closeStatus(err))
			return
		}

		switch messageType {
		case websocket.TextMessage, websocket.BinaryMessage:
			c.correlator.onFrame(ctx, data)
		}
	}
}

// pingLoop keeps the connection alive: it sends periodic pings and extends
// the read deadline on every pong. Ping and pong traffic produces no status
// change and is never surfaced to callers.
func (c *Conn) pingLoop(sess *session) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	_ = sess.ws.SetReadDeadline(time.Now().Add(pongWait))
	sess.ws.SetPongHandler(func(string) error {
		return sess.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ticker.C:
			if err := sess.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.finish(sess, statusFailed(fmt.Errorf("keep-alive ping: %w", err)))
				return
			}
		case <-sess.done:
			return
		}
	}
}

// finish tears down one session exactly once: closes the socket, clears the
// adapter state if this session is still current, and publishes the final
// status transition.
func (c *Conn) finish(sess *session, st Status) {
	sess.teardown.Do(func() {
		close(sess.done)
		_ = sess.ws.Close()

		c.mu.Lock()
		if c.sess == sess {
			c.state = stateDisconnected
			c.sess = nil
		}
		c.mu.Unlock()

		c.status.set(st)
		logger.Debug(context.Background(), "websocket disconnected", "endpoint", c.endpoint, "status", st.String())
	})
}

// closeStatus maps a read error to the matching Disconnected status: close
// frames keep their code and text, everything else is a transport error.
func closeStatus(err error) Status {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return statusClosed(closeErr.Code, closeErr.Text)
	}

	return statusFailed(err)
}
