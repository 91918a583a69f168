package wsrpc

import (
	"fmt"
	"sync"
)

// CloseReason carries the close code and text of a graceful or server-driven
// WebSocket teardown.
type CloseReason struct {
	Code int    // WebSocket close code (e.g. 1000 for normal closure)
	Text string // Close reason text, may be empty
}

// Status is the connection status sum type: Connected, or Disconnected with
// an optional close reason or error. The zero value is Disconnected with
// neither, which is also the lifecycle's starting state.
type Status struct {
	Connected bool
	Reason    *CloseReason // set when the teardown carried a close code
	Err       error        // set when the teardown was a transport error
}

// String renders the status for logs and error messages.
func (s Status) String() string {
	switch {
	case s.Connected:
		return "connected"
	case s.Reason != nil:
		return fmt.Sprintf("disconnected (code %d: %s)", s.Reason.Code, s.Reason.Text)
	case s.Err != nil:
		return fmt.Sprintf("disconnected (%v)", s.Err)
	default:
		return "disconnected"
	}
}

// statusConnected builds the Connected status value.
func statusConnected() Status {
	return Status{Connected: true}
}

// statusClosed builds a Disconnected status carrying a close code and text.
func statusClosed(code int, text string) Status {
	return Status{Reason: &CloseReason{Code: code, Text: text}}
}

// statusFailed builds a Disconnected status carrying a transport error.
func statusFailed(err error) Status {
	return Status{Err: err}
}

// statusTracker holds the current connection status and broadcasts every
// transition. New subscribers immediately receive the latest value, so a
// late observer never races the initial handshake.
type statusTracker struct {
	mu      sync.Mutex
	current Status
	changes *stream[Status]
}

// newStatusTracker starts in the Disconnected state with no reason.
func newStatusTracker(buffer int) *statusTracker {
	return &statusTracker{
		changes: newStream[Status](buffer),
	}
}

// status returns the current value synchronously.
func (t *statusTracker) status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// set records a transition and broadcasts it to every subscriber.
func (t *statusTracker) set(s Status) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = s
	t.changes.publish(s)
}

// subscribe registers a new observer. The returned channel first replays the
// latest status, then delivers every subsequent transition. The cancel
// function releases the subscription.
func (t *statusTracker) subscribe() (<-chan Status, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.changes.subscribeWith(t.current)
}
