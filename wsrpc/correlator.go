package wsrpc

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/ethrpc/internal/pkg/logger"
	"github.com/gabapcia/ethrpc/jsonrpc"
)

// ResultDecoder maps a raw JSON-RPC result payload to the typed value
// registered for the given method. It must fail for method names it does not
// recognize; the correlator treats any failure as "not a frame for us".
type ResultDecoder func(method string, result json.RawMessage) (any, error)

// Result is one correlated WebSocket response: the caller-supplied logical
// call id recovered from the correlation id, the method that produced it, and
// the decoded result value.
type Result struct {
	ID     int64  // caller-supplied integer id from "<method>|<id>"
	Method string // method name recovered from the correlation id
	Value  any    // decoded result, of the type registered for Method
}

// correlator demultiplexes inbound frames back to logical calls. A frame that
// cannot be parsed, carries an unknown or malformed correlation id, or whose
// result does not decode is discarded without surfacing anything: the shared
// socket may carry frames for other consumers, server error objects, or
// methods this SDK version does not know, and none of those may crash or
// stall the connection.
type correlator struct {
	decode  ResultDecoder
	results *stream[Result]
}

func newCorrelator(decode ResultDecoder, buffer int) *correlator {
	return &correlator{
		decode:  decode,
		results: newStream[Result](buffer),
	}
}

// onFrame processes one inbound text or binary frame, publishing a Result on
// success and silently dropping the frame otherwise. Drops are logged at
// debug level so operators are not completely blind to them.
func (c *correlator) onFrame(ctx context.Context, data []byte) {
	var envelope struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		logger.Debug(ctx, "dropping frame: not a response envelope", "error", err)
		return
	}

	method, id, err := jsonrpc.SplitCallID(envelope.ID)
	if err != nil {
		logger.Debug(ctx, "dropping frame: unusable correlation id", "id", envelope.ID, "error", err)
		return
	}

	var full jsonrpc.Response
	if err := json.Unmarshal(data, &full); err != nil {
		logger.Debug(ctx, "dropping frame: malformed response envelope", "id", envelope.ID, "error", err)
		return
	}

	value, err := c.decode(method, full.Result)
	if err != nil {
		logger.Debug(ctx, "dropping frame: result did not decode", "id", envelope.ID, "method", method, "error", err)
		return
	}

	c.results.publish(Result{
		ID:     id,
		Method: method,
		Value:  value,
	})
}

// subscribe registers a new observer of the shared result stream.
func (c *correlator) subscribe() (<-chan Result, func()) {
	return c.results.subscribe()
}
