package jsonrpc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// callIDSeparator joins the method name and the caller-supplied integer id in
// a WebSocket correlation id. The method name is needed on the way back to
// pick the decode target; the integer is the caller's logical call id.
const callIDSeparator = "|"

// ErrMalformedCallID indicates a correlation id that does not follow the
// "<method>|<integer>" form.
var ErrMalformedCallID = errors.New("malformed call id")

// NewCallID builds the correlation id embedded in WebSocket request envelopes:
// "<method>|<id>". External systems injecting synthetic responses must honor
// the same form.
func NewCallID(method string, id int64) string {
	return method + callIDSeparator + strconv.FormatInt(id, 10)
}

// SplitCallID recovers the method name and the caller-supplied integer id from
// a correlation id. It fails with ErrMalformedCallID when the input does not
// split into exactly two parts or the second part is not an integer.
func SplitCallID(s string) (string, int64, error) {
	parts := strings.Split(s, callIDSeparator)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedCallID, s)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %v", ErrMalformedCallID, s, err)
	}

	return parts[0], id, nil
}
