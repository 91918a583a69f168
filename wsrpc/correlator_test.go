package wsrpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDecoder accepts only eth_blockNumber, decoding its result as a string.
func stubDecoder(method string, result json.RawMessage) (any, error) {
	if method != "eth_blockNumber" {
		return nil, errors.New("unknown method")
	}

	var out string
	if err := json.Unmarshal(result, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func TestCorrelator_OnFrame(t *testing.T) {
	t.Run("a well-formed frame is published with its caller id", func(t *testing.T) {
		c := newCorrelator(stubDecoder, 4)

		ch, cancel := c.subscribe()
		defer cancel()

		c.onFrame(t.Context(), []byte(`{"jsonrpc":"2.0","id":"eth_blockNumber|7","result":"0x10d4f"}`))

		result := <-ch
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, "eth_blockNumber", result.Method)
		assert.Equal(t, "0x10d4f", result.Value)
	})

	t.Run("frames that are not for us are dropped without a panic", func(t *testing.T) {
		c := newCorrelator(stubDecoder, 4)

		ch, cancel := c.subscribe()
		defer cancel()

		frames := []string{
			`not json at all`,
			`{"jsonrpc":"2.0","id":"no-separator","result":"0x1"}`,
			`{"jsonrpc":"2.0","id":"eth_blockNumber|seven","result":"0x1"}`,
			`{"jsonrpc":"2.0","id":"a|b|7","result":"0x1"}`,
			`{"jsonrpc":"2.0","id":"eth_unknownMethod|7","result":"0x1"}`,
			`{"jsonrpc":"2.0","id":"eth_blockNumber|7","result":{"not":"a string"}}`,
			`{"jsonrpc":"2.0","id":42,"result":"0x1"}`,
		}
		for _, frame := range frames {
			assert.NotPanics(t, func() { c.onFrame(t.Context(), []byte(frame)) }, "frame %q", frame)
		}

		select {
		case result := <-ch:
			t.Fatalf("unexpected publish: %+v", result)
		default:
		}
	})

	t.Run("a valid frame still correlates after garbage", func(t *testing.T) {
		c := newCorrelator(stubDecoder, 4)

		ch, cancel := c.subscribe()
		defer cancel()

		c.onFrame(t.Context(), []byte(`garbage`))
		c.onFrame(t.Context(), []byte(`{"jsonrpc":"2.0","id":"eth_blockNumber|3","result":"0x2a"}`))

		result := <-ch
		require.Equal(t, int64(3), result.ID)
		assert.Equal(t, "0x2a", result.Value)
	})
}
