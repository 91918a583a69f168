package jsonrpc

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run("builds envelope with protocol version and positional params", func(t *testing.T) {
		req := NewRequest("eth_getBalance", "1", "0xabc", "latest")

		assert.Equal(t, Version, req.JsonRPC)
		assert.Equal(t, "1", req.ID)
		assert.Equal(t, "eth_getBalance", req.Method)
		assert.Equal(t, []any{"0xabc", "latest"}, req.Params)
	})

	t.Run("absent optional params are omitted from the list", func(t *testing.T) {
		req := NewRequest("eth_blockNumber", "1")

		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "params")
	})

	t.Run("round trip preserves method and param order", func(t *testing.T) {
		req := NewRequest("eth_getStorageAt", "eth_getStorageAt|3", "0xabc", "0x0", "latest")

		data, err := json.Marshal(req)
		require.NoError(t, err)

		var decoded Request
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, req.Method, decoded.Method)
		assert.Equal(t, req.ID, decoded.ID)
		assert.Equal(t, []any{"0xabc", "0x0", "latest"}, decoded.Params)
	})
}

func TestResponse_Err(t *testing.T) {
	t.Run("returns nil when Error field is nil", func(t *testing.T) {
		resp := Response{JsonRPC: Version}

		assert.NoError(t, resp.Err())
	})

	t.Run("returns formatted error when Error field is present", func(t *testing.T) {
		expectedCode := -32601
		expectedMsg := "method not found"

		var resp Response
		require.NoError(t, json.Unmarshal([]byte(fmt.Sprintf(
			`{"jsonrpc":"2.0","id":"1","error":{"code":%d,"message":%q}}`,
			expectedCode, expectedMsg,
		)), &resp))

		err := resp.Err()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProviderReturnedError)
		assert.Contains(t, err.Error(), fmt.Sprintf("[%d]", expectedCode))
		assert.Contains(t, err.Error(), expectedMsg)
	})
}
