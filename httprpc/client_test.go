package httprpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gabapcia/ethrpc/jsonrpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	t.Run("successful response with result", func(t *testing.T) {
		expected := map[string]any{"hello": "world"}
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req jsonrpc.Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, jsonrpc.Version, req.JsonRPC)
			assert.Equal(t, "dummy_method", req.Method)
			assert.NotEmpty(t, req.ID)

			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"result":  expected,
				"id":      req.ID,
			})
		}))
		defer mockServer.Close()

		c := NewClient(nil, mockServer.URL)

		result, err := c.Fetch(t.Context(), "dummy_method")
		require.NoError(t, err)

		var actual map[string]any
		require.NoError(t, json.Unmarshal(result, &actual))
		assert.Equal(t, expected, actual)
	})

	t.Run("params are sent positionally in declared order", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req jsonrpc.Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []any{"0xabc", "latest"}, req.Params)

			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": "0x0", "id": req.ID})
		}))
		defer mockServer.Close()

		c := NewClient(nil, mockServer.URL)

		_, err := c.Fetch(t.Context(), "eth_getBalance", "0xabc", "latest")
		assert.NoError(t, err)
	})

	t.Run("response with JSON-RPC error", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error": map[string]any{
					"code":    -32601,
					"message": "method not found",
				},
				"id": "1",
			})
		}))
		defer mockServer.Close()

		c := NewClient(nil, mockServer.URL)

		result, err := c.Fetch(t.Context(), "nonexistent_method")
		require.Error(t, err)
		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "method not found")
	})

	t.Run("malformed JSON response fails with a decode error", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer mockServer.Close()

		c := NewClient(nil, mockServer.URL)

		_, err := c.Fetch(t.Context(), "dummy_method")
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("network failure fails with a transport error", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		mockServer.Close() // nothing is listening anymore

		c := NewClient(nil, mockServer.URL)

		_, err := c.Fetch(t.Context(), "dummy_method")
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("concurrent calls share no state", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req jsonrpc.Request
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "result": req.Method, "id": req.ID})
		}))
		defer mockServer.Close()

		c := NewClient(nil, mockServer.URL)

		done := make(chan error, 10)
		for range 10 {
			go func() {
				_, err := c.Fetch(t.Context(), "eth_blockNumber")
				done <- err
			}()
		}

		for range 10 {
			assert.NoError(t, <-done)
		}
	})
}

func TestClient_Do(t *testing.T) {
	t.Run("returns the decoded envelope without turning server errors into failures", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32000, "message": "boom"},
				"id":      "1",
			})
		}))
		defer mockServer.Close()

		c := NewClient(nil, mockServer.URL)

		resp, err := c.Do(t.Context(), jsonrpc.NewRequest("eth_blockNumber", "1"))
		require.NoError(t, err)
		assert.ErrorIs(t, resp.Err(), jsonrpc.ErrProviderReturnedError)
	})
}
