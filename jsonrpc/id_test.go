package jsonrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCallID(t *testing.T) {
	assert.Equal(t, "eth_blockNumber|7", NewCallID("eth_blockNumber", 7))
	assert.Equal(t, "eth_getBalance|0", NewCallID("eth_getBalance", 0))
}

func TestSplitCallID(t *testing.T) {
	t.Run("recovers method and integer id", func(t *testing.T) {
		method, id, err := SplitCallID("eth_blockNumber|7")

		require.NoError(t, err)
		assert.Equal(t, "eth_blockNumber", method)
		assert.Equal(t, int64(7), id)
	})

	t.Run("fails without a separator", func(t *testing.T) {
		_, _, err := SplitCallID("eth_blockNumber7")
		assert.ErrorIs(t, err, ErrMalformedCallID)
	})

	t.Run("fails with more than two parts", func(t *testing.T) {
		_, _, err := SplitCallID("eth|blockNumber|7")
		assert.ErrorIs(t, err, ErrMalformedCallID)
	})

	t.Run("fails with a non-integer suffix", func(t *testing.T) {
		_, _, err := SplitCallID("eth_blockNumber|seven")
		assert.ErrorIs(t, err, ErrMalformedCallID)
	})

	t.Run("round trips what NewCallID produces", func(t *testing.T) {
		method, id, err := SplitCallID(NewCallID("eth_mining", 42))

		require.NoError(t, err)
		assert.Equal(t, "eth_mining", method)
		assert.Equal(t, int64(42), id)
	})
}
