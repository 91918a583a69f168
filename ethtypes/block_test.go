package ethtypes

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testHash    = "0x" + strings.Repeat("11", 32)
	testTxHash  = "0x" + strings.Repeat("22", 32)
	testAddress = "0x" + strings.Repeat("33", 20)
)

// blockJSON builds a minimal block body whose transactions field is supplied
// by the caller.
func blockJSON(transactions string) string {
	return `{
		"hash": "` + testHash + `",
		"parentHash": "` + testHash + `",
		"sha3Uncles": "` + testHash + `",
		"miner": "` + testAddress + `",
		"stateRoot": "` + testHash + `",
		"transactionsRoot": "` + testHash + `",
		"receiptsRoot": "` + testHash + `",
		"logsBloom": "0x",
		"difficulty": "0x0",
		"number": "0x1b4",
		"gasLimit": "0x1c9c380",
		"gasUsed": "0x5208",
		"timestamp": "0x55ba467c",
		"extraData": "0x",
		"mixHash": "` + testHash + `",
		"nonce": "0x0000000000000042",
		"baseFeePerGas": "0x7",
		"withdrawalsRoot": "` + testHash + `",
		"size": "0x220",
		"uncles": [],
		"transactions": ` + transactions + `,
		"withdrawals": []
	}`
}

func TestBlockTransactions_UnmarshalJSON(t *testing.T) {
	t.Run("bare hashes decode to the hashes shape", func(t *testing.T) {
		var block Block
		require.NoError(t, json.Unmarshal([]byte(blockJSON(`["`+testTxHash+`"]`)), &block))

		assert.Equal(t, 1, block.Transactions.Len())
		assert.Equal(t, []Hash{Hash(testTxHash)}, block.Transactions.Hashes())

		_, full := block.Transactions.Objects()
		assert.False(t, full)
	})

	t.Run("full objects decode to the objects shape", func(t *testing.T) {
		var block Block
		require.NoError(t, json.Unmarshal([]byte(blockJSON(`[{
			"type": "0x2",
			"chainId": "0x1",
			"nonce": "0x0",
			"gas": "0x5208",
			"maxFeePerGas": "0x9",
			"maxPriorityFeePerGas": "0x1",
			"to": "`+testAddress+`",
			"value": "0x0",
			"input": "0x",
			"r": "0x",
			"s": "0x",
			"v": "0x0",
			"hash": "`+testTxHash+`",
			"blockHash": "`+testHash+`",
			"blockNumber": "0x1b4",
			"transactionIndex": "0x0",
			"from": "`+testAddress+`",
			"gasPrice": "0x8"
		}]`)), &block))

		objects, full := block.Transactions.Objects()
		require.True(t, full)
		require.Len(t, objects, 1)
		assert.Equal(t, Hash(testTxHash), objects[0].Hash)
		assert.Equal(t, Address(testAddress), objects[0].From)

		// Hashes are recoverable regardless of the wire shape.
		assert.Equal(t, []Hash{Hash(testTxHash)}, block.Transactions.Hashes())
	})

	t.Run("an empty list resolves to the hashes shape", func(t *testing.T) {
		var bt BlockTransactions
		require.NoError(t, json.Unmarshal([]byte(`[]`), &bt))

		_, full := bt.Objects()
		assert.False(t, full)
		assert.Equal(t, 0, bt.Len())
	})

	t.Run("null transaction fields stay nil while pending", func(t *testing.T) {
		var tx Transaction
		require.NoError(t, json.Unmarshal([]byte(`{
			"hash": "`+testTxHash+`",
			"from": "`+testAddress+`",
			"to": null,
			"blockHash": null,
			"blockNumber": null,
			"value": "0x0",
			"gas": "0x5208",
			"gasPrice": "0x8",
			"nonce": "0x0",
			"input": "0x",
			"type": "0x0",
			"chainId": "0x1",
			"maxFeePerGas": "0x0",
			"maxPriorityFeePerGas": "0x0",
			"r": "0x",
			"s": "0x",
			"v": "0x0",
			"transactionIndex": null
		}`), &tx))

		assert.Nil(t, tx.To)
		assert.Nil(t, tx.BlockHash)
		assert.Nil(t, tx.BlockNumber)
	})
}

func TestBlock_UnmarshalJSON(t *testing.T) {
	var block Block
	require.NoError(t, json.Unmarshal([]byte(blockJSON(`[]`)), &block))

	require.NotNil(t, block.Hash)
	assert.Equal(t, Hash(testHash), *block.Hash)
	assert.Equal(t, Quantity("0x1b4"), block.Number)
	assert.Equal(t, Nonce("0x0000000000000042"), block.Nonce)
	assert.Equal(t, int64(0x5208), block.GasUsed.Int())
}
