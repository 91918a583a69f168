package ethtypes

import (
	"encoding/json"
	"fmt"
)

// Transaction represents a transaction object returned by the Ethereum
// JSON-RPC API.
type Transaction struct {
	Type                 Quantity  `json:"type"`
	ChainID              Quantity  `json:"chainId"`
	Nonce                Quantity  `json:"nonce"`
	Gas                  Quantity  `json:"gas"`
	MaxFeePerGas         Quantity  `json:"maxFeePerGas"`
	MaxPriorityFeePerGas Quantity  `json:"maxPriorityFeePerGas"`
	To                   *Address  `json:"to"` // nil for contract creation
	Value                Quantity  `json:"value"`
	Input                Data      `json:"input"`
	R                    Data      `json:"r"`
	S                    Data      `json:"s"`
	V                    Quantity  `json:"v"`
	Hash                 Hash      `json:"hash"`
	BlockHash            *Hash     `json:"blockHash"`   // nil while pending
	BlockNumber          *Quantity `json:"blockNumber"` // nil while pending
	TransactionIndex     *Quantity `json:"transactionIndex"`
	From                 Address   `json:"from"`
	GasPrice             Quantity  `json:"gasPrice"`
}

// Withdrawal represents a validator withdrawal entry included in a block.
type Withdrawal struct {
	Index          Quantity `json:"index"`
	ValidatorIndex Quantity `json:"validatorIndex"`
	Address        Address  `json:"address"`
	Amount         Quantity `json:"amount"`
}

// BlockTransactions is the transaction list of a block, which the API returns
// either as bare transaction hashes or as full transaction objects depending
// on the fullTransactions request flag.
//
// Decode order: array of hashes first, then array of transaction objects. An
// empty list resolves to the hashes shape.
type BlockTransactions struct {
	hashes  []Hash
	objects []Transaction
}

// TransactionHashes builds a BlockTransactions holding bare hashes.
func TransactionHashes(hs ...Hash) BlockTransactions {
	return BlockTransactions{hashes: hs}
}

// TransactionObjects builds a BlockTransactions holding full objects.
func TransactionObjects(txs ...Transaction) BlockTransactions {
	return BlockTransactions{objects: txs}
}

// Hashes returns the transaction hashes, regardless of the wire shape.
func (bt BlockTransactions) Hashes() []Hash {
	if bt.objects != nil {
		hs := make([]Hash, len(bt.objects))
		for i, tx := range bt.objects {
			hs[i] = tx.Hash
		}
		return hs
	}
	return bt.hashes
}

// Objects returns the full transaction objects, if the block carried them.
func (bt BlockTransactions) Objects() ([]Transaction, bool) {
	return bt.objects, bt.objects != nil
}

// Len returns the number of transactions in the block.
func (bt BlockTransactions) Len() int {
	if bt.objects != nil {
		return len(bt.objects)
	}
	return len(bt.hashes)
}

// MarshalJSON encodes the list in its original wire shape.
func (bt BlockTransactions) MarshalJSON() ([]byte, error) {
	if bt.objects != nil {
		return json.Marshal(bt.objects)
	}
	if bt.hashes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(bt.hashes)
}

// UnmarshalJSON decodes the transaction list, trying bare hashes before full
// objects.
func (bt *BlockTransactions) UnmarshalJSON(data []byte) error {
	var hashes []Hash
	if err := json.Unmarshal(data, &hashes); err == nil {
		*bt = BlockTransactions{hashes: hashes}
		return nil
	}

	var objects []Transaction
	if err := json.Unmarshal(data, &objects); err == nil {
		*bt = BlockTransactions{objects: objects}
		return nil
	}

	return fmt.Errorf("%w: block transactions are neither hashes nor objects", ErrInvalidFormat)
}

// Block represents the full structure of a block returned by the Ethereum
// JSON-RPC API.
type Block struct {
	Hash             *Hash             `json:"hash"` // nil while pending
	ParentHash       Hash              `json:"parentHash"`
	Sha3Uncles       Hash              `json:"sha3Uncles"`
	Miner            Address           `json:"miner"`
	StateRoot        Hash              `json:"stateRoot"`
	TransactionsRoot Hash              `json:"transactionsRoot"`
	ReceiptsRoot     Hash              `json:"receiptsRoot"`
	LogsBloom        Data              `json:"logsBloom"`
	Difficulty       Quantity          `json:"difficulty"`
	Number           Quantity          `json:"number"`
	GasLimit         Quantity          `json:"gasLimit"`
	GasUsed          Quantity          `json:"gasUsed"`
	Timestamp        Quantity          `json:"timestamp"`
	ExtraData        Data              `json:"extraData"`
	MixHash          Hash              `json:"mixHash"`
	Nonce            Nonce             `json:"nonce"`
	BaseFeePerGas    Quantity          `json:"baseFeePerGas"`
	WithdrawalsRoot  Hash              `json:"withdrawalsRoot"`
	Size             Quantity          `json:"size"`
	Uncles           []Hash            `json:"uncles"`
	Transactions     BlockTransactions `json:"transactions"`
	Withdrawals      []Withdrawal      `json:"withdrawals"`
}
