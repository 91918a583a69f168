package ethtypes

// Log represents a single log entry emitted by a transaction.
type Log struct {
	Removed          bool     `json:"removed"`
	LogIndex         Quantity `json:"logIndex"`
	TransactionIndex Quantity `json:"transactionIndex"`
	TransactionHash  Hash     `json:"transactionHash"`
	BlockHash        Hash     `json:"blockHash"`
	BlockNumber      Quantity `json:"blockNumber"`
	Address          Address  `json:"address"`
	Data             Data     `json:"data"`
	Topics           []Hash   `json:"topics"`
}

// TransactionReceipt represents the receipt of a mined transaction.
type TransactionReceipt struct {
	TransactionHash   Hash     `json:"transactionHash"`
	TransactionIndex  Quantity `json:"transactionIndex"`
	BlockHash         Hash     `json:"blockHash"`
	BlockNumber       Quantity `json:"blockNumber"`
	From              Address  `json:"from"`
	To                *Address `json:"to"` // nil for contract creation
	CumulativeGasUsed Quantity `json:"cumulativeGasUsed"`
	EffectiveGasPrice Quantity `json:"effectiveGasPrice"`
	GasUsed           Quantity `json:"gasUsed"`
	ContractAddress   *Address `json:"contractAddress"` // nil unless contract creation
	Logs              []Log    `json:"logs"`
	LogsBloom         Data     `json:"logsBloom"`
	Type              Quantity `json:"type"`
	Status            Quantity `json:"status"` // "0x1" success, "0x0" failure
}
