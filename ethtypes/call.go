package ethtypes

// CallMsg is the transaction call object accepted by eth_call,
// eth_estimateGas, eth_sendTransaction and eth_signTransaction. Absent
// optional fields are omitted from the wire form entirely.
type CallMsg struct {
	From     *Address  `json:"from,omitempty"`
	To       *Address  `json:"to,omitempty"` // omitted for contract creation
	Gas      *Quantity `json:"gas,omitempty"`
	GasPrice *Quantity `json:"gasPrice,omitempty"`
	Value    *Quantity `json:"value,omitempty"`
	Data     *Data     `json:"data,omitempty"`
	Nonce    *Quantity `json:"nonce,omitempty"`
}

// FilterQuery is the filter options object accepted by eth_newFilter and
// eth_getLogs. Topic positions are ANDed together; each TopicFilter may match
// one topic, any of several, or every topic at its position.
type FilterQuery struct {
	FromBlock *BlockNumberOrTag   `json:"fromBlock,omitempty"`
	ToBlock   *BlockNumberOrTag   `json:"toBlock,omitempty"`
	Address   *AddressOrAddresses `json:"address,omitempty"`
	Topics    []TopicFilter       `json:"topics,omitempty"`
	BlockHash *Hash               `json:"blockhash,omitempty"` // exclusive with FromBlock/ToBlock
}
