package ethtypes

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The one-of types below have no discriminant field on the wire. Decoding
// attempts each candidate shape in a fixed, documented order and accepts the
// first that parses. The order is a compatibility contract: an input valid
// under more than one shape always resolves to the earliest-listed one.

// BlockTag names a symbolic block position.
type BlockTag string

const (
	TagEarliest BlockTag = "earliest"
	TagLatest   BlockTag = "latest"
	TagPending  BlockTag = "pending"
)

// validBlockTag reports whether s is one of the enumerated block tags.
func validBlockTag(s string) bool {
	switch BlockTag(s) {
	case TagEarliest, TagLatest, TagPending:
		return true
	}
	return false
}

// BlockNumberOrTag is either an explicit block number or a symbolic tag.
//
// Decode order: raw hex quantity first, then the enumerated tag strings
// "earliest", "latest", "pending".
type BlockNumberOrTag struct {
	number Quantity
	tag    BlockTag
}

// BlockNumber builds a BlockNumberOrTag holding an explicit block number.
func BlockNumber(q Quantity) BlockNumberOrTag {
	return BlockNumberOrTag{number: q}
}

// BlockTagged builds a BlockNumberOrTag holding a symbolic tag.
func BlockTagged(t BlockTag) BlockNumberOrTag {
	return BlockNumberOrTag{tag: t}
}

// Number returns the explicit block number, if this value holds one.
func (b BlockNumberOrTag) Number() (Quantity, bool) {
	return b.number, b.number != ""
}

// Tag returns the symbolic tag, if this value holds one.
func (b BlockNumberOrTag) Tag() (BlockTag, bool) {
	return b.tag, b.tag != ""
}

// String returns the wire form of the value.
func (b BlockNumberOrTag) String() string {
	if b.number != "" {
		return string(b.number)
	}
	return string(b.tag)
}

// MarshalJSON encodes the value as its wire string.
func (b BlockNumberOrTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a block position, trying the hex quantity shape
// before the tag shape.
func (b *BlockNumberOrTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if quantityPattern.MatchString(s) {
		*b = BlockNumberOrTag{number: Quantity(s)}
		return nil
	}

	if validBlockTag(s) {
		*b = BlockNumberOrTag{tag: BlockTag(s)}
		return nil
	}

	return fmt.Errorf("%w: %q is neither a hex quantity nor a block tag", ErrInvalidFormat, s)
}

// AddressOrAddresses is either a single account address or a list of them,
// as accepted by filter queries.
//
// Decode order: single address string first, then array of address strings.
// A value valid under both (there is none on the wire, but the contract still
// holds for synthetic inputs) resolves to the single-address shape.
type AddressOrAddresses struct {
	single Address
	many   []Address
}

// OneAddress builds an AddressOrAddresses holding a single address.
func OneAddress(a Address) AddressOrAddresses {
	return AddressOrAddresses{single: a}
}

// ManyAddresses builds an AddressOrAddresses holding a list of addresses.
func ManyAddresses(as ...Address) AddressOrAddresses {
	return AddressOrAddresses{many: as}
}

// Single returns the single address, if this value holds one.
func (a AddressOrAddresses) Single() (Address, bool) {
	return a.single, a.single != ""
}

// Addresses returns every address held by the value, regardless of shape.
func (a AddressOrAddresses) Addresses() []Address {
	if a.single != "" {
		return []Address{a.single}
	}
	return a.many
}

// MarshalJSON encodes the value in its original wire shape.
func (a AddressOrAddresses) MarshalJSON() ([]byte, error) {
	if a.single != "" {
		return json.Marshal(a.single)
	}
	return json.Marshal(a.many)
}

// UnmarshalJSON decodes an address filter, trying the single-string shape
// before the array shape.
func (a *AddressOrAddresses) UnmarshalJSON(data []byte) error {
	var single Address
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AddressOrAddresses{single: single}
		return nil
	}

	var many []Address
	if err := json.Unmarshal(data, &many); err == nil {
		*a = AddressOrAddresses{many: many}
		return nil
	}

	return fmt.Errorf("%w: %s is neither an address nor an address list", ErrInvalidFormat, data)
}

// TopicFilter matches log topics at one position of a filter query.
//
// Decode order: single topic hash first, then array of topic hashes, then
// JSON null meaning "match any topic at this position".
type TopicFilter struct {
	single Hash
	many   []Hash
	any    bool
}

// OneTopic builds a TopicFilter matching a single topic hash.
func OneTopic(h Hash) TopicFilter {
	return TopicFilter{single: h}
}

// AnyOfTopics builds a TopicFilter matching any of the given topic hashes.
func AnyOfTopics(hs ...Hash) TopicFilter {
	return TopicFilter{many: hs}
}

// AnyTopic builds a TopicFilter matching every topic at its position.
func AnyTopic() TopicFilter {
	return TopicFilter{any: true}
}

// MatchesAny reports whether the filter matches every topic.
func (t TopicFilter) MatchesAny() bool {
	return t.any
}

// Topics returns the topic hashes the filter matches, nil when it matches any.
func (t TopicFilter) Topics() []Hash {
	if t.single != "" {
		return []Hash{t.single}
	}
	return t.many
}

// MarshalJSON encodes the filter in its original wire shape, null for
// match-any.
func (t TopicFilter) MarshalJSON() ([]byte, error) {
	switch {
	case t.any:
		return []byte("null"), nil
	case t.single != "":
		return json.Marshal(t.single)
	default:
		return json.Marshal(t.many)
	}
}

// UnmarshalJSON decodes a topic position, trying single hash, then hash
// array, then treating null as match-any.
func (t *TopicFilter) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = TopicFilter{any: true}
		return nil
	}

	var single Hash
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TopicFilter{single: single}
		return nil
	}

	var many []Hash
	if err := json.Unmarshal(data, &many); err == nil {
		*t = TopicFilter{many: many}
		return nil
	}

	return fmt.Errorf("%w: %s is not a valid topic filter", ErrInvalidFormat, data)
}

// SyncProgress describes an in-progress chain synchronization.
type SyncProgress struct {
	StartingBlock Quantity `json:"startingBlock"` // Block at which the import started
	CurrentBlock  Quantity `json:"currentBlock"`  // Current block, same as eth_blockNumber
	HighestBlock  Quantity `json:"highestBlock"`  // Estimated highest block
}

// SyncStatus is the result of eth_syncing: the literal false when the node is
// not syncing, or a progress object while it is.
//
// Decode order: boolean first, then the progress object.
type SyncStatus struct {
	Syncing  bool
	Progress *SyncProgress
}

// UnmarshalJSON decodes a syncing status, trying the boolean shape before the
// progress-object shape.
func (s *SyncStatus) UnmarshalJSON(data []byte) error {
	var flag bool
	if err := json.Unmarshal(data, &flag); err == nil {
		*s = SyncStatus{Syncing: flag}
		return nil
	}

	var progress SyncProgress
	if err := json.Unmarshal(data, &progress); err == nil {
		*s = SyncStatus{Syncing: true, Progress: &progress}
		return nil
	}

	return fmt.Errorf("%w: %s is not a valid syncing status", ErrInvalidFormat, data)
}

// MarshalJSON encodes the status back into its wire shape.
func (s SyncStatus) MarshalJSON() ([]byte, error) {
	if s.Progress != nil {
		return json.Marshal(s.Progress)
	}
	return json.Marshal(s.Syncing)
}
