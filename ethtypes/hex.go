// Package ethtypes defines the typed wire values exchanged with an Ethereum
// JSON-RPC node: validated hexadecimal scalars (hashes, addresses, quantities)
// and the tagged one-of shapes the protocol leaves undiscriminated on the wire.
//
// Every scalar validates its input against the pattern the protocol requires,
// both at construction and on JSON decode, so that an invalid value can never
// reach the network layer.
package ethtypes

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidFormat is returned when an input fails its required pattern.
// The wrapped message carries both the offending input and the pattern.
var ErrInvalidFormat = errors.New("value does not match required format")

var (
	hashPattern     = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	quantityPattern = regexp.MustCompile(`^0x([1-9a-f]+[0-9a-f]*|0)$`)
	addressPattern  = regexp.MustCompile(`^0x[0-9,a-f,A-F]{40}$`)
	dataPattern     = regexp.MustCompile(`^0x[0-9a-f]*$`)
	noncePattern    = regexp.MustCompile(`^0x[0-9a-f]{16}$`)
)

// matchPattern checks s against p and reports a failure as ErrInvalidFormat.
func matchPattern(s string, p *regexp.Regexp) error {
	if !p.MatchString(s) {
		return fmt.Errorf("%w: %q does not match %s", ErrInvalidFormat, s, p.String())
	}
	return nil
}

// unmarshalPattern decodes a JSON string and validates it against p.
func unmarshalPattern(data []byte, p *regexp.Regexp) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := matchPattern(s, p); err != nil {
		return "", err
	}

	return s, nil
}

// Hash is a 32-byte hash encoded as a lowercase hex string (e.g. a block or
// transaction hash).
type Hash string

// NewHash validates the input string and returns a Hash value if valid.
func NewHash(s string) (Hash, error) {
	if err := matchPattern(s, hashPattern); err != nil {
		return "", err
	}
	return Hash(s), nil
}

// UnmarshalJSON parses and validates a JSON-encoded 32-byte hash.
func (h *Hash) UnmarshalJSON(data []byte) error {
	s, err := unmarshalPattern(data, hashPattern)
	if err != nil {
		return err
	}

	*h = Hash(s)
	return nil
}

// Address is a 20-byte account address encoded as a hex string.
type Address string

// NewAddress validates the input string and returns an Address value if valid.
func NewAddress(s string) (Address, error) {
	if err := matchPattern(s, addressPattern); err != nil {
		return "", err
	}
	return Address(s), nil
}

// UnmarshalJSON parses and validates a JSON-encoded 20-byte address.
func (a *Address) UnmarshalJSON(data []byte) error {
	s, err := unmarshalPattern(data, addressPattern)
	if err != nil {
		return err
	}

	*a = Address(s)
	return nil
}

// Quantity is an unsigned integer encoded as a minimal hex string with no
// leading zeros (e.g. "0x41", "0x0").
type Quantity string

// NewQuantity validates the input string and returns a Quantity value if valid.
func NewQuantity(s string) (Quantity, error) {
	if err := matchPattern(s, quantityPattern); err != nil {
		return "", err
	}
	return Quantity(s), nil
}

// QuantityFromInt encodes a non-negative integer as a Quantity.
func QuantityFromInt(n int64) Quantity {
	return Quantity(fmt.Sprintf("0x%x", n))
}

// UnmarshalJSON parses and validates a JSON-encoded hex quantity.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s, err := unmarshalPattern(data, quantityPattern)
	if err != nil {
		return err
	}

	*q = Quantity(s)
	return nil
}

// Int returns the decoded int64 value from the hex string.
// If parsing fails, it returns zero.
func (q Quantity) Int() int64 {
	if len(q) < 2 {
		return 0
	}

	v, _ := strconv.ParseInt(string(q)[2:], 16, 64)
	return v
}

// Add returns a new Quantity representing the result of adding n to the
// current value. An invalid receiver is treated as zero.
func (q Quantity) Add(n int64) Quantity {
	return QuantityFromInt(q.Int() + n)
}

// Data is arbitrary binary data encoded as a lowercase hex string of any
// length, including the empty payload "0x".
type Data string

// NewData validates the input string and returns a Data value if valid.
func NewData(s string) (Data, error) {
	if err := matchPattern(s, dataPattern); err != nil {
		return "", err
	}
	return Data(s), nil
}

// UnmarshalJSON parses and validates a JSON-encoded hex data payload.
func (d *Data) UnmarshalJSON(data []byte) error {
	s, err := unmarshalPattern(data, dataPattern)
	if err != nil {
		return err
	}

	*d = Data(s)
	return nil
}

// Nonce is the 8-byte proof-of-work nonce encoded as a hex string.
type Nonce string

// NewNonce validates the input string and returns a Nonce value if valid.
func NewNonce(s string) (Nonce, error) {
	if err := matchPattern(s, noncePattern); err != nil {
		return "", err
	}
	return Nonce(s), nil
}

// UnmarshalJSON parses and validates a JSON-encoded 8-byte nonce.
func (n *Nonce) UnmarshalJSON(data []byte) error {
	s, err := unmarshalPattern(data, noncePattern)
	if err != nil {
		return err
	}

	*n = Nonce(s)
	return nil
}
