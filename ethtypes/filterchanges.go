package ethtypes

import (
	"encoding/json"
	"fmt"
)

// FilterChanges is the result of eth_getFilterChanges: block or transaction
// hashes for block/pending-transaction filters, full log objects for log
// filters.
//
// Decode order: array of hashes first, then array of log objects. An empty
// list resolves to the hashes shape.
type FilterChanges struct {
	hashes []Hash
	logs   []Log
}

// HashChanges builds a FilterChanges holding block or transaction hashes.
func HashChanges(hs ...Hash) FilterChanges {
	return FilterChanges{hashes: hs}
}

// LogChanges builds a FilterChanges holding log objects.
func LogChanges(ls ...Log) FilterChanges {
	return FilterChanges{logs: ls}
}

// Hashes returns the hash changes, if the filter produced hashes.
func (fc FilterChanges) Hashes() ([]Hash, bool) {
	return fc.hashes, fc.logs == nil
}

// Logs returns the log changes, if the filter produced logs.
func (fc FilterChanges) Logs() ([]Log, bool) {
	return fc.logs, fc.logs != nil
}

// MarshalJSON encodes the changes in their original wire shape.
func (fc FilterChanges) MarshalJSON() ([]byte, error) {
	if fc.logs != nil {
		return json.Marshal(fc.logs)
	}
	if fc.hashes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(fc.hashes)
}

// UnmarshalJSON decodes the change list, trying hashes before log objects.
func (fc *FilterChanges) UnmarshalJSON(data []byte) error {
	var hashes []Hash
	if err := json.Unmarshal(data, &hashes); err == nil {
		*fc = FilterChanges{hashes: hashes}
		return nil
	}

	var logs []Log
	if err := json.Unmarshal(data, &logs); err == nil {
		*fc = FilterChanges{logs: logs}
		return nil
	}

	return fmt.Errorf("%w: filter changes are neither hashes nor logs", ErrInvalidFormat)
}
