package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WithdrawalHistory is the ordered list of a user's withdrawal entries.
// Position is the entry's identity and order is never changed.
type WithdrawalHistory []RawEntry

// ParseWithdrawalHistory decodes a stored history value. Anything that is
// not a JSON array is treated as an empty history.
func ParseWithdrawalHistory(data []byte) (WithdrawalHistory, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return WithdrawalHistory{}, nil
	}

	var history WithdrawalHistory
	if err := json.Unmarshal(trimmed, &history); err != nil {
		return nil, fmt.Errorf("domain: failed to decode withdrawal history: %w", err)
	}
	if history == nil {
		history = WithdrawalHistory{}
	}
	return history, nil
}

// Encode renders the history for storage, keeping untouched entries as read.
func (h WithdrawalHistory) Encode() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	payload, err := json.Marshal([]RawEntry(h))
	if err != nil {
		return nil, fmt.Errorf("domain: failed to encode withdrawal history: %w", err)
	}
	return payload, nil
}

func (h WithdrawalHistory) Normalized() []WithdrawalEntry {
	entries := make([]WithdrawalEntry, len(h))
	for i, entry := range h {
		entries[i] = entry.Normalize()
	}
	return entries
}

// ApplyStatus returns a copy of the history with the decision applied to the
// entry at index. The second result is false, and the history is returned
// unchanged, when index is outside the list.
func (h WithdrawalHistory) ApplyStatus(index int, update StatusUpdate) (WithdrawalHistory, bool) {
	if index < 0 || index >= len(h) {
		return h, false
	}

	updated := make(WithdrawalHistory, len(h))
	copy(updated, h)
	updated[index] = NewCanonicalEntry(h[index].Normalize().WithStatus(update))

	return updated, true
}
