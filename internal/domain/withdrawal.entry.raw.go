package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var legacyEntryPattern = regexp.MustCompile(`Withdrawn: (\d+) INR \((.*?)\) via (.*)`)

const methodChannelSeparator = " via "

// RawEntryKind tells which shape a stored history entry was written in.
type RawEntryKind int

const (
	RawEntryUnsupported RawEntryKind = iota
	RawEntryLegacyText
	RawEntryStructured
)

func (k RawEntryKind) String() string {
	switch k {
	case RawEntryLegacyText:
		return "legacy_text"
	case RawEntryStructured:
		return "structured"
	default:
		return "unsupported"
	}
}

// StructuredEntry holds the fields of an object-shaped entry. Falsy JSON
// values (null, false, "", 0) decode to the empty string.
type StructuredEntry struct {
	Action         string
	Amount         string
	Status         string
	Method         string
	GiftCardNumber string
	Date           string
}

// RawEntry is one stored history entry: either a legacy text line or a
// structured record. The stored bytes are kept so untouched entries are
// written back exactly as they were read.
type RawEntry struct {
	kind       RawEntryKind
	legacy     string
	structured StructuredEntry
	raw        json.RawMessage
}

func NewLegacyEntry(text string) RawEntry {
	raw, _ := json.Marshal(text)
	return RawEntry{kind: RawEntryLegacyText, legacy: text, raw: raw}
}

func NewStructuredEntry(entry StructuredEntry) RawEntry {
	fields := map[string]string{}
	setIfPresent(fields, "action", entry.Action)
	setIfPresent(fields, "amount", entry.Amount)
	setIfPresent(fields, "status", entry.Status)
	setIfPresent(fields, "method", entry.Method)
	setIfPresent(fields, "giftCardNumber", entry.GiftCardNumber)
	setIfPresent(fields, "date", entry.Date)

	raw, _ := json.Marshal(fields)
	return RawEntry{kind: RawEntryStructured, structured: entry, raw: raw}
}

// NewCanonicalEntry wraps an already normalized entry for storage.
func NewCanonicalEntry(entry WithdrawalEntry) RawEntry {
	raw, _ := json.Marshal(entry)
	return RawEntry{
		kind: RawEntryStructured,
		structured: StructuredEntry{
			Action:         entry.Action,
			Amount:         entry.Amount,
			Status:         entry.Status,
			Method:         entry.Method,
			GiftCardNumber: entry.GiftCardNumber,
			Date:           entry.Date,
		},
		raw: raw,
	}
}

func setIfPresent(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

func (e RawEntry) Kind() RawEntryKind { return e.kind }

func (e RawEntry) LegacyText() (string, bool) {
	return e.legacy, e.kind == RawEntryLegacyText
}

func (e RawEntry) Structured() (StructuredEntry, bool) {
	return e.structured, e.kind == RawEntryStructured
}

func (e *RawEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("domain: empty history entry")
	}

	decoded := RawEntry{raw: append(json.RawMessage(nil), trimmed...)}

	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(trimmed, &decoded.legacy); err != nil {
			return fmt.Errorf("domain: invalid legacy history entry: %w", err)
		}
		decoded.kind = RawEntryLegacyText
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return fmt.Errorf("domain: invalid structured history entry: %w", err)
		}
		decoded.kind = RawEntryStructured
		decoded.structured = StructuredEntry{
			Action:         looseString(fields["action"]),
			Amount:         looseString(fields["amount"]),
			Status:         looseString(fields["status"]),
			Method:         looseString(fields["method"]),
			GiftCardNumber: looseString(fields["giftCardNumber"]),
			Date:           looseString(fields["date"]),
		}
	default:
		if !json.Valid(trimmed) {
			return fmt.Errorf("domain: invalid history entry")
		}
		decoded.kind = RawEntryUnsupported
	}

	*e = decoded
	return nil
}

func (e RawEntry) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}
	return append([]byte(nil), e.raw...), nil
}

// Normalize converts the entry into its canonical shape. It never fails:
// unreadable legacy lines and unsupported shapes become the fallback record.
func (e RawEntry) Normalize() WithdrawalEntry {
	switch e.kind {
	case RawEntryLegacyText:
		return NormalizeLegacyText(e.legacy)
	case RawEntryStructured:
		return e.structured.Normalize()
	default:
		return FallbackWithdrawalEntry()
	}
}

func NormalizeLegacyText(text string) WithdrawalEntry {
	match := legacyEntryPattern.FindStringSubmatch(text)
	if match == nil {
		return FallbackWithdrawalEntry()
	}

	return WithdrawalEntry{
		Action:         ActionRecharged,
		Amount:         match[1],
		Status:         match[2],
		Method:         match[3],
		MobileNumber:   mobileNumberFromMethod(match[3]),
		GiftCardNumber: NotAvailable,
		Date:           NotAvailable,
	}
}

func (s StructuredEntry) Normalize() WithdrawalEntry {
	entry := WithdrawalEntry{
		Action:         orDefault(s.Action, ActionUnknown),
		Amount:         orDefault(s.Amount, DefaultAmount),
		Status:         orDefault(s.Status, StatusUnknown),
		Method:         orDefault(s.Method, NotAvailable),
		MobileNumber:   NotAvailable,
		GiftCardNumber: orDefault(s.GiftCardNumber, NotAvailable),
		Date:           orDefault(s.Date, NotAvailable),
	}

	// Unlike legacy lines, an empty number segment is kept as is.
	if s.Action == ActionRecharged && s.Method != "" {
		entry.MobileNumber, _, _ = strings.Cut(s.Method, methodChannelSeparator)
	}

	return entry
}

func mobileNumberFromMethod(method string) string {
	number, _, _ := strings.Cut(method, methodChannelSeparator)
	if number == "" {
		return NotAvailable
	}
	return number
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// looseString reads a structured field as text. Falsy values become "" and
// numbers keep their literal text.
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return ""
	default:
		return ""
	}
}
