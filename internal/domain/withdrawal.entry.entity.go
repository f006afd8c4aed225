package domain

import "time"

const (
	ActionRecharged = "Recharged"
	ActionUnknown   = "Unknown"

	StatusPending  = "Pending"
	StatusSuccess  = "Success"
	StatusRejected = "Rejected"
	StatusUnknown  = "Unknown"

	NotAvailable  = "N/A"
	DefaultAmount = "0"
)

// EntryDateLayout renders status-change stamps as ISO-8601 with millisecond
// precision. Stamps are always taken in UTC so the zone renders as "Z".
const EntryDateLayout = "2006-01-02T15:04:05.000Z07:00"

// WithdrawalEntry is the canonical shape of one withdrawal history entry.
// JSON names match the documents written by the user-facing app.
type WithdrawalEntry struct {
	Action         string `json:"action"`
	Amount         string `json:"amount"`
	Status         string `json:"status"`
	Method         string `json:"method"`
	MobileNumber   string `json:"mobileNumber"`
	GiftCardNumber string `json:"giftCardNumber"`
	Date           string `json:"date"`
}

// StatusUpdate describes a review decision applied to a single entry.
type StatusUpdate struct {
	Status         string
	GiftCardNumber string
	At             time.Time
}

func FallbackWithdrawalEntry() WithdrawalEntry {
	return WithdrawalEntry{
		Action:         ActionUnknown,
		Amount:         DefaultAmount,
		Status:         StatusUnknown,
		Method:         NotAvailable,
		MobileNumber:   NotAvailable,
		GiftCardNumber: NotAvailable,
		Date:           NotAvailable,
	}
}

func (e WithdrawalEntry) IsPending() bool {
	return e.Status == StatusPending
}

// WithStatus returns a copy carrying the decision. Action, amount, method
// and mobile number are kept; an empty gift card keeps the current one.
func (e WithdrawalEntry) WithStatus(update StatusUpdate) WithdrawalEntry {
	giftCardNumber := e.GiftCardNumber
	if update.GiftCardNumber != "" {
		giftCardNumber = update.GiftCardNumber
	}

	return WithdrawalEntry{
		Action:         e.Action,
		Amount:         e.Amount,
		Status:         update.Status,
		Method:         e.Method,
		MobileNumber:   e.MobileNumber,
		GiftCardNumber: giftCardNumber,
		Date:           update.At.UTC().Format(EntryDateLayout),
	}
}
