package vo

import "time"

// ReviewSelection is the withdrawal an operator has opened for approval.
type ReviewSelection struct {
	ID        string    `json:"selection_id"`
	AccountID string    `json:"account_id"`
	Index     int       `json:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ReviewResult struct {
	Applied bool                `json:"applied"`
	Pending []PendingWithdrawal `json:"pending"`
}
