package domain

import "time"

const UnknownAccountName = "Unknown"

// RegisterDateLayout renders dates in the en-IN style shown to reviewers,
// e.g. "18 Oct 2026, 03:04:05 pm".
const RegisterDateLayout = "2 Jan 2006, 03:04:05 pm"

type UserAccount struct {
	ID                string
	Name              string
	RegisterDate      *time.Time
	WithdrawalHistory WithdrawalHistory
}

func (a UserAccount) DisplayName() string {
	if a.Name == "" {
		return UnknownAccountName
	}
	return a.Name
}

func FormatRegisterDate(registerDate *time.Time, location *time.Location) string {
	if registerDate == nil || registerDate.IsZero() {
		return NotAvailable
	}
	if location == nil {
		location = time.UTC
	}
	return registerDate.In(location).Format(RegisterDateLayout)
}
