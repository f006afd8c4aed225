package domain

import "time"

const (
	OperatorStatusActive = "active"
	RoleAdmin            = "admin"
)

type Operator struct {
	ID           string
	Email        string
	PasswordHash string
	Status       string
}

// AdminRole is the authorization record of an identity. Exists is false when
// no record is stored for it.
type AdminRole struct {
	Exists bool
	Role   string
}

func (r AdminRole) IsAdmin() bool {
	return r.Exists && r.Role == RoleAdmin
}

// Identity is an authenticated operator session.
type Identity struct {
	OperatorID  string
	Email       string
	SessionID   string
	AccessToken string
	ExpiresAt   time.Time
}
