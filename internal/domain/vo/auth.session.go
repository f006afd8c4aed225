package vo

import "time"

type AuthSession struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	OperatorID  string    `json:"operator_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}
