package vo

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrOperatorDisabled = errors.New("operator account is disabled")
var ErrNotAdmin = errors.New("not an admin")
var ErrSessionRevoked = errors.New("session has been revoked")

// AuthenticationError carries the identity provider's message, which is
// shown to the operator as is.
type AuthenticationError struct {
	Message string
	Err     error
}

func NewAuthenticationError(err error) *AuthenticationError {
	return &AuthenticationError{Message: err.Error(), Err: err}
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
