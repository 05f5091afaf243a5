package auth

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession means the slot is empty, expired, or held unparsable data.
	ErrNoSession = errors.New("no active session")

	ErrUserNotFound = errors.New("user not found")
)
