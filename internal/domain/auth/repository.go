package auth

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}

type CredentialRepository interface {
	// GetByEmail returns the demo credential row for an email, or
	// ErrInvalidCredentials when the email is unknown.
	GetByEmail(ctx context.Context, email string) (DemoCredential, error)
}
