package memory

import (
	"context"
	"strings"

	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
)

type userRepositoryImpl struct {
	users []auth.User
}

func NewUserRepository(users []auth.User) auth.UserRepository {
	return &userRepositoryImpl{users: users}
}

// GetByEmail implements auth.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrUserNotFound
}

// List implements auth.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]auth.User, error) {
	out := make([]auth.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

type credentialRepositoryImpl struct {
	credentials []auth.DemoCredential
}

func NewCredentialRepository(credentials []auth.DemoCredential) auth.CredentialRepository {
	return &credentialRepositoryImpl{credentials: credentials}
}

// GetByEmail implements auth.CredentialRepository. Unknown emails map to
// ErrInvalidCredentials, not a distinct not-found error.
func (r *credentialRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.DemoCredential, error) {
	for _, c := range r.credentials {
		if strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return auth.DemoCredential{}, auth.ErrInvalidCredentials
}
