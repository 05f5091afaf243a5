package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/pkg/clock"
	"github.com/hrportal/payroll-backend-go/internal/pkg/sessionstore"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL matches the portal's 24-hour session window.
const DefaultSessionTTL = 24 * time.Hour

type AuthServiceImpl struct {
	credentialRepo auth.CredentialRepository
	userRepo       auth.UserRepository
	store          sessionstore.Store
	ttl            time.Duration
	now            clock.Func
}

func NewAuthService(
	credentialRepo auth.CredentialRepository,
	userRepo auth.UserRepository,
	store sessionstore.Store,
	ttl time.Duration,
	now clock.Func,
) auth.Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthServiceImpl{
		credentialRepo: credentialRepo,
		userRepo:       userRepo,
		store:          store,
		ttl:            ttl,
		now:            now,
	}
}

// Login implements auth.Service. The slot is overwritten unconditionally, so
// a second login from anywhere evicts the previous session.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.Session, error) {
	cred, err := s.credentialRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(req.Password)); err != nil {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	now := s.now()
	session := auth.Session{
		User:       synthesizeUser(cred),
		LoginTime:  now,
		ExpiryTime: now.Add(s.ttl),
	}
	if err := s.save(session); err != nil {
		return auth.Session{}, err
	}
	return session, nil
}

// CurrentSession implements auth.Service. Expired or unparsable slot content
// is evicted so the next read starts clean.
func (s *AuthServiceImpl) CurrentSession(ctx context.Context) (auth.Session, error) {
	raw, err := s.store.Load()
	if err != nil {
		if errors.Is(err, sessionstore.ErrEmptySlot) {
			return auth.Session{}, auth.ErrNoSession
		}
		return auth.Session{}, err
	}

	var session auth.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		_ = s.store.Clear()
		return auth.Session{}, auth.ErrNoSession
	}
	if session.Expired(s.now()) {
		_ = s.store.Clear()
		return auth.Session{}, auth.ErrNoSession
	}
	return session, nil
}

// CurrentUser implements auth.Service.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context) (auth.User, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return auth.User{}, err
	}
	return session.User, nil
}

// Refresh implements auth.Service. The login time is preserved; only the
// expiry moves.
func (s *AuthServiceImpl) Refresh(ctx context.Context) (auth.Session, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return auth.Session{}, err
	}

	session.ExpiryTime = s.now().Add(s.ttl)
	if err := s.save(session); err != nil {
		return auth.Session{}, err
	}
	return session, nil
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	return s.store.Clear()
}

// Users implements auth.Service.
func (s *AuthServiceImpl) Users(ctx context.Context) ([]auth.User, error) {
	return s.userRepo.List(ctx)
}

func (s *AuthServiceImpl) save(session auth.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Save(raw)
}

// synthesizeUser builds the session user from a credential row: the ID is the
// upper-cased local part of the email, the names come from splitting the
// display name.
func synthesizeUser(cred auth.DemoCredential) auth.User {
	local, _, _ := strings.Cut(cred.Email, "@")

	firstName := cred.DisplayName
	lastName := ""
	if first, rest, ok := strings.Cut(cred.DisplayName, " "); ok {
		firstName = first
		lastName = rest
	}

	return auth.User{
		ID:        strings.ToUpper(local),
		Email:     cred.Email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      cred.Role,
	}
}
