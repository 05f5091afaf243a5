package auth

import "context"

type Service interface {
	// Login validates credentials against the demo table and, on success,
	// overwrites the shared session slot with a fresh session.
	Login(ctx context.Context, req LoginRequest) (Session, error)

	// CurrentSession reads the slot; expired or malformed content is evicted
	// and reported as ErrNoSession.
	CurrentSession(ctx context.Context) (Session, error)

	// CurrentUser is CurrentSession narrowed to the user.
	CurrentUser(ctx context.Context) (User, error)

	// Refresh re-issues the active session with a new expiry. Reads never
	// renew implicitly; this is the only renewal path.
	Refresh(ctx context.Context) (Session, error)

	// Logout evicts the slot unconditionally.
	Logout(ctx context.Context) error

	// Users lists the portal user directory. Directory rows are independent
	// of the demo credential table the login path checks against.
	Users(ctx context.Context) ([]User, error)
}
