package auth

import "time"

// Role enum. Admin and HR both get the admin portal surface.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
)

// IsAdmin reports whether the role grants admin portal access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleHR
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
}

// Session wraps a user with issue and expiry instants. It is serialized
// whole into the shared session slot.
type Session struct {
	User       User      `json:"user"`
	LoginTime  time.Time `json:"login_time"`
	ExpiryTime time.Time `json:"expiry_time"`
}

// Expired reports whether the session has passed its expiry at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiryTime.Before(now)
}

// DemoCredential is one row of the fixed demo credential table. The password
// is stored as a bcrypt hash of the published demo value.
type DemoCredential struct {
	Email        string
	PasswordHash []byte
	Role         Role
	DisplayName  string
}
