package auth

import (
	"time"

	"github.com/hrportal/payroll-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	User       User   `json:"user"`
	LoginTime  string `json:"login_time"`
	ExpiryTime string `json:"expiry_time"`
}

func ToSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		User:       s.User,
		LoginTime:  s.LoginTime.Format(time.RFC3339),
		ExpiryTime: s.ExpiryTime.Format(time.RFC3339),
	}
}
