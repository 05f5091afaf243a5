package middleware

import (
	"net/http"

	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

// AdminOnly gates a route behind the admin portal roles. It must run after
// SessionRequired.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrNoSession)
			return
		}

		switch user.Role {
		case auth.RoleAdmin, auth.RoleHR:
			next.ServeHTTP(w, r)
		case auth.RoleEmployee:
			response.Forbidden(w, "Admin privilege required")
		default:
			response.Forbidden(w, "Admin privilege required")
		}
	})
}
