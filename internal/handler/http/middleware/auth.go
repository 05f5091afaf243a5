package middleware

import (
	"context"
	"net/http"

	"github.com/hrportal/payroll-backend-go/internal/domain/auth"
	"github.com/hrportal/payroll-backend-go/internal/handler/http/response"
)

type contextKey string

const userContextKey contextKey = "session_user"

// SessionRequired resolves the shared session slot and rejects the request
// when no live session exists. The session user is stashed in the request
// context for downstream handlers.
func SessionRequired(authService auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			user, err := authService.CurrentUser(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserFromContext returns the session user placed by SessionRequired.
func UserFromContext(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(userContextKey).(auth.User)
	return user, ok
}
