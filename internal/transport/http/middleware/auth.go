package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/token"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// TokenHeader is the legacy token-bearing header. Existing clients send the
// raw token here, not an Authorization bearer scheme; the name must not
// change.
const TokenHeader = "x-auth-token"

// Auth verifies the session token and puts the resolved user id on the
// request context. It has no other side effects and can be stacked in front
// of any protected handler.
func Auth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				http.Error(w, `{"msg":"No token, authorization denied"}`, http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				http.Error(w, `{"msg":"Token is not valid"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the verified user ID from request context
func GetUserID(ctx context.Context) uuid.UUID {
	return ctx.Value(UserIDKey).(uuid.UUID)
}
