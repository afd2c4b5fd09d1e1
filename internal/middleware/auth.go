package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ashchan-dev/ashchan/internal/utils"
)

// TokenVerifier checks a bearer token against the live user record, so
// a banned user is rejected here even if their token has not expired.
type TokenVerifier interface {
	Verify(tokenStr string) (string, error)
}

type key int

const userIdKey key = 0

// Auth extracts the bearer token, verifies it and stores the acting
// user id in the request context. Type checks stay in the services:
// they know which operations need which role.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			userId, err := verifier.Verify(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIdFromContext returns the verified acting user id, or "" when the
// request did not pass through Auth.
func UserIdFromContext(r *http.Request) string {
	userId, _ := r.Context().Value(userIdKey).(string)
	return userId
}
