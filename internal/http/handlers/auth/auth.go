package auth

import (
	"context"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services/auth"
	"inventory/internal/http/handlers/response"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	parts := strings.SplitN(header, AUTH_TOKEN_PREFIX, 2)
	if len(parts) != 2 || parts[0] != "" || parts[1] == "" {
		return token, false
	}
	if len(parts[1]) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(parts[1]), true
}

func TokenFromContext(ctx context.Context) (token user.SessionToken, ok bool) {
	return auth.SessionTokenFrom(ctx)
}

// RequireAuthToken stores the bearer token of the request in its context,
// requests without a well-formed token are rejected with 401.
func RequireAuthToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if !ok {
			response.RenderUnauthenticated(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithSessionToken(r.Context(), token)))
	})
}
