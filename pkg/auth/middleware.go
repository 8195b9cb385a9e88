package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bloodlink/bloodlink/pkg/utils"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

// TokenBlacklist checks whether a token id was revoked on logout.
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}

// AuthMiddleware validates the bearer token, rejects blacklisted tokens
// and injects the caller's identity into the request context. A nil
// blacklist disables the revocation check.
func AuthMiddleware(blacklist TokenBlacklist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			jwtService := &JWTService{}
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if blacklist != nil {
				revoked, err := blacklist.IsBlacklisted(r.Context(), claims.Id)
				if err == nil && revoked {
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
			}

			ctx := context.WithValue(r.Context(), IdentityKey, claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects callers whose role differs from the given one.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity.Role != role {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TokenTTL reports how long the given claims remain valid from now; used to
// bound the blacklist entry lifetime on logout.
func TokenTTL(claims *Claims, now time.Time) time.Duration {
	ttl := time.Unix(claims.ExpiresAt, 0).Sub(now)
	if ttl < 0 {
		return 0
	}
	return ttl
}
