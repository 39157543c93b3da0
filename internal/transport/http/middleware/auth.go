package middleware

import (
	"net/http"
	"strings"

	"github.com/Anand4756/assessment-Connectverse/internal/application/auth"
	"github.com/Anand4756/assessment-Connectverse/internal/domain"
	"github.com/Anand4756/assessment-Connectverse/internal/logger"
)

// TokenVerifier is the slice of the token engine the gatekeeper needs.
type TokenVerifier interface {
	Validate(kind auth.TokenKind, token string) (int64, error)
}

// Auth verifies Authorization: Bearer <access_token> and injects the
// subject user id into the request context. Every failure is the same
// 401 to the client; the real reason goes to the log.
func Auth(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrUnauthorized())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrUnauthorized())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrUnauthorized())
				return
			}

			userID, err := verifier.Validate(auth.TokenAccess, raw)
			if err != nil {
				logger.WithCtx(r.Context()).Debug().Err(err).Msg("access token rejected")
				writeErr(w, r, domain.ErrUnauthorized())
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
