package auth

import (
	"context"
	"strings"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
	"github.com/Anand4756/assessment-Connectverse/internal/logger"
)

// VerifyEmail validates an email-verify token and marks its subject as
// verified. Idempotent in effect: re-verifying an already-verified user is
// harmless, and the token stays valid for its whole TTL (no consumption).
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrInvalidToken()
	}

	userID, err := s.tokens.Validate(TokenEmailVerify, token)
	if err != nil {
		// Log the real classification, show the generic outcome.
		logger.WithCtx(ctx).Debug().Err(err).Msg("verify_email_token_rejected")
		return domain.ErrInvalidToken()
	}

	if err := s.users.MarkVerified(ctx, userID); err != nil {
		if domain.Is(err, "user_not_found") {
			return domain.ErrInvalidToken()
		}
		return err
	}

	return nil
}
