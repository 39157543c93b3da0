package auth

import (
	"context"
	"strings"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
	"github.com/Anand4756/assessment-Connectverse/internal/logger"
)

// Refresh exchanges a valid refresh token for a new access token.
// No new refresh token is issued: one refresh token per session lifetime.
// The subject must still resolve to an existing user.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return "", domain.ErrUnauthorized()
	}

	userID, err := s.tokens.Validate(TokenRefresh, refreshToken)
	if err != nil {
		logger.WithCtx(ctx).Debug().Err(err).Msg("refresh_token_rejected")
		return "", domain.ErrForbidden()
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if domain.Is(err, "user_not_found") {
			return "", domain.ErrForbidden()
		}
		return "", err
	}

	access, err := s.tokens.Mint(TokenAccess, userID)
	if err != nil {
		return "", err
	}

	return access, nil
}
