package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
	"github.com/Anand4756/assessment-Connectverse/internal/logger"
)

// ForgotPassword mints a password-reset token and emails the reset link.
// Deliberately enumerating (unlike login): an unknown email returns
// user_not_found, and a failed send returns a mail-specific error.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ErrEmailRequired()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.tokens.Mint(TokenPasswordReset, u.ID)
	if err != nil {
		return err
	}

	link := s.clientURL + "/reset-password/" + token
	if err := s.mailer.Send(ctx, u.Email, "Password Reset Request", "Click to reset: "+link); err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return err
		}
		return domain.ErrMailSendFailed(err)
	}

	return nil
}

// ResetPassword validates a password-reset token and overwrites the
// subject's password hash. Every token failure mode collapses to the same
// generic invalid-or-expired outcome.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" || newPassword == "" {
		return domain.ErrInvalidOrExpiredToken()
	}

	userID, err := s.tokens.Validate(TokenPasswordReset, token)
	if err != nil {
		logger.WithCtx(ctx).Debug().Err(err).Msg("reset_password_token_rejected")
		return domain.ErrInvalidOrExpiredToken()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.ErrHashFailed(err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if domain.Is(err, "user_not_found") {
			return domain.ErrInvalidOrExpiredToken()
		}
		return err
	}

	return nil
}
