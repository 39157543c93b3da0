package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

// Signup creates an unverified user and emails a verification link.
// The email-send failure after user creation is NOT rolled back: the
// account exists unverified and the error surfaces to the caller.
func (s *Service) Signup(ctx context.Context, username, email, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return domain.User{}, domain.ErrAllFieldsRequired()
	}

	// Uniqueness check first; the store's unique index still backstops
	// a concurrent signup racing past this read.
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, domain.ErrEmailTaken()
	case !domain.Is(err, "user_not_found"):
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsVerified:   false,
	})
	if err != nil {
		return domain.User{}, err
	}

	token, err := s.tokens.Mint(TokenEmailVerify, created.ID)
	if err != nil {
		return created, err
	}

	link := s.clientURL + "/verify-account/" + token
	if err := s.mailer.Send(ctx, created.Email, "Verify Account", "Click to verify: "+link); err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return created, err
		}
		return created, domain.ErrMailSendFailed(err)
	}

	return created, nil
}
