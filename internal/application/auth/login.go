package auth

import (
	"context"
	"strings"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

// dummyHash is compared against when the identifier resolves to no user,
// so the "no such user" and "wrong password" paths take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type LoginResult struct {
	User   domain.User
	Tokens AuthTokens
}

// Login authenticates by email-or-username identifier and issues tokens.
// IMPORTANT: must not leak whether the identifier exists. Unknown user and
// bad password return the same error.
func (s *Service) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)

	if identifier == "" || password == "" {
		return LoginResult{}, domain.ErrAllFieldsRequired()
	}

	u, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Burn a compare anyway to keep timing flat.
			_ = s.hasher.Compare(dummyHash, password)
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	toks, err := s.issueTokens(u.ID)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: u, Tokens: toks}, nil
}
