package auth

import (
	"context"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

/*
UserStore
---------
Persistence port for users.
Only describes WHAT the auth service needs, not HOW it's stored.
The store assigns IDs on Create and enforces email/username uniqueness.
*/
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByIdentifier resolves a login identifier that may be either the
	// account's email or its username (logical OR).
	GetByIdentifier(ctx context.Context, identifier string) (domain.User, error)

	GetByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Updates needed by business flows
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error
	MarkVerified(ctx context.Context, userID int64) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenEngine
-----------
Mints and validates the four token classes. Each kind has its own signing
secret and TTL, so validating a token under the wrong kind fails.
Validate returns the subject user id; failures are the classified
domain errors (malformed / signature-invalid / expired) so callers can
log the real reason while showing clients a generic one.
*/
type TokenKind string

const (
	TokenAccess        TokenKind = "access"
	TokenRefresh       TokenKind = "refresh"
	TokenEmailVerify   TokenKind = "email_verify"
	TokenPasswordReset TokenKind = "password_reset"
)

type TokenEngine interface {
	Mint(kind TokenKind, userID int64) (string, error)
	Validate(kind TokenKind, token string) (int64, error)
}

/*
Mailer
------
Outbound notification gateway. Send failures surface to the caller;
they must never silently corrupt user state.
*/
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
