package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

// UserStore is the database/sql implementation of auth.UserStore.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// ---------- helpers ----------

type userRow struct {
	ID           int64
	Username     sql.NullString
	Email        string
	PasswordHash string
	IsVerified   bool
}

const userColumns = `id, username, email, password_hash, is_verified`

func scanUser(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Username,
		&ur.Email,
		&ur.PasswordHash,
		&ur.IsVerified,
	)
	return ur, err
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		Username:     ur.Username.String,
		Email:        ur.Email,
		PasswordHash: ur.PasswordHash,
		IsVerified:   ur.IsVerified,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// ---------- auth.UserStore ----------

func (s *UserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1
LIMIT 1;
`
	ur, err := scanUser(s.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// GetByIdentifier resolves a login identifier that may be either the email
// or the username (logical OR).
func (s *UserStore) GetByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}

	const q = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1 OR username = $1
LIMIT 1;
`
	ur, err := scanUser(s.db.QueryRowContext(ctx, q, identifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1
LIMIT 1;
`
	ur, err := scanUser(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (s *UserStore) Create(ctx context.Context, u domain.User) (domain.User, error) {
	username := sql.NullString{String: u.Username, Valid: u.Username != ""}

	const q = `
INSERT INTO users (username, email, password_hash, is_verified)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns + `;
`
	var ur userRow
	err := s.db.QueryRowContext(ctx, q,
		username, u.Email, u.PasswordHash, u.IsVerified,
	).Scan(
		&ur.ID,
		&ur.Username,
		&ur.Email,
		&ur.PasswordHash,
		&ur.IsVerified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailTaken()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (s *UserStore) UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error {
	const q = `
UPDATE users
SET password_hash = $2,
    updated_at = NOW()
WHERE id = $1;
`
	res, err := s.db.ExecContext(ctx, q, userID, newHash)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}

// MarkVerified flips is_verified to true. One-way: there is no unverify.
func (s *UserStore) MarkVerified(ctx context.Context, userID int64) error {
	const q = `
UPDATE users
SET is_verified = TRUE,
    updated_at = NOW()
WHERE id = $1;
`
	res, err := s.db.ExecContext(ctx, q, userID)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}
