package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Anand4756/assessment-Connectverse/internal/application/auth"
	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

// JWTEngine implements auth.TokenEngine with HS256 JWTs.
// Each token kind carries its own secret and TTL, so a token minted for
// one kind never validates under another (signature mismatch).
type JWTEngine struct {
	issuer string
	kinds  map[auth.TokenKind]kindKey
}

type kindKey struct {
	secret []byte
	ttl    time.Duration
}

type Secrets struct {
	Access        string
	Refresh       string
	VerifyEmail   string
	PasswordReset string
}

type TTLs struct {
	Access  time.Duration
	Refresh time.Duration
	Mail    time.Duration // verify-email and password-reset tokens
}

func NewJWTEngine(secrets Secrets, ttls TTLs, issuer string) *JWTEngine {
	return &JWTEngine{
		issuer: issuer,
		kinds: map[auth.TokenKind]kindKey{
			auth.TokenAccess:        {secret: []byte(secrets.Access), ttl: ttls.Access},
			auth.TokenRefresh:       {secret: []byte(secrets.Refresh), ttl: ttls.Refresh},
			auth.TokenEmailVerify:   {secret: []byte(secrets.VerifyEmail), ttl: ttls.Mail},
			auth.TokenPasswordReset: {secret: []byte(secrets.PasswordReset), ttl: ttls.Mail},
		},
	}
}

func (e *JWTEngine) Mint(kind auth.TokenKind, userID int64) (string, error) {
	kk, ok := e.kinds[kind]
	if !ok {
		return "", domain.ErrTokenSignFailed(fmt.Errorf("unknown token kind %q", kind))
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    e.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(kk.ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(kk.secret)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the subject user id.
// Failures come back classified (malformed / signature-invalid / expired);
// the flows collapse them for clients but logs keep the distinction.
func (e *JWTEngine) Validate(kind auth.TokenKind, token string) (int64, error) {
	kk, ok := e.kinds[kind]
	if !ok {
		return 0, domain.ErrTokenSignatureInvalid(fmt.Errorf("unknown token kind %q", kind))
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		// prevent alg confusion
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return kk.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, classify(err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return 0, domain.ErrTokenMalformed(errors.New("unexpected claims"))
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenMalformed(fmt.Errorf("non-numeric subject %q", claims.Subject))
	}
	return userID, nil
}

func classify(err error) *domain.Error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired(err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid(err)
	default:
		return domain.ErrTokenMalformed(err)
	}
}
