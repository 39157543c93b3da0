package auth

type Service struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenEngine
	mailer Mailer

	// Base URL of the SPA; verify/reset links are built against it.
	clientURL string
}

type Config struct {
	ClientURL string
}

func NewService(users UserStore, hasher PasswordHasher, tokens TokenEngine, mailer Mailer, cfg Config) *Service {
	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		mailer:    mailer,
		clientURL: cfg.ClientURL,
	}
}

// AuthTokens is the token pair issued by login.
type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}

// issueTokens issues an access token + refresh token for a user.
func (s *Service) issueTokens(userID int64) (AuthTokens, error) {
	access, err := s.tokens.Mint(TokenAccess, userID)
	if err != nil {
		return AuthTokens{}, err
	}

	refresh, err := s.tokens.Mint(TokenRefresh, userID)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}
