package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string

	// Token secrets: one per kind so a leaked mail-token secret cannot
	// forge access tokens.
	AccessTokenSecret   string
	RefreshTokenSecret  string
	VerifyEmailSecret   string
	PasswordResetSecret string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	MailTokenTTL    time.Duration // verify-email and password-reset links

	// Infrastructure
	DBAddr    string
	DBDebug   bool
	RedisAddr string

	// Outbound mail (SMTP)
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	MailFrom  string
	ClientURL string // base URL for verify/reset links in emails

	// Allowed browser origin for the SPA
	CORSOrigin string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// required values
	for _, req := range []struct {
		dst *string
		key string
	}{
		{&cfg.AccessTokenSecret, "ACCESS_TOKEN_SECRET"},
		{&cfg.RefreshTokenSecret, "REFRESH_TOKEN_SECRET"},
		{&cfg.VerifyEmailSecret, "VERIFY_EMAIL_SECRET"},
		{&cfg.PasswordResetSecret, "PASSWORD_RESET_SECRET"},
		{&cfg.DBAddr, "DB_ADDR"},
		{&cfg.ClientURL, "CLIENT_URL"},
	} {
		v := os.Getenv(req.key)
		if v == "" {
			return nil, fmt.Errorf("missing required env var: %s", req.key)
		}
		*req.dst = v
	}

	// optional with defaults
	ttl, err := getDuration("ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.AccessTokenTTL = ttl

	rtl, err := getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenTTL = rtl

	mtl, err := getDuration("MAIL_TOKEN_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.MailTokenTTL = mtl

	cfg.DBDebug = os.Getenv("DB_DEBUG") == "true"

	// Redis is optional: without it the rate limiter is disabled.
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")

	// Mail transport. Optional in dev (falls back to a log-only mailer).
	cfg.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	port, err := getInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTPPort = port
	cfg.SMTPUser = os.Getenv("EMAIL_USER")
	cfg.SMTPPass = os.Getenv("EMAIL_PASS")
	cfg.MailFrom = getEnv("EMAIL_FROM", cfg.SMTPUser)

	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.ClientURL)

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}
