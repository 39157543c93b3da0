package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/Anand4756/assessment-Connectverse/internal/application/auth"
	"github.com/Anand4756/assessment-Connectverse/internal/config"
	"github.com/Anand4756/assessment-Connectverse/internal/infrastructure/mail"
	"github.com/Anand4756/assessment-Connectverse/internal/infrastructure/postgres"
	"github.com/Anand4756/assessment-Connectverse/internal/infrastructure/redis"
	"github.com/Anand4756/assessment-Connectverse/internal/infrastructure/security"
	"github.com/Anand4756/assessment-Connectverse/internal/logger"
	http_handlers "github.com/Anand4756/assessment-Connectverse/internal/transport/http/handlers"
	"github.com/Anand4756/assessment-Connectverse/internal/transport/http/middleware"
	"github.com/Anand4756/assessment-Connectverse/internal/transport/http/response"
	"github.com/Anand4756/assessment-Connectverse/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (DBCloser, error)

	Migrate func(ctx context.Context, db *sql.DB) error

	NewRedis func(addr string) RedisClient

	NewMailer func(cfg *config.Config) (auth.Mailer, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) schema
	if deps.Migrate != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := deps.Migrate(ctx, sqlDB)
		cancel()
		if err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
	}

	userStore := postgres.NewUserStore(sqlDB)

	// 3) redis (best-effort; without it the rate limiter is off)
	var redisCli RedisClient
	if deps.NewRedis != nil && cfg.RedisAddr != "" {
		c := deps.NewRedis(cfg.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := c.Ping(ctx)
		cancel()

		if err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; rate limiting disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			redisCli = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) mail
	mailer, err := deps.NewMailer(cfg)
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 5) security
	hasher := security.NewBcryptHasher(10)
	tokens := security.NewJWTEngine(
		security.Secrets{
			Access:        cfg.AccessTokenSecret,
			Refresh:       cfg.RefreshTokenSecret,
			VerifyEmail:   cfg.VerifyEmailSecret,
			PasswordReset: cfg.PasswordResetSecret,
		},
		security.TTLs{
			Access:  cfg.AccessTokenTTL,
			Refresh: cfg.RefreshTokenTTL,
			Mail:    cfg.MailTokenTTL,
		},
		"auth-service",
	)

	// 6) service
	authSvc := auth.NewService(userStore, hasher, tokens, mailer, auth.Config{
		ClientURL: cfg.ClientURL,
	})

	// 7) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	healthH := http_handlers.NewHealthHandler(sqlDB)

	authMW := middleware.Auth(tokens, response.WriteError)

	var fwLimiter *redis.FixedWindowLimiter
	if c, ok := redisCli.(*redis.Client); ok {
		fwLimiter = redis.NewFixedWindowLimiter(c)
	}

	rl := func(key string, limit int, window time.Duration, msg string) func(http.Handler) http.Handler {
		if fwLimiter == nil {
			return nil
		}
		return middleware.RateLimitFixedWindow(
			fwLimiter,
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    limit,
				Window:   window,
				Message:  msg,
			},
			response.WriteError,
		)
	}

	// 8) router
	mux, err := deps.NewRouter(router.Deps{
		Health:    healthH,
		Auth:      authH,
		RequestID: middleware.RequestID,
		CORS:      middleware.CORS(cfg.CORSOrigin),
		AuthMW:    authMW,
		RLLogin: rl("auth.login", 5, 15*time.Minute,
			"Too many login attempts, please try again later."),
		RLSignup: rl("auth.signup", 3, 60*time.Minute,
			"Too many signup attempts, please try again later."),
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 9) server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {
		runCleanup(cleanupFns)
	}

	return srv, cleanup, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string, debug bool) (DBCloser, error) {
			return config.NewDB(addr, debug)
		},
		Migrate: postgres.RunMigrations,
		NewRedis: func(addr string) RedisClient {
			return redis.New(addr)
		},
		NewMailer: newMailer,
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

// newMailer picks SMTP when credentials are configured, otherwise a
// log-only mailer so dev environments work without an SMTP account.
func newMailer(cfg *config.Config) (auth.Mailer, error) {
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		logger.Logger.Warn().Msg("no SMTP credentials; outbound mail goes to the log")
		return mail.NewLogMailer(), nil
	}
	return mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
