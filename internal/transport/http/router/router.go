package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	UserDetail(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler

	// Global middleware, outermost first.
	RequestID func(http.Handler) http.Handler
	CORS      func(http.Handler) http.Handler

	// Route-scoped middleware.
	AuthMW   func(http.Handler) http.Handler
	RLLogin  func(http.Handler) http.Handler
	RLSignup func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	if deps.RequestID != nil {
		r.Use(deps.RequestID)
	}
	if deps.CORS != nil {
		r.Use(deps.CORS)
	}

	r.Get("/healthz", deps.Health.Healthz)

	r.Route("/api/auth", func(r chi.Router) {
		if deps.RLSignup != nil {
			r.With(deps.RLSignup).Post("/signup", deps.Auth.Signup)
		} else {
			r.Post("/signup", deps.Auth.Signup)
		}
		if deps.RLLogin != nil {
			r.With(deps.RLLogin).Post("/login", deps.Auth.Login)
		} else {
			r.Post("/login", deps.Auth.Login)
		}

		r.Post("/verify-email", deps.Auth.VerifyEmail)
		r.Post("/forgot-password", deps.Auth.ForgotPassword)
		r.Post("/reset-password", deps.Auth.ResetPassword)
		r.Post("/refreshtoken", deps.Auth.RefreshToken)

		r.With(deps.AuthMW).Get("/userdetail", deps.Auth.UserDetail)
	})

	return r, nil
}
