package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// ---------- fakes ----------

type fakeHealth struct{}

func (fakeHealth) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type fakeAuth struct{}

func (fakeAuth) write(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(msg))
}

func (a fakeAuth) Signup(w http.ResponseWriter, r *http.Request)      { a.write(w, "signup") }
func (a fakeAuth) Login(w http.ResponseWriter, r *http.Request)       { a.write(w, "login") }
func (a fakeAuth) VerifyEmail(w http.ResponseWriter, r *http.Request) { a.write(w, "verify_email") }
func (a fakeAuth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	a.write(w, "forgot_password")
}
func (a fakeAuth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	a.write(w, "reset_password")
}
func (a fakeAuth) RefreshToken(w http.ResponseWriter, r *http.Request) { a.write(w, "refreshtoken") }
func (a fakeAuth) UserDetail(w http.ResponseWriter, r *http.Request)   { a.write(w, "userdetail") }

func noopMW(next http.Handler) http.Handler { return next }

func headerMW(key, val string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, val)
			next.ServeHTTP(w, r)
		})
	}
}

func newTestRouter(t *testing.T, deps Deps) http.Handler {
	t.Helper()
	if deps.Health == nil {
		deps.Health = fakeHealth{}
	}
	if deps.Auth == nil {
		deps.Auth = fakeAuth{}
	}
	if deps.AuthMW == nil {
		deps.AuthMW = noopMW
	}
	h, err := New(deps)
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}
	return h
}

// ---------- tests ----------

func TestNew_NilDeps(t *testing.T) {
	if _, err := New(Deps{Auth: fakeAuth{}, AuthMW: noopMW}); err == nil {
		t.Fatal("expected error for nil Health")
	}
	if _, err := New(Deps{Health: fakeHealth{}, AuthMW: noopMW}); err == nil {
		t.Fatal("expected error for nil Auth")
	}
	if _, err := New(Deps{Health: fakeHealth{}, Auth: fakeAuth{}}); err == nil {
		t.Fatal("expected error for nil AuthMW")
	}
}

func TestRoutes_Mounted(t *testing.T) {
	h := newTestRouter(t, Deps{})

	cases := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/healthz", "ok"},
		{http.MethodPost, "/api/auth/signup", "signup"},
		{http.MethodPost, "/api/auth/login", "login"},
		{http.MethodPost, "/api/auth/verify-email", "verify_email"},
		{http.MethodPost, "/api/auth/forgot-password", "forgot_password"},
		{http.MethodPost, "/api/auth/reset-password", "reset_password"},
		{http.MethodPost, "/api/auth/refreshtoken", "refreshtoken"},
		{http.MethodGet, "/api/auth/userdetail", "userdetail"},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != c.want {
			t.Errorf("%s %s: code=%d body=%q", c.method, c.path, rec.Code, rec.Body.String())
		}
	}
}

func TestRoutes_MethodMatters(t *testing.T) {
	h := newTestRouter(t, Deps{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET login: code=%d", rec.Code)
	}
}

func TestRateLimitMiddleware_ScopedToItsRoute(t *testing.T) {
	h := newTestRouter(t, Deps{
		RLLogin:  headerMW("X-RL", "login"),
		RLSignup: headerMW("X-RL", "signup"),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	if rec.Header().Get("X-RL") != "login" {
		t.Fatal("login limiter not applied")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil))
	if rec.Header().Get("X-RL") != "signup" {
		t.Fatal("signup limiter not applied")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/verify-email", nil))
	if rec.Header().Get("X-RL") != "" {
		t.Fatal("limiter leaked onto an unlimited route")
	}
}

func TestAuthMW_OnlyOnUserDetail(t *testing.T) {
	h := newTestRouter(t, Deps{AuthMW: headerMW("X-Gate", "yes")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/userdetail", nil))
	if rec.Header().Get("X-Gate") != "yes" {
		t.Fatal("gatekeeper not applied to userdetail")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
	if rec.Header().Get("X-Gate") != "" {
		t.Fatal("gatekeeper leaked onto login")
	}
}
