package http_handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Anand4756/assessment-Connectverse/internal/application/auth"
	"github.com/Anand4756/assessment-Connectverse/internal/domain"
	"github.com/Anand4756/assessment-Connectverse/internal/infrastructure/security"
	"github.com/Anand4756/assessment-Connectverse/internal/transport/http/middleware"
	"github.com/Anand4756/assessment-Connectverse/internal/transport/http/response"
	"github.com/Anand4756/assessment-Connectverse/internal/transport/http/router"
)

// -------------------------
// Test wiring (pure unit)
// -------------------------

type fakeUserStore struct {
	mu     sync.Mutex
	byID   map[int64]domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: make(map[int64]domain.User), nextID: 1}
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (s *fakeUserStore) GetByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == identifier || u.Username == identifier {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (s *fakeUserStore) Create(ctx context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.byID {
		if existing.Email == u.Email {
			return domain.User{}, domain.ErrEmailTaken()
		}
	}
	u.ID = s.nextID
	s.nextID++
	s.byID[u.ID] = u
	return u, nil
}

func (s *fakeUserStore) UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.PasswordHash = newHash
	s.byID[userID] = u
	return nil
}

func (s *fakeUserStore) MarkVerified(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.IsVerified = true
	s.byID[userID] = u
	return nil
}

var errSMTP = errors.New("smtp: connection refused")

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no mail sent")
	}
	return m.sent[len(m.sent)-1]
}

const testClientURL = "http://localhost:5173"

type testEnv struct {
	handler http.Handler
	store   *fakeUserStore
	mailer  *fakeMailer
	tokens  *security.JWTEngine
}

// newTestEnv wires a real service and router around in-memory fakes.
// The JWT engine and bcrypt hasher are the production implementations.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeUserStore()
	mailer := &fakeMailer{}
	tokens := security.NewJWTEngine(
		security.Secrets{
			Access:        "access-secret",
			Refresh:       "refresh-secret",
			VerifyEmail:   "verify-secret",
			PasswordReset: "reset-secret",
		},
		security.TTLs{
			Access:  time.Minute,
			Refresh: time.Hour,
			Mail:    time.Hour,
		},
		"auth-service-test",
	)
	hasher := security.NewBcryptHasher(4)

	svc := auth.NewService(store, hasher, tokens, mailer, auth.Config{
		ClientURL: testClientURL,
	})

	handler, err := router.New(router.Deps{
		Health:    NewHealthHandler((*sql.DB)(nil)),
		Auth:      NewAuthHandler(svc),
		RequestID: middleware.RequestID,
		AuthMW:    middleware.Auth(tokens, response.WriteError),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	return &testEnv{handler: handler, store: store, mailer: mailer, tokens: tokens}
}

func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode json failed; body=%s", string(raw))
	}
}

// tokenFromLink pulls the JWT out of a "{CLIENT_URL}/<path>/{token}" mail body.
func tokenFromLink(t *testing.T, body string) string {
	t.Helper()
	i := strings.LastIndex(body, "/")
	if i < 0 || i == len(body)-1 {
		t.Fatalf("no token in mail body %q", body)
	}
	return body[i+1:]
}
