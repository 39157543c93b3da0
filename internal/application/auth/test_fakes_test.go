package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/Anand4756/assessment-Connectverse/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserStore struct {
	mu sync.Mutex

	byID   map[int64]domain.User
	nextID int64

	// injected errors (if set, method returns error)
	getByEmailErr error
	getByIdentErr error
	getByIDErr    error
	createErr     error
	updatePwdErr  error
	markVerifyErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[int64]domain.User{}, nextID: 1}
}

func (f *fakeUserStore) add(u domain.User) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	} else if u.ID >= f.nextID {
		f.nextID = u.ID + 1
	}
	f.byID[u.ID] = u
	return u
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (f *fakeUserStore) GetByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIdentErr != nil {
		return domain.User{}, f.getByIdentErr
	}
	for _, u := range f.byID {
		if u.Email == identifier || u.Username == identifier {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserStore) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()

	if f.createErr != nil {
		f.mu.Unlock()
		return domain.User{}, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			f.mu.Unlock()
			return domain.User{}, domain.ErrEmailTaken()
		}
	}
	f.mu.Unlock()
	return f.add(u), nil
}

func (f *fakeUserStore) UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updatePwdErr != nil {
		return f.updatePwdErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.PasswordHash = newHash
	f.byID[userID] = u
	return nil
}

func (f *fakeUserStore) MarkVerified(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.markVerifyErr != nil {
		return f.markVerifyErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.IsVerified = true
	f.byID[userID] = u
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error

	mu       sync.Mutex
	compares int
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	f.mu.Lock()
	f.compares++
	f.mu.Unlock()

	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash == "hash:"+pw {
		return nil
	}
	return errors.New("mismatch")
}

// fakeTokenEngine issues "<kind>|<id>" strings so tests can assert on
// kind binding without real crypto.
type fakeTokenEngine struct {
	mintErr     error
	validateErr error
}

func (f *fakeTokenEngine) Mint(kind TokenKind, userID int64) (string, error) {
	if f.mintErr != nil {
		return "", f.mintErr
	}
	return fmt.Sprintf("%s|%d", kind, userID), nil
}

func (f *fakeTokenEngine) Validate(kind TokenKind, token string) (int64, error) {
	if f.validateErr != nil {
		return 0, f.validateErr
	}
	parts := strings.SplitN(token, "|", 2)
	if len(parts) != 2 {
		return 0, domain.ErrTokenMalformed(errors.New("bad shape"))
	}
	if parts[0] != string(kind) {
		return 0, domain.ErrTokenSignatureInvalid(errors.New("kind mismatch"))
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, domain.ErrTokenMalformed(err)
	}
	return id, nil
}

type fakeMailer struct {
	mu      sync.Mutex
	sendErr error
	sent    []sentMail
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

/*
Shared setup + assertion helpers
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserStore, *fakeHasher, *fakeTokenEngine, *fakeMailer) {
	t.Helper()

	users := newFakeUserStore()
	hasher := &fakeHasher{}
	tokens := &fakeTokenEngine{}
	mailer := &fakeMailer{}

	svc := NewService(users, hasher, tokens, mailer, Config{
		ClientURL: "http://localhost:5173",
	})
	return svc, users, hasher, tokens, mailer
}

func domainCode(err *domain.Error) string { return err.Code }

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error, got %T: %v", err, err)
	}
	if de.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, de.Code, err)
	}
}
