package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/esavelyev/accountd/internal/common"
	"github.com/esavelyev/accountd/internal/logging"
	"github.com/esavelyev/accountd/internal/server/auth"
	"github.com/esavelyev/accountd/internal/server/config"
	"github.com/esavelyev/accountd/internal/server/users"
)

// memRepo backs the end-to-end flow test with real store semantics:
// insert-time uniqueness, exact username match, lowercased email match.
type memRepo struct {
	mu    sync.Mutex
	byID  map[string]*users.User
	count int
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[string]*users.User{}}
}

func (m *memRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	m.count++
	user.ID = "user-" + strings.Repeat("x", m.count)
	user.CreatedAt = time.Now()
	m.byID[user.ID] = user
	return user, nil
}

func (m *memRepo) FindByUsernameOrEmail(ctx context.Context, identifier string) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == identifier || u.Email == strings.ToLower(identifier) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memRepo) FindByUsername(ctx context.Context, username string) (*users.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memRepo) Exists(ctx context.Context, username, email string) (bool, error) {
	_, err := m.FindByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	_, err = m.FindByUsernameOrEmail(ctx, email)
	return err == nil, nil
}

func newFlowServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		SecretKey:             "flow-secret",
		TokenValidityDuration: time.Hour,
		PasswordScheme:        config.SchemeSHA256,
	}
	svc := users.NewService(newMemRepo(), &auth.SHA256Hasher{}, cfg)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", logger, svc, &fakeHealth{}).Routes()
}

func TestSignupLoginMeFlow(t *testing.T) {
	h := newFlowServer(t)

	// signup
	rec := postForm(t, h, "/api/users/signup", url.Values{
		"username":         {"alice"},
		"email":            {"Alice@Test.com"},
		"password":         {"Str0ng!Pw"},
		"confirm_password": {"Str0ng!Pw"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: got %d, body %s", rec.Code, rec.Body.String())
	}

	// login
	rec = postForm(t, h, "/api/users/login", url.Values{
		"identifier": {"alice"},
		"password":   {"Str0ng!Pw"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", rec.Code, rec.Body.String())
	}
	var login loginResponse
	decodeBody(t, rec, &login)
	if login.AccessToken == "" || login.TokenType != "bearer" {
		t.Fatalf("login response: %+v", login)
	}

	// me
	rec = meRequest(t, h, "Bearer "+login.AccessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: got %d, body %s", rec.Code, rec.Body.String())
	}
	var me meResponse
	decodeBody(t, rec, &me)
	if me.User.Username != "alice" || me.User.Email != "alice@test.com" {
		t.Errorf("me view: %+v", me.User)
	}
	if me.User.ID == "" {
		t.Errorf("me view should include the internal id")
	}
}

func TestFlow_WrongPassword(t *testing.T) {
	h := newFlowServer(t)

	rec := postForm(t, h, "/api/users/signup", url.Values{
		"username":         {"alice"},
		"email":            {"alice@test.com"},
		"password":         {"Str0ng!Pw"},
		"confirm_password": {"Str0ng!Pw"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("signup: got %d", rec.Code)
	}

	rec = postForm(t, h, "/api/users/login", url.Values{
		"identifier": {"alice"},
		"password":   {"wrong"},
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login with wrong password: got %d want 401", rec.Code)
	}
}

func TestFlow_ShortPasswordRejected(t *testing.T) {
	h := newFlowServer(t)

	rec := postForm(t, h, "/api/users/signup", url.Values{
		"username":         {"bob"},
		"email":            {"bob@test.com"},
		"password":         {"short1!"},
		"confirm_password": {"short1!"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("signup with 7-char password: got %d want 400", rec.Code)
	}
}

func TestFlow_DuplicateSignup(t *testing.T) {
	h := newFlowServer(t)

	form := url.Values{
		"username":         {"alice"},
		"email":            {"A@B.com"},
		"password":         {"Str0ng!Pw"},
		"confirm_password": {"Str0ng!Pw"},
	}
	if rec := postForm(t, h, "/api/users/signup", form); rec.Code != http.StatusOK {
		t.Fatalf("first signup: got %d", rec.Code)
	}

	// same email, different casing and different username
	form2 := url.Values{
		"username":         {"bob"},
		"email":            {"a@b.com"},
		"password":         {"Str0ng!Pw"},
		"confirm_password": {"Str0ng!Pw"},
	}
	if rec := postForm(t, h, "/api/users/signup", form2); rec.Code != http.StatusConflict {
		t.Fatalf("second signup: got %d want 409", rec.Code)
	}
}
