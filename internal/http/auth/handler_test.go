package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paynote/paynote/internal/auth"
	authHandler "github.com/paynote/paynote/internal/http/auth"
	"github.com/paynote/paynote/internal/http/session"
)

// memUserRepo is an in-memory auth.Repository with a unique-email rule.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*auth.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*auth.User)}
}

func (m *memUserRepo) CreateUser(_ context.Context, u *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return auth.ErrEmailTaken
		}
	}

	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	stored := *u
	m.users[u.ID] = &stored

	return nil
}

func (m *memUserRepo) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}

	return nil, auth.ErrUserNotFound
}

func (m *memUserRepo) GetUser(_ context.Context, id uuid.UUID) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}

	cp := *u

	return &cp, nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := auth.NewService(newMemUserRepo(), "test-secret", time.Hour)
	h := authHandler.NewHandler(svc, time.Hour)

	router := chi.NewRouter()
	router.Route("/auth", func(r chi.Router) {
		h.Routes(r)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(svc))
			h.MeRoutes(r)
		})
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)

	return resp
}

func TestRegisterLoginMe(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv, "/auth/register",
		`{"email":"asha@example.com","name":"Asha","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Same email again conflicts.
	resp = post(t, srv, "/auth/register",
		`{"email":"asha@example.com","name":"Other","password":"correct horse"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, srv, "/auth/login",
		`{"email":"asha@example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The login response sets the session cookie and returns the token.
	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cookie = c.Value
		}
	}
	assert.NotEmpty(t, cookie)

	var login struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()

	require.NotEmpty(t, login.Token)
	assert.Equal(t, "asha@example.com", login.User.Email)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)

	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer meResp.Body.Close()

	require.Equal(t, http.StatusOK, meResp.StatusCode)

	var me struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	assert.Equal(t, "Asha", me.Name)
}

func TestLoginRejections(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv, "/auth/register",
		`{"email":"asha@example.com","name":"Asha","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, srv, "/auth/login",
		`{"email":"asha@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = post(t, srv, "/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestMeWithoutSession(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/auth/me")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutClearsCookie(t *testing.T) {
	srv := newServer(t)

	resp := post(t, srv, "/auth/logout", `{}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cleared = c.MaxAge < 0
		}
	}
	assert.True(t, cleared)
}
