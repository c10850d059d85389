package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpatel-116/uniclash/config"
	mw "github.com/rpatel-116/uniclash/internal/middleware"
	"github.com/rpatel-116/uniclash/internal/session"
	"github.com/rpatel-116/uniclash/internal/user"
	"github.com/rpatel-116/uniclash/utils"
)

type fakeAuthRepo struct {
	usersByEmail map[string]*user.User
	nextID       uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{usersByEmail: make(map[string]*user.User), nextID: 1}
}

func (r *fakeAuthRepo) GetUserByEmail(email string) (*user.User, error) {
	return r.usersByEmail[email], nil
}

func (r *fakeAuthRepo) CreateUser(u *user.User) error {
	u.ID = r.nextID
	r.nextID++
	r.usersByEmail[u.Email] = u
	return nil
}

func (r *fakeAuthRepo) seed(t *testing.T, name, email, password string, role user.Role) *user.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &user.User{Name: name, Email: email, Password: hash, Role: role}
	require.NoError(t, r.CreateUser(u))
	return u
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Session.CookieName = "uniclash_sid"
	cfg.Session.TTLHours = 24
	return cfg
}

func newAuthTestServer(repo AuthRepository) (*gin.Engine, *session.Store) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	sessions := session.NewStore(time.Duration(cfg.Session.TTLHours) * time.Hour)

	r := gin.New()
	r.Use(mw.SessionMiddleware(sessions, cfg.Session.CookieName))

	controller := NewAuthController(repo, sessions, cfg)
	r.POST("/login", controller.Login)
	r.POST("/signup", controller.Signup)
	r.GET("/logout", controller.Logout)
	r.GET("/check-session", controller.CheckSession)
	r.GET("/user-info", controller.UserInfo)
	return r, sessions
}

func postJSON(r *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("response has no %s cookie", name)
	return nil
}

func TestLoginLifecycle(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.seed(t, "dhruv", "dhruv@example.com", "secret1", user.RoleAdmin)
	r, sessions := newAuthTestServer(repo)

	// login sets the session cookie
	w := postJSON(r, "/login", `{"email":"dhruv@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful!")
	ck := sessionCookie(t, w, "uniclash_sid")
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, 1, sessions.Len())

	// the cookie resolves to a live session
	w = get(r, "/check-session", ck)
	require.Equal(t, http.StatusOK, w.Code)
	var cs CheckSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cs))
	assert.True(t, cs.LoggedIn)
	require.NotNil(t, cs.Role)
	assert.Equal(t, "Admin", *cs.Role)

	w = get(r, "/user-info", ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dhruv")

	// logout destroys the server-side session
	w = get(r, "/logout", ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, sessions.Len())

	// the old token no longer authenticates
	w = get(r, "/check-session", ck)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cs))
	assert.False(t, cs.LoggedIn)
	assert.Nil(t, cs.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.seed(t, "dhruv", "dhruv@example.com", "secret1", user.RoleUser)
	r, sessions := newAuthTestServer(repo)

	tests := []struct {
		name string
		body string
		code int
		msg  string
	}{
		{"missing fields", `{"email":"dhruv@example.com"}`, http.StatusBadRequest, "Please fill all fields."},
		{"unknown email", `{"email":"nobody@example.com","password":"secret1"}`, http.StatusUnauthorized, "Invalid email or password. Please retry."},
		{"wrong password", `{"email":"dhruv@example.com","password":"nope12"}`, http.StatusUnauthorized, "Invalid email or password. Please retry."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/login", tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.msg)
		})
	}
	assert.Equal(t, 0, sessions.Len())
}

func TestSignupValidation(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.seed(t, "taken", "taken@example.com", "secret1", user.RoleUser)
	r, _ := newAuthTestServer(repo)

	tests := []struct {
		name string
		body string
		code int
		msg  string
	}{
		{"missing fields", `{"username":"new"}`, http.StatusBadRequest, "Please fill all of the fields."},
		{"bad email", `{"username":"new","email":"not-an-email","password":"secret1"}`, http.StatusBadRequest, "Invalid email format. Please retry."},
		{"weak password", `{"username":"new","email":"new@example.com","password":"12345"}`, http.StatusBadRequest, "Password must have 6 characters and contain a letter."},
		{"duplicate email", `{"username":"new","email":"taken@example.com","password":"secret1"}`, http.StatusBadRequest, "Email already in use. Try logging in."},
		{"ok", `{"username":"new","email":"new@example.com","password":"secret1"}`, http.StatusCreated, "User registered successfully!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/signup", tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.msg)
		})
	}

	created := repo.usersByEmail["new@example.com"]
	require.NotNil(t, created)
	assert.Equal(t, user.RoleUser, created.Role)
	assert.NotEqual(t, "secret1", created.Password)
}

func TestSignupThenLogin(t *testing.T) {
	repo := newFakeAuthRepo()
	r, sessions := newAuthTestServer(repo)

	w := postJSON(r, "/signup", `{"username":"priya","email":"priya@example.com","password":"abc123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/login", `{"email":"priya@example.com","password":"abc123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, sessions.Len())

	ck := sessionCookie(t, w, "uniclash_sid")
	w = get(r, "/user-info", ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf("%q", "priya"))
}
