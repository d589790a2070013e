package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/sessions"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/users"
)

func newTestHandler(t *testing.T) (*Handler, *sessions.MemoryRegistry, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := sessions.NewMemoryRegistry(time.Hour)
	t.Cleanup(registry.Close)

	svc := NewService(users.NewService(users.NewMemoryRepo()), registry, time.Hour)
	h := NewHandler(svc, false)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return h, registry, r
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	t.Fatalf("no %s cookie in response", middleware.SessionCookie)
	return nil
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterCreatesSession(t *testing.T) {
	_, registry, r := newTestHandler(t)

	rec := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.ID != 1 || got.Email != "alex@example.com" {
		t.Fatalf("unexpected user payload: %+v", got)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked in response body")
	}

	ck := sessionCookie(t, rec)
	if !ck.HttpOnly {
		t.Fatalf("expected HttpOnly session cookie")
	}
	if userID, ok := registry.Get(ck.Value); !ok || userID != 1 {
		t.Fatalf("expected live session for user 1, got (%d, %v)", userID, ok)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, r := newTestHandler(t)

	body := `{"name":"Alex","email":"alex@example.com","password":"secret1"}`
	if rec := doJSON(r, http.MethodPost, "/api/v1/auth/register", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d", rec.Code)
	}
	rec := doJSON(r, http.MethodPost, "/api/v1/auth/register", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	_, _, r := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","password":"secret1"}`},
		{"bad email", `{"name":"A","email":"not-an-email","password":"secret1"}`},
		{"short password", `{"name":"A","email":"a@b.com","password":"tiny"}`},
		{"malformed body", `{`},
	}
	for _, tc := range cases {
		rec := doJSON(r, http.MethodPost, "/api/v1/auth/register", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestLoginRoundtrip(t *testing.T) {
	_, registry, r := newTestHandler(t)

	doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"secret1"}`)

	rec := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alex@example.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	ck := sessionCookie(t, rec)
	if userID, ok := registry.Get(ck.Value); !ok || userID != 1 {
		t.Fatalf("expected session for user 1, got (%d, %v)", userID, ok)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, _, r := newTestHandler(t)

	doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"secret1"}`)

	rec := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alex@example.com","password":"wrong-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	_, _, r := newTestHandler(t)

	rec := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@example.com","password":"secret1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLogoutClosesSession(t *testing.T) {
	_, registry, r := newTestHandler(t)

	rec := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Alex","email":"alex@example.com","password":"secret1"}`)
	ck := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: ck.Value})
	out := httptest.NewRecorder()
	r.ServeHTTP(out, req)

	if out.Code != http.StatusNoContent {
		t.Fatalf("logout: status = %d", out.Code)
	}
	if _, ok := registry.Get(ck.Value); ok {
		t.Fatalf("expected session to be closed")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	_, _, r := newTestHandler(t)

	rec := doJSON(r, http.MethodPost, "/api/v1/auth/logout", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
