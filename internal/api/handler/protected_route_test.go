package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogcraft/blog-api/internal/api/middleware"
	"github.com/blogcraft/blog-api/internal/core/domain"
	"github.com/blogcraft/blog-api/internal/core/service"
)

// Exercises the full protected-route chain: auth middleware in front of the
// user update handler, with a real token service.
func TestProtectedUpdate_WithAndWithoutToken(t *testing.T) {
	tokens, err := service.NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	users := &stubUserService{user: &domain.User{ID: "user_1", Username: "alice"}}
	h := NewUserHandler(&stubAuthService{}, users)

	e := echo.New()
	e.Validator = NewValidator()
	e.PUT("/api/users/:id", h.Update, middleware.Auth(tokens))

	token, err := tokens.Issue("user_1", domain.RoleAuthor)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	body := `{"username":"alicia"}`

	// With a valid bearer token the update goes through.
	req := httptest.NewRequest(http.MethodPut, "/api/users/user_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}

	// Without a token the handler is never reached.
	req = httptest.NewRequest(http.MethodPut, "/api/users/user_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing token") {
		t.Fatalf("expected 'missing token' message, got %s", rec.Body.String())
	}

	// A tampered token is rejected the same way as any invalid one.
	req = httptest.NewRequest(http.MethodPut, "/api/users/user_1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with tampered token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid token") {
		t.Fatalf("expected 'invalid token' message, got %s", rec.Body.String())
	}
}
