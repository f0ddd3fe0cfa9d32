package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"NCCPortal/internal/session"
)

func invoke(t *testing.T, mw echo.MiddlewareFunc) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec.Code
}

func TestRequireLoginRejectsLoggedOut(t *testing.T) {
	sessions := session.NewStore()
	if code := invoke(t, RequireLogin(sessions)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestRequireLoginAllowsLoggedIn(t *testing.T) {
	sessions := session.NewStore()
	sessions.Login("7", session.RoleCadet)
	if code := invoke(t, RequireLogin(sessions)); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRequireRoleDistinguishes401From403(t *testing.T) {
	sessions := session.NewStore()
	mw := RequireRole(sessions, session.RoleANO)

	if code := invoke(t, mw); code != http.StatusUnauthorized {
		t.Fatalf("logged out: expected 401, got %d", code)
	}

	sessions.Login("7", session.RoleCadet)
	if code := invoke(t, mw); code != http.StatusForbidden {
		t.Fatalf("wrong role: expected 403, got %d", code)
	}

	sessions.Login("3", session.RoleANO)
	if code := invoke(t, mw); code != http.StatusOK {
		t.Fatalf("right role: expected 200, got %d", code)
	}
}
