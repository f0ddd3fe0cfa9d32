package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"NCCPortal/internal/session"
)

// RequireLogin rejects requests while no session is active.
func RequireLogin(sessions *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sessions.Read().LoggedIn() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in first"})
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests unless the active session carries the given
// role. It implies RequireLogin: a logged-out visitor gets 401, a logged-in
// visitor with the wrong role gets 403.
func RequireRole(sessions *session.Store, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := sessions.Read()
			if !sess.LoggedIn() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in first"})
			}
			if sess.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: insufficient permissions"})
			}
			return next(c)
		}
	}
}
