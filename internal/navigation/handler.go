package navigation

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"NCCPortal/internal/session"
)

type Handler struct {
	navigator *Navigator
	sessions  *session.Store
}

func NewHandler(navigator *Navigator, sessions *session.Store) *Handler {
	return &Handler{navigator: navigator, sessions: sessions}
}

// Links returns the navigation entries for the current session.
func (h *Handler) Links(c echo.Context) error {
	sess := h.sessions.Read()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"loggedIn": sess.LoggedIn(),
		"role":     sess.Role,
		"links":    h.navigator.Links(sess),
	})
}
