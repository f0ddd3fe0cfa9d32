package cadet

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"NCCPortal/internal/config"
	"NCCPortal/internal/view"
)

type Handler struct {
	auth         *AuthService
	service      *Service
	registration *Registration
}

func NewHandler(auth *AuthService, service *Service, registration *Registration) *Handler {
	return &Handler{auth: auth, service: service, registration: registration}
}

type loginRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Role == "" {
		req.Role = "cadet"
	}

	sess, err := h.auth.Login(c.Request().Context(), req.Role, req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials or server error."})
	}
	return c.JSON(http.StatusOK, map[string]string{"userId": sess.UserID, "role": sess.Role})
}

func (h *Handler) Logout(c echo.Context) error {
	h.auth.Logout()
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *Handler) Profile(c echo.Context) error {
	profile, err := h.service.Profile(c.Request().Context())
	if err == ErrNotLoggedIn {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in to view your profile"})
	}
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to load profile data")})
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var edited Profile
	if err := c.Bind(&edited); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	updated, err := h.service.UpdateProfile(c.Request().Context(), edited)
	if err == ErrNotLoggedIn {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in to update your profile"})
	}
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to update profile")})
	}
	return c.JSON(http.StatusOK, updated)
}

type cadetListResponse struct {
	Phase        string  `json:"phase"`
	Rows         []Cadet `json:"rows"`
	EmptyMessage string  `json:"emptyMessage,omitempty"`
}

// ListCadets refreshes and renders the ANO cadets list with an optional
// search term.
func (h *Handler) ListCadets(c echo.Context) error {
	if err := h.service.LoadCadets(c.Request().Context()); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to load cadets")})
	}

	searchTerm := c.QueryParam("search")
	rows := h.service.CadetRows(searchTerm)
	resp := cadetListResponse{Phase: h.service.CadetsPhase().String(), Rows: rows}
	if len(rows) == 0 {
		resp.EmptyMessage = view.EmptyMessage(searchTerm, "No cadets found matching your search", "No cadets registered yet")
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegistrationDraft(c echo.Context) error {
	return c.JSON(http.StatusOK, h.registration.Draft())
}

type setFieldRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (h *Handler) SetRegistrationField(c echo.Context) error {
	var req setFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := h.registration.SetField(req.Name, req.Value); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.registration.Draft())
}

func (h *Handler) SubmitRegistration(c echo.Context) error {
	fieldErrors, err := h.registration.Submit(c.Request().Context())
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Registration failed. Please try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Registration successful! Redirecting to login..."})
}
