package tempreg

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"NCCPortal/internal/config"
	"NCCPortal/internal/view"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type dashboardResponse struct {
	Phase        string                  `json:"phase"`
	Rows         []TemporaryRegistration `json:"rows"`
	Success      string                  `json:"success,omitempty"`
	Error        string                  `json:"error,omitempty"`
	EmptyMessage string                  `json:"emptyMessage,omitempty"`
}

// Dashboard renders the ANO temporary-registrations screen.
func (h *Handler) Dashboard(c echo.Context) error {
	if err := h.service.Load(c.Request().Context()); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to load temporary registrations. Please try again."})
	}
	return c.JSON(http.StatusOK, h.dashboard(c.QueryParam("search")))
}

func (h *Handler) dashboard(searchTerm string) dashboardResponse {
	success, failure := h.service.Banner.Messages()
	resp := dashboardResponse{
		Phase:   h.service.Phase().String(),
		Rows:    h.service.Rows(searchTerm),
		Success: success,
		Error:   failure,
	}
	if len(resp.Rows) == 0 {
		resp.EmptyMessage = view.EmptyMessage(searchTerm,
			"No matching registrations found", "No temporary registrations yet")
	}
	return resp
}

// Submit is the public temporary-registration signup.
func (h *Handler) Submit(c echo.Context) error {
	var form Form
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	fieldErrors, err := h.service.Submit(c.Request().Context(), form)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Registration failed. Please try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Registration submitted successfully!"})
}

// Assign gives one registrant a regimental number; the number rides in as a
// query parameter.
func (h *Handler) Assign(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid registration ID"})
	}

	regimentalNo := c.QueryParam("regimentalNo")
	if err := h.service.Assign(c.Request().Context(), id, regimentalNo); err != nil {
		if regimentalNo == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Regimental number cannot be empty."})
		}
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to assign regimental number. Please try again.")})
	}
	return c.JSON(http.StatusOK, h.dashboard(""))
}

type bulkAssignRequest struct {
	Prefix string `json:"prefix"`
}

// BulkAssign numbers every unassigned registrant with the given prefix.
func (h *Handler) BulkAssign(c echo.Context) error {
	var req bulkAssignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Prefix == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Prefix cannot be empty."})
	}

	assigned, err := h.service.BulkAssign(c.Request().Context(), req.Prefix)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Bulk assignment failed. Please try again.")})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"assigned": assigned,
		"rows":     h.service.Rows(""),
	})
}

// Notify relays the enrollment announcement to every registrant.
func (h *Handler) Notify(c echo.Context) error {
	var form NotificationForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	msg, fieldErrors, err := h.service.Notify(c.Request().Context(), form)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to send notifications. Please try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": msg})
}
