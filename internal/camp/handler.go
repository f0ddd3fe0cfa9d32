package camp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"NCCPortal/internal/config"
	"NCCPortal/internal/session"
	"NCCPortal/internal/view"
)

type Handler struct {
	service  *Service
	sessions *session.Store
}

func NewHandler(service *Service, sessions *session.Store) *Handler {
	return &Handler{service: service, sessions: sessions}
}

type campListResponse struct {
	Phase        string `json:"phase"`
	Rows         []Row  `json:"rows"`
	Success      string `json:"success,omitempty"`
	Error        string `json:"error,omitempty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

// Upcoming renders the public upcoming-camps list.
func (h *Handler) Upcoming(c echo.Context) error {
	if err := h.service.LoadUpcoming(c.Request().Context()); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to load upcoming camps. Please try again later."})
	}
	return c.JSON(http.StatusOK, h.campList(""))
}

// MyCamps renders the cadet camps screen; tab=registered shows the cadet's
// own registrations, anything else shows the upcoming list.
func (h *Handler) MyCamps(c echo.Context) error {
	cadetID, err := h.sessionCadetID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in to view camps"})
	}

	ctx := c.Request().Context()
	if c.QueryParam("tab") == "registered" {
		err = h.service.LoadMyCamps(ctx, cadetID)
	} else {
		err = h.service.LoadUpcoming(ctx)
	}
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to load camps. Please try again.")})
	}
	return c.JSON(http.StatusOK, h.campList("No camps available"))
}

func (h *Handler) campList(emptyMessage string) campListResponse {
	success, failure := h.service.Banner.Messages()
	resp := campListResponse{
		Phase:   h.service.CampsPhase().String(),
		Rows:    h.service.CampRows(),
		Success: success,
		Error:   failure,
	}
	if len(resp.Rows) == 0 && emptyMessage != "" {
		resp.EmptyMessage = emptyMessage
	}
	return resp
}

// Create adds a new camp (ANO action).
func (h *Handler) Create(c echo.Context) error {
	var form CampForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	fieldErrors, err := h.service.CreateCamp(c.Request().Context(), form)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to add camp. Please try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Camp added successfully!"})
}

// Register signs the logged-in cadet up for a camp.
func (h *Handler) Register(c echo.Context) error {
	cadetID, err := h.sessionCadetID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in to register"})
	}
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid camp ID"})
	}

	reg, err := h.service.Register(c.Request().Context(), campID, cadetID)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to register for the camp. Please try again.")})
	}
	return c.JSON(http.StatusCreated, reg)
}

// RegisterPublic is the unauthenticated signup used from the public camps
// page.
func (h *Handler) RegisterPublic(c echo.Context) error {
	var form PublicRegistrationForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	fieldErrors, err := h.service.RegisterPublic(c.Request().Context(), form)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Registration failed. Please try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Successfully registered for the camp!"})
}

type rosterResponse struct {
	CampName      string      `json:"campName"`
	Rows          []RosterRow `json:"rows"`
	PendingCount  int         `json:"pendingCount"`
	AcceptedCount int         `json:"acceptedCount"`
	TotalCount    int         `json:"totalCount"`
	Success       string      `json:"success,omitempty"`
	Error         string      `json:"error,omitempty"`
	EmptyMessage  string      `json:"emptyMessage,omitempty"`
}

// Roster renders the camp members screen for one camp.
func (h *Handler) Roster(c echo.Context) error {
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid camp ID"})
	}

	if err := h.service.LoadRoster(c.Request().Context(), campID); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to load camp members. Please try again."})
	}

	viewMode := c.QueryParam("view")
	if viewMode == "" {
		viewMode = ViewPending
	}
	searchTerm := c.QueryParam("search")
	return c.JSON(http.StatusOK, h.roster(viewMode, searchTerm))
}

func (h *Handler) roster(viewMode, searchTerm string) rosterResponse {
	pending, accepted, all := h.service.TabCounts()
	success, failure := h.service.Banner.Messages()
	resp := rosterResponse{
		CampName:      h.service.RosterCampName(),
		Rows:          h.service.RosterRows(viewMode, searchTerm),
		PendingCount:  pending,
		AcceptedCount: accepted,
		TotalCount:    all,
		Success:       success,
		Error:         failure,
	}
	if len(resp.Rows) == 0 {
		resp.EmptyMessage = view.EmptyMessage(searchTerm, "No matching cadets found", noDataMessage(viewMode))
	}
	return resp
}

func noDataMessage(viewMode string) string {
	switch viewMode {
	case ViewPending:
		return "No pending cadet registrations"
	case ViewAccepted:
		return "No accepted cadets yet"
	default:
		return "No cadets registered for this camp"
	}
}

// SetRegistrationStatus accepts or rejects a registration; isAccepted rides
// in as a query parameter.
func (h *Handler) SetRegistrationStatus(c echo.Context) error {
	registrationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid registration ID"})
	}
	accepted, err := strconv.ParseBool(c.QueryParam("isAccepted"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "isAccepted must be true or false"})
	}

	if err := h.service.SetRegistrationStatus(c.Request().Context(), registrationID, accepted); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to update registration status")})
	}
	return c.JSON(http.StatusOK, h.roster(ViewPending, ""))
}

func (h *Handler) sessionCadetID(c echo.Context) (int64, error) {
	sess := h.sessions.Read()
	if !sess.LoggedIn() {
		return 0, echo.ErrUnauthorized
	}
	return strconv.ParseInt(sess.UserID, 10, 64)
}
