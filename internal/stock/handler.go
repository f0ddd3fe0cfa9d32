package stock

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

type inventoryResponse struct {
	Phase        string      `json:"phase"`
	Rows         []StockItem `json:"rows"`
	Success      string      `json:"success,omitempty"`
	Error        string      `json:"error,omitempty"`
	EmptyMessage string      `json:"emptyMessage,omitempty"`
}

// Inventory renders the ANO stock list with search (by name or code) and
// type filtering.
func (h *Handler) Inventory(c echo.Context) error {
	if err := h.service.LoadInventory(c.Request().Context()); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to load stock items. Please try again."})
	}

	searchBy := c.QueryParam("searchBy")
	searchTerm := c.QueryParam("search")
	itemType := c.QueryParam("itemType")
	rows := h.service.InventoryRows(searchBy, searchTerm, itemType)

	success, failure := h.service.Banner.Messages()
	resp := inventoryResponse{
		Phase:   h.service.InventoryPhase().String(),
		Rows:    rows,
		Success: success,
		Error:   failure,
	}
	if len(rows) == 0 {
		resp.EmptyMessage = view.EmptyMessage(searchTerm, "No stock items match your search", "No stock items yet")
	}
	return c.JSON(http.StatusOK, resp)
}

// Available lists items with stock on hand for the issue form.
func (h *Handler) Available(c echo.Context) error {
	if err := h.service.LoadAvailable(c.Request().Context()); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to load available items"})
	}
	return c.JSON(http.StatusOK, h.service.AvailableItems())
}

func (h *Handler) AddStock(c echo.Context) error {
	var form NewStockForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	fieldErrors, err := h.service.AddStock(c.Request().Context(), form)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to add stock item. Please check your inputs and try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Stock item added successfully!"})
}

func (h *Handler) IssueStock(c echo.Context) error {
	var form IssueForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	fieldErrors, err := h.service.IssueStock(c.Request().Context(), form)
	if err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to issue stock. Please try again.")})
	}
	if fieldErrors.Any() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Stock issued successfully!"})
}

type cadetStockResponse struct {
	Phase        string     `json:"phase"`
	Rows         []CadetRow `json:"rows"`
	Error        string     `json:"error,omitempty"`
	EmptyMessage string     `json:"emptyMessage,omitempty"`
}

// CadetStock renders the logged-in cadet's issued stock for the active tab
// (all, unreturned, or pending), each backed by its own endpoint.
func (h *Handler) CadetStock(c echo.Context) error {
	sess := h.sessions.Read()
	if !sess.LoggedIn() {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in to view your stock details"})
	}
	cadetID, err := strconv.ParseInt(sess.UserID, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid session"})
	}

	tab := c.QueryParam("tab")
	if tab == "" {
		tab = TabAll
	}
	if err := h.service.LoadCadetTab(c.Request().Context(), tab, cadetID); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": config.Message(err, "Failed to fetch stock details")})
	}

	rows := h.service.CadetRows(tab)
	resp := cadetStockResponse{Phase: view.PhaseReady.String(), Rows: rows}
	if len(rows) == 0 {
		resp.EmptyMessage = "No stock items in this view"
	}
	return c.JSON(http.StatusOK, resp)
}

// CadetsIssued renders the cadets holding one stock item.
func (h *Handler) CadetsIssued(c echo.Context) error {
	stockID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid stock ID"})
	}

	if err := h.service.LoadByStock(c.Request().Context(), stockID); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to load cadet data. Please try again."})
	}
	return c.JSON(http.StatusOK, h.service.IssuedRows())
}

type pendingResponse struct {
	Groups       []Group `json:"groups"`
	EmptyMessage string  `json:"emptyMessage,omitempty"`
}

// PendingCadets renders the overdue-returns aggregation grouped by stock
// item. An empty result is a normal state with its own message, never an
// error.
func (h *Handler) PendingCadets(c echo.Context) error {
	if err := h.service.LoadPendingCadets(c.Request().Context()); err != nil {
		return c.JSON(config.Status(err, http.StatusBadGateway),
			map[string]string{"error": "Failed to fetch pending cadets."})
	}

	groups := h.service.PendingGroups()
	resp := pendingResponse{Groups: groups}
	if len(groups) == 0 {
		resp.EmptyMessage = "No cadets with pending stock returns."
	}
	return c.JSON(http.StatusOK, resp)
}
