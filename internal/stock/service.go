package stock

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"NCCPortal/internal/cadet"
	"NCCPortal/internal/config"
	"NCCPortal/internal/forms"
	"NCCPortal/internal/view"
)

// Service backs the stock screens: the ANO inventory with its add/issue
// forms, the cadet issued-stock tabs, the per-item cadets-issued view, and
// the pending-cadets aggregation.
type Service struct {
	client   *Client
	validate *validator.Validate
	Banner   *view.Banner
	now      func() time.Time

	inventory  view.Collection[StockItem]
	available  view.Collection[StockItem]
	all        view.Collection[IssuedStock]
	unreturned view.Collection[IssuedStock]
	pending    view.Collection[IssuedStock]
	byStock    view.Collection[IssuedStock]
	overdue    view.Collection[IssuedStock]
}

func NewService(client *Client, validate *validator.Validate) *Service {
	return &Service{
		client:   client,
		validate: validate,
		Banner:   view.NewBanner(),
		now:      time.Now,
	}
}

func (s *Service) LoadInventory(ctx context.Context) error {
	return s.inventory.Reload(ctx, s.client.All)
}

func (s *Service) LoadAvailable(ctx context.Context) error {
	return s.available.Reload(ctx, s.client.Available)
}

func (s *Service) AvailableItems() []StockItem {
	return s.available.Items()
}

// InventoryRows filters the loaded inventory: search over item name or item
// code (selectable), plus a type filter where "all" is the union.
func (s *Service) InventoryRows(searchBy, searchTerm, itemType string) []StockItem {
	rows := make([]StockItem, 0)
	for _, item := range s.inventory.Items() {
		field := item.ItemName
		if searchBy == "code" {
			field = item.ItemCode
		}
		if !view.MatchesTerm(searchTerm, field) {
			continue
		}
		if itemType != "" && itemType != "all" && item.ItemType != itemType {
			continue
		}
		rows = append(rows, item)
	}
	return rows
}

func (s *Service) InventoryPhase() view.Phase {
	return s.inventory.Snapshot().Phase
}

// AddStock validates and posts a new inventory item, then re-fetches the
// inventory.
func (s *Service) AddStock(ctx context.Context, form NewStockForm) (forms.FieldErrors, error) {
	if errs := forms.Validate(s.validate, form); errs.Any() {
		return errs, nil
	}
	if err := s.client.Create(ctx, form); err != nil {
		s.Banner.Error(config.Message(err, "Failed to add stock item. Please check your inputs and try again."))
		return nil, err
	}
	s.Banner.Success("Stock item added successfully!")
	if err := s.LoadInventory(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// IssueStock validates the issue draft and posts it only when clean; a
// zero or missing quantity fails validation and issues no network request.
func (s *Service) IssueStock(ctx context.Context, form IssueForm) (forms.FieldErrors, error) {
	if errs := forms.Validate(s.validate, form); errs.Any() {
		return errs, nil
	}
	if err := s.client.Issue(ctx, form); err != nil {
		s.Banner.Error(config.Message(err, "Failed to issue stock. Please try again."))
		return nil, err
	}
	s.Banner.Success("Stock issued successfully!")
	if err := s.LoadInventory(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

// LoadCadetTab fetches the cadet stock screen's active tab from its own
// endpoint.
func (s *Service) LoadCadetTab(ctx context.Context, tab string, cadetID int64) error {
	switch tab {
	case TabUnreturned:
		return s.unreturned.Reload(ctx, func(ctx context.Context) ([]IssuedStock, error) {
			return s.client.UnreturnedByCadet(ctx, cadetID)
		})
	case TabPending:
		return s.pending.Reload(ctx, func(ctx context.Context) ([]IssuedStock, error) {
			return s.client.PendingByCadet(ctx, cadetID)
		})
	default:
		return s.all.Reload(ctx, func(ctx context.Context) ([]IssuedStock, error) {
			return s.client.IssuedByCadet(ctx, cadetID)
		})
	}
}

// CadetRow is one rendered entry of the cadet stock screen; Overdue is
// derived from the return date against the portal clock.
type CadetRow struct {
	IssuedStock
	Overdue bool `json:"overdue"`
}

func (s *Service) CadetRows(tab string) []CadetRow {
	var items []IssuedStock
	switch tab {
	case TabUnreturned:
		items = s.unreturned.Items()
	case TabPending:
		items = s.pending.Items()
	default:
		items = s.all.Items()
	}

	now := s.now()
	rows := make([]CadetRow, len(items))
	for i, item := range items {
		rows[i] = CadetRow{IssuedStock: item, Overdue: item.Overdue(now)}
	}
	return rows
}

// IssuedRow is one rendered entry of the cadets-issued screen.
type IssuedRow struct {
	Cadet      cadet.Cadet `json:"cadet"`
	IssuedAt   string      `json:"issueDate"`
	ReturnDate string      `json:"returnDate"`
	Quantity   int         `json:"quantity"`
}

// LoadByStock fetches the issuances of one stock item.
func (s *Service) LoadByStock(ctx context.Context, stockID int64) error {
	return s.byStock.Reload(ctx, func(ctx context.Context) ([]IssuedStock, error) {
		return s.client.ByStock(ctx, stockID)
	})
}

// IssuedRows merges cadet and issuance fields; entries without a cadet are
// skipped.
func (s *Service) IssuedRows() []IssuedRow {
	rows := make([]IssuedRow, 0)
	for _, item := range s.byStock.Items() {
		if item.Cadet == nil {
			continue
		}
		rows = append(rows, IssuedRow{
			Cadet:      *item.Cadet,
			IssuedAt:   item.IssuedAt,
			ReturnDate: item.ReturnDate,
			Quantity:   item.Quantity,
		})
	}
	return rows
}

// LoadPendingCadets fetches the portal-wide overdue entries; a 204 from the
// endpoint lands here as an empty list.
func (s *Service) LoadPendingCadets(ctx context.Context) error {
	return s.overdue.Reload(ctx, s.client.PendingCadets)
}

// PendingGroups buckets the overdue entries by stock item. Entries without a
// stock record are skipped.
func (s *Service) PendingGroups() []Group {
	order := make([]int64, 0)
	grouped := make(map[int64]*Group)
	for _, entry := range s.overdue.Items() {
		if entry.Stock.ID == 0 {
			continue
		}
		group, ok := grouped[entry.Stock.ID]
		if !ok {
			group = &Group{Stock: entry.Stock}
			grouped[entry.Stock.ID] = group
			order = append(order, entry.Stock.ID)
		}
		if entry.Cadet != nil {
			group.Cadets = append(group.Cadets, *entry.Cadet)
		}
	}

	groups := make([]Group, 0, len(order))
	for _, id := range order {
		groups = append(groups, *grouped[id])
	}
	return groups
}
