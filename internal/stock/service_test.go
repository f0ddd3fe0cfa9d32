package stock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"NCCPortal/internal/cadet"
	"NCCPortal/internal/config"
	"NCCPortal/internal/forms"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	api := config.NewAPIClientDirect(server.URL)
	return NewService(NewClient(api), forms.NewValidator())
}

func TestIssueStockZeroQuantityIssuesNoRequest(t *testing.T) {
	posts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/issued-stocks/issue-stock", func(w http.ResponseWriter, r *http.Request) {
		posts++
	})

	s := newTestService(t, mux)
	form := IssueForm{
		ItemCode:     "UNI-01",
		RegimentalNo: "P1",
		IssuedAt:     "2026-09-01",
		ReturnDate:   "2026-09-30",
		// Quantity left at zero
	}
	errs, err := s.IssueStock(context.Background(), form)
	if err != nil {
		t.Fatalf("IssueStock returned transport error: %v", err)
	}
	if _, ok := errs["quantity"]; !ok {
		t.Fatalf("expected an error keyed on quantity, got %v", errs)
	}
	if posts != 0 {
		t.Fatalf("expected no network request on validation failure, got %d", posts)
	}
}

func TestPendingCadets204IsEmptyNotError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/issued-stocks/pending-cadets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	s := newTestService(t, mux)
	if err := s.LoadPendingCadets(context.Background()); err != nil {
		t.Fatalf("expected 204 to load cleanly, got %v", err)
	}
	if groups := s.PendingGroups(); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestPendingGroupsBucketsByStockItem(t *testing.T) {
	boots := StockItem{ID: 1, ItemName: "Boots"}
	belt := StockItem{ID: 2, ItemName: "Belt"}
	arun := cadet.Cadet{ID: 10, FullName: "Arun"}
	bina := cadet.Cadet{ID: 11, FullName: "Bina"}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/issued-stocks/pending-cadets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]IssuedStock{
			{ID: 1, Stock: boots, Cadet: &arun},
			{ID: 2, Stock: belt, Cadet: &arun},
			{ID: 3, Stock: boots, Cadet: &bina},
			{ID: 4, Stock: boots}, // no cadet attached
		})
	})

	s := newTestService(t, mux)
	if err := s.LoadPendingCadets(context.Background()); err != nil {
		t.Fatalf("LoadPendingCadets failed: %v", err)
	}

	groups := s.PendingGroups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Stock.ID != 1 || groups[1].Stock.ID != 2 {
		t.Errorf("expected encounter order boots then belt, got %+v", groups)
	}
	if len(groups[0].Cadets) != 2 {
		t.Errorf("expected 2 cadets holding boots, got %d", len(groups[0].Cadets))
	}
	if len(groups[1].Cadets) != 1 || groups[1].Cadets[0].FullName != "Arun" {
		t.Errorf("unexpected belt group: %+v", groups[1])
	}
}

func TestCadetRowsDeriveOverdueFromClock(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/issued-stocks/10", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]IssuedStock{
			{ID: 1, ReturnDate: "2026-08-01"},
			{ID: 2, ReturnDate: "2026-12-01"},
			{ID: 3, ReturnDate: "not-a-date"},
		})
	})

	s := newTestService(t, mux)
	s.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	if err := s.LoadCadetTab(context.Background(), TabAll, 10); err != nil {
		t.Fatalf("LoadCadetTab failed: %v", err)
	}

	rows := s.CadetRows(TabAll)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].Overdue {
		t.Error("past return date should be overdue")
	}
	if rows[1].Overdue {
		t.Error("future return date should not be overdue")
	}
	if rows[2].Overdue {
		t.Error("unparseable return date should not be overdue")
	}
}

func TestInventoryRowsSearchAndTypeFilter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stock/all", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]StockItem{
			{ID: 1, ItemName: "Boots", ItemCode: "BT-01", ItemType: TypeRetentional},
			{ID: 2, ItemName: "Badge", ItemCode: "BD-02", ItemType: TypeNonRetentional},
			{ID: 3, ItemName: "Belt", ItemCode: "BL-03", ItemType: TypeRetentional},
		})
	})

	s := newTestService(t, mux)
	if err := s.LoadInventory(context.Background()); err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	if rows := s.InventoryRows("name", "b", "all"); len(rows) != 3 {
		t.Errorf("search 'b' with type all: expected 3 rows, got %d", len(rows))
	}
	if rows := s.InventoryRows("name", "boot", "all"); len(rows) != 1 || rows[0].ID != 1 {
		t.Errorf("search 'boot': expected only Boots, got %+v", rows)
	}
	if rows := s.InventoryRows("code", "bd", "all"); len(rows) != 1 || rows[0].ID != 2 {
		t.Errorf("code search 'bd': expected only Badge, got %+v", rows)
	}
	if rows := s.InventoryRows("name", "", TypeRetentional); len(rows) != 2 {
		t.Errorf("type filter: expected 2 retentional rows, got %d", len(rows))
	}
}

func TestIssuedRowsSkipEntriesWithoutCadet(t *testing.T) {
	arun := cadet.Cadet{ID: 10, FullName: "Arun"}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/issued-stocks/stock/5/cadets", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]IssuedStock{
			{ID: 1, Cadet: &arun, IssuedAt: "2026-08-01", ReturnDate: "2026-09-15", Quantity: 2},
			{ID: 2, Quantity: 1},
		})
	})

	s := newTestService(t, mux)
	if err := s.LoadByStock(context.Background(), 5); err != nil {
		t.Fatalf("LoadByStock failed: %v", err)
	}

	rows := s.IssuedRows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Cadet.FullName != "Arun" || rows[0].Quantity != 2 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}
