package tempreg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestBulkAssignNumbersUnassignedInOrder(t *testing.T) {
	var posted []AssignmentUpdate
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/temporary-registrations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]TemporaryRegistration{
			{ID: 1, Name: "Arun"},
			{ID: 2, Name: "Bina", RegimentalNo: "OLD7"},
			{ID: 3, Name: "Chetan"},
			{ID: 4, Name: "Divya"},
		})
	})
	mux.HandleFunc("POST /api/temporary-registrations/bulk-assign", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
			t.Errorf("decoding bulk-assign body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	s := newTestService(t, mux)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	assigned, err := s.BulkAssign(context.Background(), "P")
	if err != nil {
		t.Fatalf("BulkAssign failed: %v", err)
	}
	if assigned != 3 {
		t.Fatalf("expected 3 assignments, got %d", assigned)
	}

	want := []AssignmentUpdate{
		{ID: 1, RegimentalNo: "P1"},
		{ID: 3, RegimentalNo: "P2"},
		{ID: 4, RegimentalNo: "P3"},
	}
	if len(posted) != len(want) {
		t.Fatalf("expected %d posted updates, got %d", len(want), len(posted))
	}
	for i, u := range want {
		if posted[i] != u {
			t.Errorf("update %d: expected %+v, got %+v", i, u, posted[i])
		}
	}

	rows := s.Rows("")
	if rows[0].RegimentalNo != "P1" || rows[2].RegimentalNo != "P2" || rows[3].RegimentalNo != "P3" {
		t.Errorf("unassigned rows not merged: %+v", rows)
	}
	if rows[1].RegimentalNo != "OLD7" {
		t.Errorf("already assigned row was touched: got %q", rows[1].RegimentalNo)
	}
}

func TestBulkAssignAllAssignedPostsNothing(t *testing.T) {
	posts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/temporary-registrations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]TemporaryRegistration{
			{ID: 1, Name: "Arun", RegimentalNo: "P1"},
		})
	})
	mux.HandleFunc("POST /api/temporary-registrations/bulk-assign", func(w http.ResponseWriter, r *http.Request) {
		posts++
	})

	s := newTestService(t, mux)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assigned, err := s.BulkAssign(context.Background(), "P")
	if err != nil {
		t.Fatalf("BulkAssign failed: %v", err)
	}
	if assigned != 0 {
		t.Fatalf("expected 0 assignments, got %d", assigned)
	}
	if posts != 0 {
		t.Fatalf("expected no bulk-assign request, got %d", posts)
	}
}

func TestAssignMergesSingleRow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/temporary-registrations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]TemporaryRegistration{
			{ID: 5, Name: "Esha"},
			{ID: 6, Name: "Farid"},
		})
	})
	mux.HandleFunc("PUT /api/temporary-registrations/5/assign-regimental", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("regimentalNo"); got != "P9" {
			t.Errorf("expected regimentalNo=P9, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	s := newTestService(t, mux)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Assign(context.Background(), 5, "P9"); err != nil {
		t.Fatalf("Assign failed: %v", err)
	}

	rows := s.Rows("")
	if rows[0].RegimentalNo != "P9" {
		t.Errorf("expected row 5 to carry P9, got %q", rows[0].RegimentalNo)
	}
	if rows[1].RegimentalNo != "" {
		t.Errorf("expected row 6 untouched, got %q", rows[1].RegimentalNo)
	}
}

func TestSearchSkipsUnassignedRegimentalNo(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/temporary-registrations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]TemporaryRegistration{
			{ID: 1, Name: "Arun", RegimentalNo: "P1"},
			{ID: 2, Name: "Bina"},
		})
	})

	s := newTestService(t, mux)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rows := s.Rows("P1")
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("expected only the assigned row to match, got %+v", rows)
	}
}

func TestSubmitValidationFailureIssuesNoRequest(t *testing.T) {
	posts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/temporary-registrations", func(w http.ResponseWriter, r *http.Request) {
		posts++
	})

	s := newTestService(t, mux)
	form := Form{Name: "Arun"} // missing nearly everything
	errs, err := s.Submit(context.Background(), form)
	if err != nil {
		t.Fatalf("Submit returned transport error: %v", err)
	}
	if !errs.Any() {
		t.Fatal("expected field errors for incomplete form")
	}
	if _, ok := errs["emailId"]; !ok {
		t.Errorf("expected an error keyed on emailId, got %v", errs)
	}
	if posts != 0 {
		t.Fatalf("expected no network request on validation failure, got %d", posts)
	}
}

func TestNotifyReturnsServerText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /notifications/notify-temporary-registrations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Notifications sent to 12 registrants"))
	})

	s := newTestService(t, mux)
	msg, errs, err := s.Notify(context.Background(), NotificationForm{
		Location: "Parade Ground", Date: "2026-10-01", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if errs.Any() {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if msg != "Notifications sent to 12 registrants" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestNotifyRequiresLocationDateTime(t *testing.T) {
	s := newTestService(t, http.NewServeMux())
	_, errs, err := s.Notify(context.Background(), NotificationForm{Instructions: "Bring ID"})
	if err != nil {
		t.Fatalf("Notify returned transport error: %v", err)
	}
	for _, key := range []string{"location", "date", "time"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("expected an error keyed on %q, got %v", key, errs)
		}
	}
}
