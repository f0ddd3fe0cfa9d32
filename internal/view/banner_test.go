package view

import (
	"testing"
	"time"
)

func TestBannerSingleSlotPerKind(t *testing.T) {
	b := NewBanner()
	b.Success("first")
	b.Success("second")
	b.Error("oops")

	success, failure := b.Messages()
	if success != "second" {
		t.Errorf("success: got %q, want the replacing message", success)
	}
	if failure != "oops" {
		t.Errorf("failure: got %q", failure)
	}
}

func TestBannerExpires(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	b := NewBannerAt(3*time.Second, clock)

	b.Success("saved")
	if success, _ := b.Messages(); success != "saved" {
		t.Fatalf("fresh message missing: %q", success)
	}

	now = now.Add(3 * time.Second)
	if success, _ := b.Messages(); success != "" {
		t.Errorf("message must self-clear after the TTL, got %q", success)
	}
}

func TestBannerClearOnNavigation(t *testing.T) {
	b := NewBanner()
	b.Success("done")
	b.Error("failed")
	b.Clear()

	success, failure := b.Messages()
	if success != "" || failure != "" {
		t.Errorf("Clear must drop both messages, got %q / %q", success, failure)
	}
}

func TestFilterIdempotence(t *testing.T) {
	items := []string{"Arjun", "Bala", "arvind"}
	fields := func(s string) []string { return []string{s} }

	first := Search(items, "ar", fields)
	second := Search(items, "ar", fields)
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("search: got %v then %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("re-running the same filter changed the row set: %v vs %v", first, second)
		}
	}
}

func TestEmptyMessageDistinguishesNoMatchesFromNoData(t *testing.T) {
	noMatches := "No matching cadets found"
	noData := "No cadets registered for this camp"

	if got := EmptyMessage("xyz", noMatches, noData); got != noMatches {
		t.Errorf("with a search term: got %q", got)
	}
	if got := EmptyMessage("", noMatches, noData); got != noData {
		t.Errorf("without a search term: got %q", got)
	}
}
