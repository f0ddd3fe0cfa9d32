package view

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestUniqueKeysPreservesEncounterOrder(t *testing.T) {
	items := []struct{ CadetID string }{
		{"c3"}, {"c1"}, {"c3"}, {"c2"}, {"c1"},
	}
	keys := UniqueKeys(items, func(i struct{ CadetID string }) string { return i.CadetID })

	want := []string{"c3", "c1", "c2"}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d]: got %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestFanOutEmptyKeysIssuesZeroRequests(t *testing.T) {
	var calls atomic.Int64
	lookup := FanOut(context.Background(), []string{}, func(ctx context.Context, k string) (int, error) {
		calls.Add(1)
		return 0, nil
	})

	if calls.Load() != 0 {
		t.Errorf("empty primary collection must issue zero dependent requests, got %d", calls.Load())
	}
	if len(lookup) != 0 {
		t.Errorf("lookup: got %v, want empty", lookup)
	}
}

func TestFanOutDropsFailedKeys(t *testing.T) {
	keys := []string{"c1", "c2", "c3"}
	lookup := FanOut(context.Background(), keys, func(ctx context.Context, k string) (string, error) {
		if k == "c2" {
			return "", errors.New("fetch failed")
		}
		return "cadet " + k, nil
	})

	if len(lookup) != 2 {
		t.Fatalf("lookup size: got %d, want 2", len(lookup))
	}
	if _, ok := lookup["c2"]; ok {
		t.Error("failed key must be absent from the lookup")
	}
	if lookup["c1"] != "cadet c1" || lookup["c3"] != "cadet c3" {
		t.Errorf("lookup: got %v", lookup)
	}
}

func TestFanOutFetchesEveryUniqueKeyOnce(t *testing.T) {
	var calls atomic.Int64
	keys := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	lookup := FanOut(context.Background(), keys, func(ctx context.Context, k int) (int, error) {
		calls.Add(1)
		return k * 10, nil
	})

	if calls.Load() != int64(len(keys)) {
		t.Errorf("calls: got %d, want %d", calls.Load(), len(keys))
	}
	for _, k := range keys {
		if lookup[k] != k*10 {
			t.Errorf("lookup[%d]: got %d", k, lookup[k])
		}
	}
}
