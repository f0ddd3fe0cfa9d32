package view

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

func TestReloadSuccess(t *testing.T) {
	var c Collection[string]

	err := c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}

	snap := c.Snapshot()
	if snap.Phase != PhaseReady {
		t.Errorf("phase: got %v, want ready", snap.Phase)
	}
	if len(snap.Items) != 2 {
		t.Errorf("items: got %d, want 2", len(snap.Items))
	}
}

func TestReloadFailureKeepsLastKnownItems(t *testing.T) {
	var c Collection[string]
	c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})

	wantErr := errors.New("boom")
	err := c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Reload error: got %v", err)
	}

	snap := c.Snapshot()
	if snap.Phase != PhaseFailed {
		t.Errorf("phase: got %v, want failed", snap.Phase)
	}
	if len(snap.Items) != 1 || snap.Items[0] != "a" {
		t.Errorf("failed reload must keep last-known items, got %v", snap.Items)
	}
}

// Two fetches dispatched in quick succession: the earlier one resolves last,
// and its result must be discarded so the view matches the final request.
func TestStaleCompletionDiscarded(t *testing.T) {
	var c Collection[string]

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
			<-release
			return []string{"results for A"}, nil
		})
	}()

	// Wait for the slow fetch to be dispatched before the fast one.
	for c.Snapshot().Phase != PhaseLoading {
		runtime.Gosched()
	}

	c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"results for AB"}, nil
	})
	close(release)
	wg.Wait()

	snap := c.Snapshot()
	if snap.Phase != PhaseReady {
		t.Fatalf("phase: got %v, want ready", snap.Phase)
	}
	if len(snap.Items) != 1 || snap.Items[0] != "results for AB" {
		t.Errorf("stale result overwrote the fresh one: got %v", snap.Items)
	}
}

func TestPatchIsOverwrittenByReload(t *testing.T) {
	var c Collection[string]
	c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"server"}, nil
	})

	c.Patch(func(items []string) []string {
		return []string{"optimistic"}
	})
	if got := c.Items(); got[0] != "optimistic" {
		t.Fatalf("Patch: got %v", got)
	}

	c.Reload(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"server"}, nil
	})
	if got := c.Items(); got[0] != "server" {
		t.Errorf("re-fetch must overwrite the optimistic patch, got %v", got)
	}
}
