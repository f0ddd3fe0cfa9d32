package view

import (
	"context"
	"sync"
)

// Phase is the single lifecycle state of a view. A view is in exactly one
// phase at a time; loading and a populated error cannot coexist.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is a read-only copy of a collection's state.
type Snapshot[T any] struct {
	Phase Phase
	Items []T
	Err   error
}

// Collection holds one view's primary collection together with its phase.
// Every dispatch is tagged with a monotonic generation; a completion older
// than the latest dispatch is discarded, so the view always reflects the
// most recent request even when an earlier, slower request resolves last.
type Collection[T any] struct {
	mu    sync.Mutex
	gen   uint64
	phase Phase
	items []T
	err   error
}

// Reload runs one fetch cycle: mark loading, fetch, complete. On failure the
// collection keeps its last-known items and records the error. The fetch
// error is returned either way so the caller can build its banner message.
func (c *Collection[T]) Reload(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	gen := c.begin()
	items, err := fetch(ctx)
	c.complete(gen, items, err)
	return err
}

func (c *Collection[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.phase = PhaseLoading
	c.err = nil
	return c.gen
}

func (c *Collection[T]) complete(gen uint64, items []T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer request has been dispatched since; this result is stale.
		return
	}
	if err != nil {
		c.phase = PhaseFailed
		c.err = err
		return
	}
	c.phase = PhaseReady
	c.items = items
	c.err = nil
}

// Snapshot returns the current phase and items.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{Phase: c.phase, Items: items, Err: c.err}
}

// Items returns the last successfully loaded collection.
func (c *Collection[T]) Items() []T {
	return c.Snapshot().Items
}

// Patch applies an optimistic in-place update to the loaded items. It is a
// stopgap for immediate feedback only: the next Reload is authoritative and
// overwrites whatever Patch wrote.
func (c *Collection[T]) Patch(apply func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = apply(c.items)
}
