package view

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// fanOutLimit caps how many dependent requests run at once. The remote API
// offers no batch-get, so related records are resolved one request per
// unique key.
const fanOutLimit = 8

// UniqueKeys extracts the distinct foreign keys from a primary collection,
// preserving encounter order.
func UniqueKeys[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]struct{}, len(items))
	keys := make([]K, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// FanOut fetches one dependent record per key, concurrently, and returns a
// lookup keyed by id. The lookup is ready only after every request in the
// batch has settled. Keys whose fetch failed are absent from the lookup;
// renderers skip rows with a missing entry rather than failing the batch.
// An empty key set issues zero requests.
func FanOut[K comparable, V any](ctx context.Context, keys []K, fetch func(context.Context, K) (V, error)) map[K]V {
	lookup := make(map[K]V, len(keys))
	if len(keys) == 0 {
		return lookup
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for _, key := range keys {
		g.Go(func() error {
			value, err := fetch(ctx, key)
			if err != nil {
				// Dropped from the lookup; the row is skipped on render.
				return nil
			}
			mu.Lock()
			lookup[key] = value
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return lookup
}
