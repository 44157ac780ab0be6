package cli

import (
	"context"
	"sync"

	"github.com/mccutchen/styledterm/internal/slogctx"
)

type memoEntry[V any] struct {
	val V
	err error
}

// Memo is a map-based concurrency-safe memoizer, useful for sharing results
// between the workers of a single command.
type Memo[K comparable, V any] struct {
	mu    sync.Mutex
	cache map[K]memoEntry[V]
}

// Do returns the memoized result for key, calling thunk to compute it on
// first use. Errors are memoized too.
func (m *Memo[K, V]) Do(ctx context.Context, key K, thunk func() (V, error)) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cache == nil {
		m.cache = make(map[K]memoEntry[V])
	}
	if entry, found := m.cache[key]; found {
		slogctx.Debug(ctx, "memo: hit", "key", key)
		return entry.val, entry.err
	}
	slogctx.Debug(ctx, "memo: miss", "key", key)
	val, err := thunk()
	m.cache[key] = memoEntry[V]{val, err}
	return val, err
}

// Len returns the number of memoized results.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}
