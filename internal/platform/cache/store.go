// Package cache is the in-process read-through cache placed in front of the
// league, season and team repositories.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

type item struct {
	value   any
	expires time.Time
}

func (i item) live(now time.Time) bool {
	return i.expires.IsZero() || now.Before(i.expires)
}

// Store maps keys to values for ttl. Concurrent misses on one key share a
// single loader call. A ttl of zero keeps entries until invalidated.
type Store struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]item

	hits, misses atomic.Uint64
}

type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now, items: make(map[string]item)}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || !it.live(s.now()) {
		return nil, false
	}
	return it.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	it := item{value: value}
	if s.ttl > 0 {
		it.expires = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

// Invalidate drops keys and any load of them still in flight.
func (s *Store) Invalidate(_ context.Context, keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.items, key)
		s.group.Forget(key)
	}
	s.mu.Unlock()
}

func (s *Store) InvalidatePrefix(_ context.Context, prefix string) {
	s.mu.Lock()
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
			s.group.Forget(key)
		}
	}
	s.mu.Unlock()
}

// Stats counts hits and misses of Load calls. Entries includes expired items
// that have not been overwritten yet.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := len(s.items)
	s.mu.RUnlock()
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: n}
}

func (s *Store) load(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if v, ok := s.Get(ctx, key); ok {
		s.hits.Add(1)
		return v, nil
	}
	s.misses.Add(1)

	v, err, _ := s.group.Do(key, func() (any, error) {
		if v, ok := s.Get(ctx, key); ok {
			return v, nil
		}
		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, v)
		return v, nil
	})
	return v, err
}

// Load returns the cached value for key or stores what loader returns.
// Loader errors are not cached.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if s == nil {
		return loader(ctx)
	}
	if key == "" {
		return zero, errors.New("cache: empty key")
	}

	v, err := s.load(ctx, key, func(ctx context.Context) (any, error) { return loader(ctx) })
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %s holds %T", key, v)
	}
	return out, nil
}

type found[T any] struct {
	value T
	ok    bool
}

// LoadFound caches repository lookups of the (value, exists, error) shape,
// remembering misses as well as hits.
func LoadFound[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, bool, error)) (T, bool, error) {
	f, err := Load(ctx, s, key, func(ctx context.Context) (found[T], error) {
		v, ok, err := loader(ctx)
		return found[T]{value: v, ok: ok}, err
	})
	return f.value, f.ok, err
}

// LoadSlice caches a list and hands every caller its own copy.
func LoadSlice[T any](ctx context.Context, s *Store, key string, loader func(context.Context) ([]T, error)) ([]T, error) {
	items, err := Load(ctx, s, key, loader)
	if err != nil {
		return nil, err
	}
	return append([]T(nil), items...), nil
}
