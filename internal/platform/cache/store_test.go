package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_SharesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "standings", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			v, err := Load(context.Background(), store, "team:league:1", loader)
			if err == nil {
				results[i] = v
			}
		}(i)
	}
	close(start)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, got := range results {
		require.Equal(t, "standings", got)
	}
}

func TestLoad_HitsAndStats(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls int
	loader := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 2; i++ {
		got, err := Load(context.Background(), store, "n", loader)
		require.NoError(t, err)
		require.Equal(t, 42, got)
	}
	require.Equal(t, 1, calls)
	require.Equal(t, Stats{Hits: 1, Misses: 1, Entries: 1}, store.Stats())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "s", "text")
	_, err := Load(ctx, store, "s", func(context.Context) (int, error) { return 0, nil })
	require.ErrorContains(t, err, "holds string")

	wantErr := errors.New("boom")
	_, err = Load(ctx, store, "e", func(context.Context) (int, error) { return 0, wantErr })
	require.ErrorIs(t, err, wantErr)
	_, ok := store.Get(ctx, "e")
	require.False(t, ok, "loader errors must not be cached")

	_, err = Load(ctx, store, "", func(context.Context) (int, error) { return 1, nil })
	require.Error(t, err)

	got, err := Load(ctx, (*Store)(nil), "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	require.Equal(t, 7, got)
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	now := time.Date(2026, time.March, 10, 19, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(ctx, "league:list", []string{"Downtown"})
	_, ok := store.Get(ctx, "league:list")
	require.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = store.Get(ctx, "league:list")
	require.False(t, ok)
}

func TestStore_Invalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "team:league:1", 1)
	store.Set(ctx, "team:league:2", 2)
	store.Set(ctx, "season:league:1", 3)
	store.Set(ctx, "league:list", 4)

	store.InvalidatePrefix(ctx, "team:")
	store.Invalidate(ctx, "league:list", "missing")

	for _, key := range []string{"team:league:1", "team:league:2", "league:list"} {
		_, ok := store.Get(ctx, key)
		require.False(t, ok, key)
	}
	_, ok := store.Get(ctx, "season:league:1")
	require.True(t, ok)
}

func TestLoadFoundAndSlice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	var lookups int
	lookup := func(context.Context) (string, bool, error) {
		lookups++
		return "", false, nil
	}

	for i := 0; i < 2; i++ {
		_, ok, err := LoadFound(ctx, store, "team:id:99", lookup)
		require.NoError(t, err)
		require.False(t, ok)
	}
	require.Equal(t, 1, lookups, "misses are cached too")

	first, err := LoadSlice(ctx, store, "league:list", func(context.Context) ([]string, error) {
		return []string{"Downtown"}, nil
	})
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := LoadSlice(ctx, store, "league:list", func(context.Context) ([]string, error) {
		return nil, errors.New("not called")
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Downtown"}, second)
}
