package cache

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/domain/season"
	basecache "github.com/riskibarqy/hoops-league/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	store *basecache.Store
}

func NewSeasonRepository(next season.Repository, store *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, store: store}
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueID int64) ([]season.Season, error) {
	return basecache.LoadSlice(ctx, r.store, key(keySeasonLeague, leagueID), func(ctx context.Context) ([]season.Season, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	return basecache.LoadFound(ctx, r.store, key(keySeasonID, seasonID), func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetByID(ctx, seasonID)
	})
}

// GetLatestByLeague is hit on every box score update through the season
// fallback, so it is the hottest key in the cache.
func (r *SeasonRepository) GetLatestByLeague(ctx context.Context, leagueID int64) (season.Season, bool, error) {
	return basecache.LoadFound(ctx, r.store, key(keySeasonLatest, leagueID), func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetLatestByLeague(ctx, leagueID)
	})
}

// Create drops every season key: a new season can change the latest season
// of its league.
func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return season.Season{}, err
	}
	r.store.InvalidatePrefix(ctx, keySeasonPrefix)
	return created, nil
}
