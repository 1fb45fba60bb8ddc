package cache

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/domain/league"
	basecache "github.com/riskibarqy/hoops-league/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	store *basecache.Store
}

func NewLeagueRepository(next league.Repository, store *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, store: store}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	return basecache.LoadSlice(ctx, r.store, keyLeagueList, r.next.List)
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	return basecache.LoadFound(ctx, r.store, key(keyLeagueID, leagueID), func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetByID(ctx, leagueID)
	})
}

// GetByName backs the uniqueness check and is never cached.
func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	return r.next.GetByName(ctx, name)
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return league.League{}, err
	}
	r.store.Invalidate(ctx, keyLeagueList, key(keyLeagueID, created.ID))
	return created, nil
}
