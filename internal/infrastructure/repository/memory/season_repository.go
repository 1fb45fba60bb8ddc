package memory

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func (r *SeasonRepository) ListByLeague(_ context.Context, leagueID int64) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]season.Season, 0)
	for _, item := range sortedByID(r.store.seasons) {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	season.SortLatestFirst(out)
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID int64) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.seasons[seasonID]
	return item, ok, nil
}

func (r *SeasonRepository) GetLatestByLeague(ctx context.Context, leagueID int64) (season.Season, bool, error) {
	items, err := r.ListByLeague(ctx, leagueID)
	if err != nil || len(items) == 0 {
		return season.Season{}, false, err
	}
	return items[0], true, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextSeasonID++
	item.ID = r.store.nextSeasonID
	r.store.seasons[item.ID] = item
	return item, nil
}
