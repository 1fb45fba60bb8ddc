package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/hoops-league/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sortedByID(r.store.leagues), nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.leagues[leagueID]
	return item, ok, nil
}

func (r *LeagueRepository) GetByName(_ context.Context, name string) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.leagues {
		if strings.EqualFold(item.Name, strings.TrimSpace(name)) {
			return item, true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) (league.League, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.leagues {
		if strings.EqualFold(existing.Name, strings.TrimSpace(item.Name)) {
			return league.League{}, league.ErrDuplicateName
		}
	}

	r.store.nextLeagueID++
	item.ID = r.store.nextLeagueID
	r.store.leagues[item.ID] = item
	return item, nil
}
