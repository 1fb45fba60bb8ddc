package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
)

type GameLogRepository struct {
	store *Store
}

func (r *GameLogRepository) Append(_ context.Context, entry gamelog.Entry) (gamelog.Entry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextLogID++
	entry.ID = r.store.nextLogID
	r.store.logs = append(r.store.logs, entry)
	return entry, nil
}

func (r *GameLogRepository) ListRecentByGame(_ context.Context, gameID int64, limit int) ([]gamelog.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]gamelog.Entry, 0)
	for _, entry := range r.store.logs {
		if entry.GameID == gameID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].LoggedAt.Equal(out[j].LoggedAt) {
			return out[i].LoggedAt.After(out[j].LoggedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
