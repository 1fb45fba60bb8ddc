package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return sortedByID(r.store.players), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range sortedByID(r.store.players) {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return insertPlayerLocked(r.store, item), nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[item.ID]; !ok {
		return fmt.Errorf("player %d not found", item.ID)
	}
	r.store.players[item.ID] = item
	return nil
}

func insertPlayerLocked(s *Store, item player.Player) player.Player {
	s.nextPlayerID++
	item.ID = s.nextPlayerID
	s.players[item.ID] = item
	return item
}
