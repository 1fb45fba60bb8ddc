package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/hoops-league/internal/domain/game"
)

type GameRepository struct {
	store *Store
}

func (r *GameRepository) Create(_ context.Context, item game.Game) (game.Game, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextGameID++
	item.ID = r.store.nextGameID
	r.store.games[item.ID] = item
	return item, nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.games[gameID]
	return item, ok, nil
}

func (r *GameRepository) Start(_ context.Context, item game.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.games[item.ID]
	if !ok {
		return fmt.Errorf("game %d not found", item.ID)
	}
	current.Status = game.StatusOngoing
	current.Date = item.Date
	r.store.games[item.ID] = current
	return nil
}

func (r *GameRepository) ListBySeason(_ context.Context, leagueID, seasonID int64) ([]game.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.filterLocked(func(g game.Game) bool {
		return g.LeagueID == leagueID && g.SeasonID == seasonID
	}), nil
}

func (r *GameRepository) ListByLeague(_ context.Context, leagueID int64) ([]game.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.filterLocked(func(g game.Game) bool {
		return g.LeagueID == leagueID
	}), nil
}

func (r *GameRepository) Settle(_ context.Context, gameID int64) (game.Game, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.games[gameID]
	if !ok {
		return game.Game{}, false, nil
	}

	var team1Points, team2Points int
	for key, row := range r.store.boxScores {
		if key.GameID != gameID {
			continue
		}
		switch key.TeamID {
		case item.Team1ID:
			team1Points += row.Points
		case item.Team2ID:
			team2Points += row.Points
		}
	}

	item = item.Settle(team1Points, team2Points)
	r.store.games[gameID] = item
	return item, true, nil
}

// filterLocked returns matching games ordered by date descending, newest id first on equal dates.
func (r *GameRepository) filterLocked(match func(game.Game) bool) []game.Game {
	out := make([]game.Game, 0)
	for _, item := range r.store.games {
		if match(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
