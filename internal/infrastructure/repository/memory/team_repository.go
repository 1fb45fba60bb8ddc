package memory

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID int64) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range sortedByID(r.store.teams) {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.insertLocked(item), nil
}

func (r *TeamRepository) CreateWithRoster(_ context.Context, item team.Team, roster []player.Player) (team.Team, []player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := r.insertLocked(item)
	players := make([]player.Player, 0, len(roster))
	for _, p := range roster {
		p.TeamID = created.ID
		players = append(players, insertPlayerLocked(r.store, p))
	}
	return created, players, nil
}

func (r *TeamRepository) insertLocked(item team.Team) team.Team {
	r.store.nextTeamID++
	item.ID = r.store.nextTeamID
	r.store.teams[item.ID] = item
	return item
}
