package cache

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	basecache "github.com/riskibarqy/hoops-league/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	store *basecache.Store
}

func NewTeamRepository(next team.Repository, store *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, store: store}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	return basecache.LoadSlice(ctx, r.store, key(keyTeamLeague, leagueID), func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return basecache.LoadFound(ctx, r.store, key(keyTeamID, teamID), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, teamID)
	})
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}
	r.invalidate(ctx, created)
	return created, nil
}

func (r *TeamRepository) CreateWithRoster(ctx context.Context, item team.Team, roster []player.Player) (team.Team, []player.Player, error) {
	created, players, err := r.next.CreateWithRoster(ctx, item, roster)
	if err != nil {
		return team.Team{}, nil, err
	}
	r.invalidate(ctx, created)
	return created, players, nil
}

func (r *TeamRepository) invalidate(ctx context.Context, created team.Team) {
	r.store.Invalidate(ctx, key(keyTeamLeague, created.LeagueID), key(keyTeamID, created.ID))
}
