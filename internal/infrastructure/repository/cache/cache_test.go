package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/hoops-league/internal/mocks/domain/league"
	basecache "github.com/riskibarqy/hoops-league/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeagueRepository_ListIsCachedUntilCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]league.League{{ID: 1, Name: "Downtown"}}, nil).Once()
	for i := 0; i < 3; i++ {
		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	}

	next.On("Create", mock.Anything, league.League{Name: "Uptown"}).Return(league.League{ID: 2, Name: "Uptown"}, nil).Once()
	_, err := repo.Create(ctx, league.League{Name: "Uptown"})
	require.NoError(t, err)

	next.On("List", mock.Anything).Return([]league.League{{ID: 1, Name: "Downtown"}, {ID: 2, Name: "Uptown"}}, nil).Once()
	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestLeagueRepository_GetByNameBypassesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByName", mock.Anything, "Downtown").Return(league.League{}, false, nil).Twice()
	for i := 0; i < 2; i++ {
		_, ok, err := repo.GetByName(ctx, "Downtown")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestSeasonRepository_CreateInvalidatesLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore(memory.DemoSeed())
	repo := NewSeasonRepository(store.Seasons(), basecache.NewStore(time.Minute))

	latest, ok, err := repo.GetLatestByLeague(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, memory.SeasonIDSpring, latest.ID)

	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	fall, err := repo.Create(ctx, season.Season{LeagueID: memory.LeagueIDDowntown, Name: "Fall 2026", StartDate: &start})
	require.NoError(t, err)

	latest, ok, err = repo.GetLatestByLeague(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fall.ID, latest.ID)
}

func TestTeamRepository_CreateInvalidatesLeagueList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore(memory.DemoSeed())
	repo := NewTeamRepository(store.Teams(), basecache.NewStore(time.Minute))

	before, err := repo.ListByLeague(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)

	_, err = repo.Create(ctx, team.Team{LeagueID: memory.LeagueIDDowntown, Name: "Owls"})
	require.NoError(t, err)

	after, err := repo.ListByLeague(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}
