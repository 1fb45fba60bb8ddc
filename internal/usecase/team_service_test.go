package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	boxscoremock "github.com/riskibarqy/hoops-league/internal/mocks/domain/boxscore"
)

func newDemoTeamService(store *memory.Store) *TeamService {
	return NewTeamService(store.Leagues(), store.Seasons(), store.Teams(), store.Games(), store.BoxScores())
}

func jersey(n int) *int { return &n }

func TestTeamService_QuickUpload(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	service := newDemoTeamService(store)
	ctx := context.Background()

	created, players, err := service.QuickUpload(ctx, QuickUploadInput{
		LeagueID: memory.LeagueIDDowntown,
		TeamName: "  Falcons ",
		Players: []QuickUploadPlayer{
			{FirstName: "Ana", LastName: "Silva", JerseyNumber: jersey(7)},
			{FirstName: "Ben", LastName: "", JerseyNumber: jersey(9)},
			{FirstName: "Cy", LastName: "Dunn"},
			{FirstName: "Dee", LastName: "Ito", JerseyNumber: jersey(0)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Falcons", created.Name)
	require.Len(t, players, 2)
	for _, p := range players {
		require.Equal(t, created.ID, p.TeamID)
		require.NotZero(t, p.ID)
	}

	roster, err := store.Players().ListByTeam(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
}

func TestTeamService_QuickUpload_Rejections(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	service := newDemoTeamService(store)
	ctx := context.Background()

	tooMany := make([]QuickUploadPlayer, quickUploadMaxPlayers+1)
	for i := range tooMany {
		tooMany[i] = QuickUploadPlayer{FirstName: "P", LastName: "Q", JerseyNumber: jersey(i)}
	}
	_, _, err := service.QuickUpload(ctx, QuickUploadInput{LeagueID: memory.LeagueIDDowntown, TeamName: "Big", Players: tooMany})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = service.QuickUpload(ctx, QuickUploadInput{LeagueID: memory.LeagueIDDowntown, TeamName: "   "})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = service.QuickUpload(ctx, QuickUploadInput{LeagueID: 404, TeamName: "Ghosts"})
	require.ErrorIs(t, err, ErrNotFound)

	teams, err := store.Teams().ListByLeague(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)
	require.Len(t, teams, 3, "rejected uploads must not create teams")
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	service := newDemoTeamService(store)

	created, err := service.CreateTeam(context.Background(), CreateTeamInput{
		LeagueID: memory.LeagueIDDowntown,
		Name:     "Owls",
		Division: "B",
		Captain:  "Mo Reed",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = service.CreateTeam(context.Background(), CreateTeamInput{LeagueID: 999, Name: "Nowhere"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_ListTeamsWithRecords(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	teams := newDemoTeamService(store)
	games := newDemoGameService(store, nil)
	scoring := newDemoScoringService(store, nil)
	ctx := context.Background()

	score(t, scoring, 1, memory.TeamIDRockets, 1, "3-Point Made", 1)
	_, err := games.EndGame(ctx, 1)
	require.NoError(t, err)

	standings, err := teams.ListTeamsWithRecords(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)
	require.NotNil(t, standings.Season)
	require.Equal(t, memory.SeasonIDSpring, standings.Season.ID)
	require.Len(t, standings.Records, 3)

	top := standings.Records[0]
	require.Equal(t, "Rockets", top.Team.Name)
	require.Equal(t, 1, top.Record.Wins)
	require.Equal(t, 0, top.Record.Losses)
	require.Equal(t, 1, top.Record.Rank)

	last := standings.Records[2]
	require.Equal(t, "Hawks", last.Team.Name)
	require.Equal(t, 1, last.Record.Losses)
}

func TestTeamService_GetTeamDetails(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	teams := newDemoTeamService(store)
	games := newDemoGameService(store, nil)
	scoring := newDemoScoringService(store, nil)
	ctx := context.Background()

	score(t, scoring, 1, memory.TeamIDRockets, 1, "2-Point Made", 1)
	score(t, scoring, 1, memory.TeamIDRockets, 1, "2-Point Miss", 1)
	score(t, scoring, 1, memory.TeamIDHawks, 4, "2-Point Made", 2)
	_, err := games.EndGame(ctx, 1)
	require.NoError(t, err)

	details, err := teams.GetTeamDetails(ctx, memory.LeagueIDDowntown, memory.TeamIDRockets)
	require.NoError(t, err)
	require.Equal(t, "Rockets", details.Team.Name)
	require.Equal(t, 0, details.Record.Wins)
	require.Equal(t, 1, details.Record.Losses)

	require.Len(t, details.History, 1)
	require.Equal(t, "Hawks", details.History[0].OpponentName)
	require.Equal(t, 2, details.History[0].TeamScore)
	require.Equal(t, 4, details.History[0].OpponentScore)
	require.Equal(t, game.ResultLoss, details.History[0].Result)

	require.Len(t, details.RecentGames, 1)
	require.Equal(t, 2, details.RecentGames[0].Points)
	require.InDelta(t, 50.0, details.RecentGames[0].FGPercent, 0.001)

	require.Len(t, details.PlayerAverages, 1)
	require.Equal(t, int64(1), details.PlayerAverages[0].PlayerID)
	require.Equal(t, 1, details.PlayerAverages[0].GamesPlayed)
	require.InDelta(t, 2.0, details.PlayerAverages[0].AvgPoints, 0.001)

	_, err = teams.GetTeamDetails(ctx, memory.LeagueIDDowntown, 99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamService_RecentPerformance_SubmitFailureWaitsForRunningTasks(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	boxScoreRepo := boxscoremock.NewRepository(t)
	service := NewTeamService(store.Leagues(), store.Seasons(), store.Teams(), store.Games(), boxScoreRepo)
	service.newPool = func() (*ants.Pool, error) { return ants.NewPool(1, ants.WithNonblocking(true)) }

	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	boxScoreRepo.
		On("TeamTotals", mock.Anything, int64(1), memory.TeamIDRockets).
		Run(func(mock.Arguments) {
			close(started)
			<-release
			finished.Store(true)
		}).
		Return(boxscore.Counters{Points: 10}, nil).
		Once()

	go func() {
		<-started
		time.Sleep(50 * time.Millisecond)
		close(release)
	}()

	games := []game.Game{{ID: 1}, {ID: 2}}
	_, err := service.recentPerformance(context.Background(), memory.TeamIDRockets, games)
	require.ErrorIs(t, err, ants.ErrPoolOverload)
	require.True(t, finished.Load(), "running task must finish before recentPerformance returns")
}
