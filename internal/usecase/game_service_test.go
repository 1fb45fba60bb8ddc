package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/hoops-league/internal/mocks/domain/game"
)

func newDemoGameService(store *memory.Store, m *countingMetrics) *GameService {
	if m == nil {
		m = &countingMetrics{}
	}
	return NewGameService(store.Seasons(), store.Teams(), store.Players(), store.Games(), store.GameLogs(), store.BoxScores(), 10, m)
}

func score(t *testing.T, scoring *ScoringService, gameID, teamID, playerID int64, action string, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		_, err := scoring.UpdateBoxScore(context.Background(), UpdateBoxScoreInput{
			GameID:   gameID,
			TeamID:   teamID,
			PlayerID: playerID,
			Action:   action,
		})
		require.NoError(t, err)
	}
}

func TestGameService_EndGame_SettlesFromBoxScores(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	m := &countingMetrics{}
	games := newDemoGameService(store, m)
	scoring := newDemoScoringService(store, nil)
	ctx := context.Background()

	score(t, scoring, 1, memory.TeamIDRockets, 1, "2-Point Made", 1)
	score(t, scoring, 1, memory.TeamIDHawks, 4, "2-Point Made", 2)

	settled, err := games.EndGame(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, game.StatusPlayed, settled.Status)
	require.Equal(t, 2, settled.Team1Score)
	require.Equal(t, 4, settled.Team2Score)
	require.NotNil(t, settled.WinnerTeamID)
	require.Equal(t, memory.TeamIDHawks, *settled.WinnerTeamID)
	require.Equal(t, []bool{false}, m.settled)

	again, err := games.EndGame(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, settled.Team1Score, again.Team1Score)
	require.Equal(t, settled.Team2Score, again.Team2Score)
}

func TestGameService_EndGame_TieHasNoWinner(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	m := &countingMetrics{}
	games := newDemoGameService(store, m)
	scoring := newDemoScoringService(store, nil)

	score(t, scoring, 1, memory.TeamIDRockets, 2, "FT Made", 3)
	score(t, scoring, 1, memory.TeamIDHawks, 5, "3-Point Made", 1)

	settled, err := games.EndGame(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, settled.Team1Score)
	require.Equal(t, 3, settled.Team2Score)
	require.Nil(t, settled.WinnerTeamID)
	require.Equal(t, []bool{true}, m.settled)
}

func TestGameService_EndGame_Errors(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	games := newDemoGameService(store, nil)

	_, err := games.EndGame(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = games.EndGame(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_EndGame_RepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	gameRepo := gamemock.NewRepository(t)
	games := NewGameService(store.Seasons(), store.Teams(), store.Players(), gameRepo, store.GameLogs(), store.BoxScores(), 10, nil)

	gameRepo.
		On("Settle", mock.Anything, int64(3)).
		Return(game.Game{}, false, errors.New("connection reset")).
		Once()

	_, err := games.EndGame(context.Background(), 3)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
	require.ErrorContains(t, err, "connection reset")
}

func TestGameService_StartGame(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	games := newDemoGameService(store, nil)
	ctx := context.Background()

	t.Run("promotes scheduled game", func(t *testing.T) {
		started, err := games.StartGame(ctx, StartGameInput{LeagueID: memory.LeagueIDDowntown, ScheduledGameID: 1})
		require.NoError(t, err)
		require.Equal(t, game.StatusOngoing, started.Status)
		require.Equal(t, int64(1), started.ID)

		_, err = games.StartGame(ctx, StartGameInput{LeagueID: memory.LeagueIDDowntown, ScheduledGameID: 1})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("creates ongoing game", func(t *testing.T) {
		created, err := games.StartGame(ctx, StartGameInput{
			LeagueID: memory.LeagueIDDowntown,
			SeasonID: memory.SeasonIDSpring,
			Team1ID:  memory.TeamIDHawks,
			Team2ID:  memory.TeamIDComets,
			Date:     time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Equal(t, game.StatusOngoing, created.Status)
		require.NotZero(t, created.ID)
	})

	t.Run("rejects game of another league", func(t *testing.T) {
		_, err := games.StartGame(ctx, StartGameInput{LeagueID: 42, ScheduledGameID: 1})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGameService_ScheduleGame_Validation(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	games := newDemoGameService(store, nil)
	ctx := context.Background()
	date := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	_, err := games.ScheduleGame(ctx, ScheduleGameInput{
		LeagueID: memory.LeagueIDDowntown,
		SeasonID: memory.SeasonIDSpring,
		Team1ID:  memory.TeamIDRockets,
		Team2ID:  memory.TeamIDRockets,
		Date:     date,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = games.ScheduleGame(ctx, ScheduleGameInput{
		LeagueID: 2,
		SeasonID: memory.SeasonIDSpring,
		Team1ID:  memory.TeamIDRockets,
		Team2ID:  memory.TeamIDHawks,
		Date:     date,
	})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = games.ScheduleGame(ctx, ScheduleGameInput{
		LeagueID: memory.LeagueIDDowntown,
		SeasonID: memory.SeasonIDSpring,
		Team1ID:  memory.TeamIDRockets,
		Team2ID:  99,
		Date:     date,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_ListGamesGroupsByStatus(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	games := newDemoGameService(store, nil)
	ctx := context.Background()

	_, err := games.StartGame(ctx, StartGameInput{
		LeagueID: memory.LeagueIDDowntown,
		SeasonID: memory.SeasonIDSpring,
		Team1ID:  memory.TeamIDHawks,
		Team2ID:  memory.TeamIDComets,
		Date:     time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = games.ScheduleGame(ctx, ScheduleGameInput{
		LeagueID: memory.LeagueIDDowntown,
		SeasonID: memory.SeasonIDSpring,
		Team1ID:  memory.TeamIDComets,
		Team2ID:  memory.TeamIDRockets,
		Date:     time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = games.EndGame(ctx, 1)
	require.NoError(t, err)

	grouped, err := games.ListGames(ctx, memory.LeagueIDDowntown)
	require.NoError(t, err)
	require.Len(t, grouped.Scheduled, 1)
	require.Len(t, grouped.Ongoing, 1)
	require.Len(t, grouped.Played, 1)

	_, err = games.ListGames(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGameService_GetGameDetails(t *testing.T) {
	t.Parallel()

	store := memory.NewStore(memory.DemoSeed())
	games := newDemoGameService(store, nil)
	scoring := newDemoScoringService(store, nil)
	ctx := context.Background()

	score(t, scoring, 1, memory.TeamIDRockets, 1, "Assist", 1)
	_, err := scoring.LogAction(ctx, LogActionInput{GameID: 1, TeamID: memory.TeamIDRockets, PlayerID: 1, Action: "Assist", GameClock: "09:10"})
	require.NoError(t, err)

	details, err := games.GetGameDetails(ctx, 1)
	require.NoError(t, err)
	require.Len(t, details.Team1Players, 3)
	require.Len(t, details.Team2Players, 3)
	require.Equal(t, 1, details.Team1.Totals.Assists)
	require.Len(t, details.Logs, 1)
	require.Equal(t, "00:09:10", details.Logs[0].GameClock)

	_, err = games.GetGameSummary(ctx, 77)
	require.ErrorIs(t, err, ErrNotFound)
}
