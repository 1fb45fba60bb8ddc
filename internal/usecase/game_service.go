package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/platform/metrics"
)

type ScheduleGameInput struct {
	LeagueID int64
	SeasonID int64
	Team1ID  int64
	Team2ID  int64
	Date     time.Time
}

// StartGameInput either promotes ScheduledGameID or describes a new game.
type StartGameInput struct {
	LeagueID        int64
	ScheduledGameID int64
	SeasonID        int64
	Team1ID         int64
	Team2ID         int64
	Date            time.Time
}

type GamesByStatus struct {
	Scheduled []game.Game
	Ongoing   []game.Game
	Played    []game.Game
}

type GameDetails struct {
	Game         game.Game
	Team1        TeamBoxScore
	Team2        TeamBoxScore
	Team1Players []player.Player
	Team2Players []player.Player
	Logs         []gamelog.Entry
}

type GameSummary struct {
	Game  game.Game
	Team1 TeamBoxScore
	Team2 TeamBoxScore
	Logs  []gamelog.Entry
}

type GameService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
	gameRepo     game.Repository
	gameLogRepo  gamelog.Repository
	boxScoreRepo boxscore.Repository
	recentLimit  int
	metrics      metrics.Metrics
}

func NewGameService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	gameLogRepo gamelog.Repository,
	boxScoreRepo boxscore.Repository,
	recentLimit int,
	m metrics.Metrics,
) *GameService {
	if recentLimit <= 0 {
		recentLimit = 100
	}
	if m == nil {
		m = metrics.Nop{}
	}
	return &GameService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
		gameLogRepo:  gameLogRepo,
		boxScoreRepo: boxScoreRepo,
		recentLimit:  recentLimit,
		metrics:      m,
	}
}

func (s *GameService) ScheduleGame(ctx context.Context, input ScheduleGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ScheduleGame")
	defer span.End()

	return s.createGame(ctx, game.Game{
		Date:     input.Date,
		Team1ID:  input.Team1ID,
		Team2ID:  input.Team2ID,
		Status:   game.StatusScheduled,
		LeagueID: input.LeagueID,
		SeasonID: input.SeasonID,
	})
}

func (s *GameService) StartGame(ctx context.Context, input StartGameInput) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.StartGame")
	defer span.End()

	if input.ScheduledGameID <= 0 {
		return s.createGame(ctx, game.Game{
			Date:     input.Date,
			Team1ID:  input.Team1ID,
			Team2ID:  input.Team2ID,
			Status:   game.StatusOngoing,
			LeagueID: input.LeagueID,
			SeasonID: input.SeasonID,
		})
	}

	g, err := getGame(ctx, s.gameRepo, input.ScheduledGameID)
	if err != nil {
		return game.Game{}, err
	}
	if input.LeagueID > 0 && g.LeagueID != input.LeagueID {
		return game.Game{}, fmt.Errorf("%w: game=%d league=%d", ErrNotFound, g.ID, input.LeagueID)
	}
	if g.Status != game.StatusScheduled {
		return game.Game{}, fmt.Errorf("%w: game %d is %s, only scheduled games can be started", ErrInvalidInput, g.ID, g.Status)
	}

	g.Status = game.StatusOngoing
	if !input.Date.IsZero() {
		g.Date = input.Date
	}
	if err := s.gameRepo.Start(ctx, g); err != nil {
		return game.Game{}, fmt.Errorf("start game: %w", err)
	}

	return g, nil
}

func (s *GameService) ListGames(ctx context.Context, leagueID int64) (GamesByStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	if leagueID <= 0 {
		return GamesByStatus{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	games, err := s.gameRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return GamesByStatus{}, fmt.Errorf("list games by league: %w", err)
	}

	out := GamesByStatus{}
	for _, g := range games {
		switch g.Status {
		case game.StatusScheduled:
			out.Scheduled = append(out.Scheduled, g)
		case game.StatusOngoing:
			out.Ongoing = append(out.Ongoing, g)
		case game.StatusPlayed:
			out.Played = append(out.Played, g)
		}
	}

	return out, nil
}

func (s *GameService) GetGameDetails(ctx context.Context, gameID int64) (GameDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGameDetails")
	defer span.End()

	summary, err := s.summary(ctx, gameID)
	if err != nil {
		return GameDetails{}, err
	}

	team1Players, err := s.playerRepo.ListByTeam(ctx, summary.Game.Team1ID)
	if err != nil {
		return GameDetails{}, fmt.Errorf("list team one players: %w", err)
	}
	team2Players, err := s.playerRepo.ListByTeam(ctx, summary.Game.Team2ID)
	if err != nil {
		return GameDetails{}, fmt.Errorf("list team two players: %w", err)
	}

	return GameDetails{
		Game:         summary.Game,
		Team1:        summary.Team1,
		Team2:        summary.Team2,
		Team1Players: team1Players,
		Team2Players: team2Players,
		Logs:         summary.Logs,
	}, nil
}

func (s *GameService) GetGameSummary(ctx context.Context, gameID int64) (GameSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGameSummary")
	defer span.End()

	return s.summary(ctx, gameID)
}

// EndGame settles the game from the box score point sums. Repeating it
// rewrites the same result.
func (s *GameService) EndGame(ctx context.Context, gameID int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.EndGame")
	defer span.End()

	if gameID <= 0 {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	settled, exists, err := s.gameRepo.Settle(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("settle game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}
	s.metrics.IncGameSettled(settled.WinnerTeamID == nil)

	return settled, nil
}

func (s *GameService) summary(ctx context.Context, gameID int64) (GameSummary, error) {
	g, err := getGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return GameSummary{}, err
	}

	team1, err := loadTeamBoxScore(ctx, s.teamRepo, s.boxScoreRepo, g.ID, g.Team1ID)
	if err != nil {
		return GameSummary{}, err
	}
	team2, err := loadTeamBoxScore(ctx, s.teamRepo, s.boxScoreRepo, g.ID, g.Team2ID)
	if err != nil {
		return GameSummary{}, err
	}

	logs, err := s.gameLogRepo.ListRecentByGame(ctx, g.ID, s.recentLimit)
	if err != nil {
		return GameSummary{}, fmt.Errorf("list recent game logs: %w", err)
	}

	return GameSummary{Game: g, Team1: team1, Team2: team2, Logs: logs}, nil
}

func (s *GameService) createGame(ctx context.Context, item game.Game) (game.Game, error) {
	if item.LeagueID <= 0 {
		return game.Game{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if err := item.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seasonItem, exists, err := s.seasonRepo.GetByID(ctx, item.SeasonID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get season: %w", err)
	}
	if !exists || seasonItem.LeagueID != item.LeagueID {
		return game.Game{}, fmt.Errorf("%w: season=%d league=%d", ErrNotFound, item.SeasonID, item.LeagueID)
	}
	if _, err := getTeam(ctx, s.teamRepo, item.Team1ID); err != nil {
		return game.Game{}, err
	}
	if _, err := getTeam(ctx, s.teamRepo, item.Team2ID); err != nil {
		return game.Game{}, err
	}

	created, err := s.gameRepo.Create(ctx, item)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	return created, nil
}
