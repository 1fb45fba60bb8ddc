package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/platform/metrics"
)

type LogActionInput struct {
	GameID      int64
	TeamID      int64
	PlayerID    int64
	ActionType  string
	Action      string
	Description string
	GameClock   string
}

type UpdateBoxScoreInput struct {
	// LeagueID is the session's selected league, used when the game has no season.
	LeagueID int64
	GameID   int64
	TeamID   int64
	PlayerID int64
	Action   string
}

type BoxScoreRefresh struct {
	Game  game.Game
	Team1 TeamBoxScore
	Team2 TeamBoxScore
}

// ScoringService records live game events: the append-only ledger and the
// per-player box score counters derived from the same action labels.
type ScoringService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
	gameRepo     game.Repository
	gameLogRepo  gamelog.Repository
	boxScoreRepo boxscore.Repository
	metrics      metrics.Metrics
	now          func() time.Time
}

func NewScoringService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	gameLogRepo gamelog.Repository,
	boxScoreRepo boxscore.Repository,
	m metrics.Metrics,
) *ScoringService {
	if m == nil {
		m = metrics.Nop{}
	}
	return &ScoringService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		gameRepo:     gameRepo,
		gameLogRepo:  gameLogRepo,
		boxScoreRepo: boxScoreRepo,
		metrics:      m,
		now:          time.Now,
	}
}

// LogAction appends one ledger entry stamped with the current time.
func (s *ScoringService) LogAction(ctx context.Context, input LogActionInput) (gamelog.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.LogAction")
	defer span.End()

	clock, err := gamelog.NormalizeClock(input.GameClock)
	if err != nil {
		return gamelog.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entry := gamelog.Entry{
		GameID:      input.GameID,
		TeamID:      input.TeamID,
		PlayerID:    input.PlayerID,
		ActionType:  strings.TrimSpace(input.ActionType),
		Action:      strings.TrimSpace(input.Action),
		Description: strings.TrimSpace(input.Description),
		GameClock:   clock,
		LoggedAt:    s.now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return gamelog.Entry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.gameLogRepo.Append(ctx, entry)
	if err != nil {
		return gamelog.Entry{}, fmt.Errorf("append game log: %w", err)
	}
	s.metrics.IncActionLogged(entry.Action)

	return created, nil
}

// UpdateBoxScore adds the action's delta to the player's row, creating the
// row with zero counters first when needed. Unknown labels still create
// the row and report success.
func (s *ScoringService) UpdateBoxScore(ctx context.Context, input UpdateBoxScoreInput) (boxscore.BoxScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.UpdateBoxScore")
	defer span.End()

	action := strings.TrimSpace(input.Action)
	if input.GameID <= 0 || input.TeamID <= 0 || input.PlayerID <= 0 || action == "" {
		return boxscore.BoxScore{}, ErrMissingScoringFields
	}

	g, err := getGame(ctx, s.gameRepo, input.GameID)
	if err != nil {
		return boxscore.BoxScore{}, err
	}
	if err := s.checkParticipant(ctx, g, input.TeamID, input.PlayerID); err != nil {
		return boxscore.BoxScore{}, err
	}

	leagueID, seasonID := g.LeagueID, g.SeasonID
	if leagueID <= 0 {
		leagueID = input.LeagueID
	}
	if seasonID <= 0 {
		if leagueID <= 0 {
			return boxscore.BoxScore{}, ErrNoSeasonForLeague
		}
		latest, exists, err := s.seasonRepo.GetLatestByLeague(ctx, leagueID)
		if err != nil {
			return boxscore.BoxScore{}, fmt.Errorf("get latest season: %w", err)
		}
		if !exists {
			return boxscore.BoxScore{}, ErrNoSeasonForLeague
		}
		seasonID = latest.ID
	}

	delta, known := boxscore.DeltaFor(action)
	seed := boxscore.BoxScore{
		Key: boxscore.Key{
			GameID:   g.ID,
			TeamID:   input.TeamID,
			PlayerID: input.PlayerID,
		},
		LeagueID:   leagueID,
		SeasonID:   seasonID,
		DatePlayed: g.Date,
	}

	updated, err := s.boxScoreRepo.Increment(ctx, seed, delta)
	if err != nil {
		return boxscore.BoxScore{}, fmt.Errorf("increment box score: %w", err)
	}
	s.metrics.IncBoxScoreUpdate(action, known)

	return updated, nil
}

// checkParticipant rejects rows that settlement would count but the box
// score tables could not show.
func (s *ScoringService) checkParticipant(ctx context.Context, g game.Game, teamID, playerID int64) error {
	if _, err := getTeam(ctx, s.teamRepo, teamID); err != nil {
		return err
	}
	if !g.Involves(teamID) {
		return fmt.Errorf("%w: team %d does not play game %d", ErrInvalidInput, teamID, g.ID)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return nil
}

// RefreshBoxScores returns both sides of the game's current box score.
func (s *ScoringService) RefreshBoxScores(ctx context.Context, gameID int64) (BoxScoreRefresh, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RefreshBoxScores")
	defer span.End()

	g, err := getGame(ctx, s.gameRepo, gameID)
	if err != nil {
		return BoxScoreRefresh{}, err
	}

	team1, err := loadTeamBoxScore(ctx, s.teamRepo, s.boxScoreRepo, g.ID, g.Team1ID)
	if err != nil {
		return BoxScoreRefresh{}, err
	}
	team2, err := loadTeamBoxScore(ctx, s.teamRepo, s.boxScoreRepo, g.ID, g.Team2ID)
	if err != nil {
		return BoxScoreRefresh{}, err
	}

	return BoxScoreRefresh{Game: g, Team1: team1, Team2: team2}, nil
}
