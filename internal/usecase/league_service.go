package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
)

type CreateLeagueInput struct {
	Name        string
	Description string
}

type CreateSeasonInput struct {
	LeagueID  int64
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}

type LeagueService struct {
	leagueRepo league.Repository
	seasonRepo season.Repository
}

func NewLeagueService(leagueRepo league.Repository, seasonRepo season.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		seasonRepo: seasonRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID int64) (league.League, error) {
	return getLeague(ctx, s.leagueRepo, leagueID)
}

func (s *LeagueService) CreateLeague(ctx context.Context, input CreateLeagueInput) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	item := league.League{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if err := item.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.leagueRepo.GetByName(ctx, item.Name)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by name: %w", err)
	}
	if exists {
		return league.League{}, fmt.Errorf("%w: league name %q already exists", ErrConflict, item.Name)
	}

	created, err := s.leagueRepo.Create(ctx, item)
	if errors.Is(err, league.ErrDuplicateName) {
		return league.League{}, fmt.Errorf("%w: league name %q already exists", ErrConflict, item.Name)
	}
	if err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return created, nil
}

// SelectLeague confirms the league exists before it is stored in the session.
func (s *LeagueService) SelectLeague(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SelectLeague")
	defer span.End()

	return getLeague(ctx, s.leagueRepo, leagueID)
}

func (s *LeagueService) ListSeasons(ctx context.Context, leagueID int64) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListSeasons")
	defer span.End()

	if _, err := getLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return nil, err
	}

	seasons, err := s.seasonRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list seasons by league: %w", err)
	}

	return seasons, nil
}

func (s *LeagueService) CreateSeason(ctx context.Context, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateSeason")
	defer span.End()

	item := season.Season{
		LeagueID:  input.LeagueID,
		Name:      strings.TrimSpace(input.Name),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := getLeague(ctx, s.leagueRepo, input.LeagueID); err != nil {
		return season.Season{}, err
	}

	created, err := s.seasonRepo.Create(ctx, item)
	if err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	return created, nil
}

func getLeague(ctx context.Context, repo league.Repository, leagueID int64) (league.League, error) {
	if leagueID <= 0 {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	return item, nil
}

// resolveSeason returns the requested season of the league, or the latest
// one when seasonID is zero. ok is false when the league has no season.
func resolveSeason(ctx context.Context, repo season.Repository, leagueID, seasonID int64) (season.Season, bool, error) {
	if seasonID <= 0 {
		item, exists, err := repo.GetLatestByLeague(ctx, leagueID)
		if err != nil {
			return season.Season{}, false, fmt.Errorf("get latest season: %w", err)
		}
		return item, exists, nil
	}

	item, exists, err := repo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("get season: %w", err)
	}
	if !exists || item.LeagueID != leagueID {
		return season.Season{}, false, fmt.Errorf("%w: season=%d league=%d", ErrNotFound, seasonID, leagueID)
	}
	return item, true, nil
}
