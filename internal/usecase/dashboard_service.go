package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/standing"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
)

type LeagueDashboard struct {
	League        league.League
	Seasons       []season.Season
	Season        *season.Season
	LastGame      *game.Game
	LastGameMVP   *boxscore.Leader
	SeasonMVP     *boxscore.Leader
	Standings     []standing.Record
	TopScorers    []boxscore.Leader
	UpcomingGames []game.Game
}

type DashboardService struct {
	leagueRepo   league.Repository
	seasonRepo   season.Repository
	teamRepo     team.Repository
	gameRepo     game.Repository
	boxScoreRepo boxscore.Repository
	leadersLimit int
	now          func() time.Time
}

func NewDashboardService(
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	gameRepo game.Repository,
	boxScoreRepo boxscore.Repository,
	leadersLimit int,
) *DashboardService {
	if leadersLimit <= 0 {
		leadersLimit = 5
	}
	return &DashboardService{
		leagueRepo:   leagueRepo,
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		gameRepo:     gameRepo,
		boxScoreRepo: boxScoreRepo,
		leadersLimit: leadersLimit,
		now:          time.Now,
	}
}

// Get builds the league overview for seasonID, or the latest season when zero.
func (s *DashboardService) Get(ctx context.Context, leagueID, seasonID int64) (LeagueDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	leagueItem, err := getLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return LeagueDashboard{}, err
	}

	seasons, err := s.seasonRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return LeagueDashboard{}, fmt.Errorf("list seasons by league: %w", err)
	}

	out := LeagueDashboard{League: leagueItem, Seasons: seasons}
	current, hasSeason, err := resolveSeason(ctx, s.seasonRepo, leagueID, seasonID)
	if err != nil {
		return LeagueDashboard{}, err
	}
	if !hasSeason {
		return out, nil
	}
	out.Season = &current

	games, err := s.gameRepo.ListBySeason(ctx, leagueID, current.ID)
	if err != nil {
		return LeagueDashboard{}, fmt.Errorf("list games by season: %w", err)
	}

	now := s.now()
	out.LastGame = lastGame(games, now)
	out.UpcomingGames = upcomingGames(games, now)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list teams by league: %w", err)
		}
		out.Standings = standing.Compute(teams, games)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		leaders, err := s.boxScoreRepo.TopScorers(ctx, leagueID, current.ID, s.leadersLimit)
		if err != nil {
			return fmt.Errorf("list top scorers: %w", err)
		}
		out.TopScorers = leaders
		if len(leaders) > 0 {
			mvp := leaders[0]
			out.SeasonMVP = &mvp
		}
		return nil
	})
	if out.LastGame != nil {
		lastGameID := out.LastGame.ID
		p.Go(func(ctx context.Context) error {
			leader, exists, err := s.boxScoreRepo.GameLeader(ctx, lastGameID)
			if err != nil {
				return fmt.Errorf("get game leader: %w", err)
			}
			if exists {
				out.LastGameMVP = &leader
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return LeagueDashboard{}, err
	}

	return out, nil
}

// lastGame is the most recent game dated at or before now.
func lastGame(games []game.Game, now time.Time) *game.Game {
	var latest *game.Game
	for i := range games {
		g := games[i]
		if g.Date.After(now) {
			continue
		}
		if latest == nil || g.Date.After(latest.Date) {
			latest = &g
		}
	}
	return latest
}

func upcomingGames(games []game.Game, now time.Time) []game.Game {
	out := make([]game.Game, 0)
	for _, g := range games {
		if g.Date.Before(now) {
			continue
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
