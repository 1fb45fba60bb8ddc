package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/standing"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
)

const (
	quickUploadMaxPlayers = 10
	teamRecentGames       = 3
	teamDetailsWorkers    = 4
)

type CreateTeamInput struct {
	LeagueID      int64
	Name          string
	Division      string
	Captain       string
	ContactNumber string
	ContactEmail  string
}

type QuickUploadPlayer struct {
	FirstName    string
	LastName     string
	JerseyNumber *int
}

type QuickUploadInput struct {
	LeagueID int64
	TeamName string
	Players  []QuickUploadPlayer
}

type TeamRecord struct {
	Team   team.Team
	Record standing.Record
}

type TeamStandings struct {
	Season  *season.Season
	Records []TeamRecord
}

type TeamGamePerformance struct {
	GameID    int64
	Date      time.Time
	Points    int
	FGPercent float64
}

type PlayerAverage struct {
	PlayerID    int64
	FirstName   string
	LastName    string
	GamesPlayed int
	AvgPoints   float64
	FGPercent   float64
}

type TeamGameResult struct {
	GameID        int64
	Date          time.Time
	Status        game.Status
	OpponentID    int64
	OpponentName  string
	TeamScore     int
	OpponentScore int
	Result        string
}

type TeamDetails struct {
	Team           team.Team
	Season         *season.Season
	Record         standing.Record
	RecentGames    []TeamGamePerformance
	PlayerAverages []PlayerAverage
	History        []TeamGameResult
}

type TeamService struct {
	leagueRepo   league.Repository
	seasonRepo   season.Repository
	teamRepo     team.Repository
	gameRepo     game.Repository
	boxScoreRepo boxscore.Repository
	newPool      func() (*ants.Pool, error)
}

func NewTeamService(
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	gameRepo game.Repository,
	boxScoreRepo boxscore.Repository,
) *TeamService {
	return &TeamService{
		leagueRepo:   leagueRepo,
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		gameRepo:     gameRepo,
		boxScoreRepo: boxScoreRepo,
		newPool:      func() (*ants.Pool, error) { return ants.NewPool(teamDetailsWorkers) },
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	item := team.Team{
		LeagueID:      input.LeagueID,
		Name:          strings.TrimSpace(input.Name),
		Division:      strings.TrimSpace(input.Division),
		Captain:       strings.TrimSpace(input.Captain),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		ContactEmail:  strings.TrimSpace(input.ContactEmail),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := getLeague(ctx, s.leagueRepo, item.LeagueID); err != nil {
		return team.Team{}, err
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

// QuickUpload creates a team with up to ten players in one write. Rows
// missing a first name, last name or jersey number are skipped.
func (s *TeamService) QuickUpload(ctx context.Context, input QuickUploadInput) (team.Team, []player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.QuickUpload")
	defer span.End()

	item := team.Team{LeagueID: input.LeagueID, Name: strings.TrimSpace(input.TeamName)}
	if err := item.Validate(); err != nil {
		return team.Team{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(input.Players) > quickUploadMaxPlayers {
		return team.Team{}, nil, fmt.Errorf("%w: at most %d players per upload", ErrInvalidInput, quickUploadMaxPlayers)
	}
	if _, err := getLeague(ctx, s.leagueRepo, item.LeagueID); err != nil {
		return team.Team{}, nil, err
	}

	roster := make([]player.Player, 0, len(input.Players))
	for _, row := range input.Players {
		first := strings.TrimSpace(row.FirstName)
		last := strings.TrimSpace(row.LastName)
		if first == "" || last == "" || row.JerseyNumber == nil {
			continue
		}
		candidate := player.Player{FirstName: first, LastName: last, JerseyNumber: *row.JerseyNumber}
		if err := candidate.Validate(); err != nil {
			return team.Team{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		roster = append(roster, candidate)
	}

	created, players, err := s.teamRepo.CreateWithRoster(ctx, item, roster)
	if err != nil {
		return team.Team{}, nil, fmt.Errorf("create team with roster: %w", err)
	}

	return created, players, nil
}

// ListTeamsWithRecords ranks the league's teams over its latest season.
func (s *TeamService) ListTeamsWithRecords(ctx context.Context, leagueID int64) (TeamStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamsWithRecords")
	defer span.End()

	if _, err := getLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return TeamStandings{}, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return TeamStandings{}, fmt.Errorf("list teams by league: %w", err)
	}

	current, hasSeason, err := resolveSeason(ctx, s.seasonRepo, leagueID, 0)
	if err != nil {
		return TeamStandings{}, err
	}

	var games []game.Game
	out := TeamStandings{}
	if hasSeason {
		out.Season = &current
		games, err = s.gameRepo.ListBySeason(ctx, leagueID, current.ID)
		if err != nil {
			return TeamStandings{}, fmt.Errorf("list games by season: %w", err)
		}
	}

	byID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}
	for _, record := range standing.Compute(teams, games) {
		out.Records = append(out.Records, TeamRecord{Team: byID[record.TeamID], Record: record})
	}

	return out, nil
}

func (s *TeamService) GetTeamDetails(ctx context.Context, leagueID, teamID int64) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamDetails")
	defer span.End()

	if _, err := getLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return TeamDetails{}, err
	}
	teamItem, err := getTeam(ctx, s.teamRepo, teamID)
	if err != nil {
		return TeamDetails{}, err
	}
	if teamItem.LeagueID != 0 && teamItem.LeagueID != leagueID {
		return TeamDetails{}, fmt.Errorf("%w: team=%d league=%d", ErrNotFound, teamID, leagueID)
	}

	out := TeamDetails{
		Team:   teamItem,
		Record: standing.Record{TeamID: teamItem.ID, TeamName: teamItem.Name},
	}

	current, hasSeason, err := resolveSeason(ctx, s.seasonRepo, leagueID, 0)
	if err != nil {
		return TeamDetails{}, err
	}
	if !hasSeason {
		return out, nil
	}
	out.Season = &current

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list teams by league: %w", err)
	}
	games, err := s.gameRepo.ListBySeason(ctx, leagueID, current.ID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list games by season: %w", err)
	}

	if record, ok := standing.Find(standing.Compute(teams, games), teamItem.ID); ok {
		out.Record = record
	}

	names := make(map[int64]string, len(teams))
	for _, item := range teams {
		names[item.ID] = item.Name
	}

	teamGames := make([]game.Game, 0)
	for _, g := range games {
		if !g.Involves(teamItem.ID) {
			continue
		}
		teamGames = append(teamGames, g)

		own, opponentID, opp, _ := g.Side(teamItem.ID)
		opponentName, ok := names[opponentID]
		if !ok {
			opponentName = s.lookupTeamName(ctx, opponentID)
			names[opponentID] = opponentName
		}
		out.History = append(out.History, TeamGameResult{
			GameID:        g.ID,
			Date:          g.Date,
			Status:        g.Status,
			OpponentID:    opponentID,
			OpponentName:  opponentName,
			TeamScore:     own,
			OpponentScore: opp,
			Result:        g.ResultFor(teamItem.ID),
		})
	}

	recent := teamGames
	if len(recent) > teamRecentGames {
		recent = recent[:teamRecentGames]
	}
	out.RecentGames, err = s.recentPerformance(ctx, teamItem.ID, recent)
	if err != nil {
		return TeamDetails{}, err
	}

	seasonTotals, err := s.boxScoreRepo.PlayerSeasonTotals(ctx, current.ID, teamItem.ID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list player season totals: %w", err)
	}
	for _, item := range seasonTotals {
		out.PlayerAverages = append(out.PlayerAverages, PlayerAverage{
			PlayerID:    item.PlayerID,
			FirstName:   item.FirstName,
			LastName:    item.LastName,
			GamesPlayed: item.GamesPlayed,
			AvgPoints:   item.AvgPoints(),
			FGPercent:   item.FGPercent(),
		})
	}

	return out, nil
}

// recentPerformance loads team shooting for each game on a bounded worker pool.
func (s *TeamService) recentPerformance(ctx context.Context, teamID int64, games []game.Game) ([]TeamGamePerformance, error) {
	if len(games) == 0 {
		return nil, nil
	}

	pool, err := s.newPool()
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]TeamGamePerformance, len(games))
	errs := make([]error, len(games))

	var workers sync.WaitGroup
	for i, g := range games {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			totals, loadErr := s.boxScoreRepo.TeamTotals(ctx, g.ID, teamID)
			if loadErr != nil {
				errs[i] = fmt.Errorf("team totals game=%d: %w", g.ID, loadErr)
				return
			}
			out[i] = TeamGamePerformance{
				GameID:    g.ID,
				Date:      g.Date,
				Points:    totals.Points,
				FGPercent: totals.FGPercent(),
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *TeamService) lookupTeamName(ctx context.Context, teamID int64) string {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil || !exists {
		return ""
	}
	return item.Name
}

func getTeam(ctx context.Context, repo team.Repository, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}
