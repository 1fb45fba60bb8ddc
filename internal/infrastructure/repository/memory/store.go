package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/domain/user"
)

// Store holds every table behind one lock so multi-table writes such as
// settlement and roster upload are atomic, like a database transaction.
type Store struct {
	mu sync.RWMutex

	leagues   map[int64]league.League
	seasons   map[int64]season.Season
	teams     map[int64]team.Team
	players   map[int64]player.Player
	games     map[int64]game.Game
	logs      []gamelog.Entry
	boxScores map[boxscore.Key]boxscore.BoxScore
	users     map[int64]user.User

	nextLeagueID   int64
	nextSeasonID   int64
	nextTeamID     int64
	nextPlayerID   int64
	nextGameID     int64
	nextLogID      int64
	nextBoxScoreID int64
	nextUserID     int64
}

func NewStore(seed Seed) *Store {
	s := &Store{
		leagues:   make(map[int64]league.League),
		seasons:   make(map[int64]season.Season),
		teams:     make(map[int64]team.Team),
		players:   make(map[int64]player.Player),
		games:     make(map[int64]game.Game),
		boxScores: make(map[boxscore.Key]boxscore.BoxScore),
		users:     make(map[int64]user.User),
	}

	for _, item := range seed.Leagues {
		s.leagues[item.ID] = item
		s.nextLeagueID = max(s.nextLeagueID, item.ID)
	}
	for _, item := range seed.Seasons {
		s.seasons[item.ID] = item
		s.nextSeasonID = max(s.nextSeasonID, item.ID)
	}
	for _, item := range seed.Teams {
		s.teams[item.ID] = item
		s.nextTeamID = max(s.nextTeamID, item.ID)
	}
	for _, item := range seed.Players {
		s.players[item.ID] = item
		s.nextPlayerID = max(s.nextPlayerID, item.ID)
	}
	for _, item := range seed.Games {
		s.games[item.ID] = item
		s.nextGameID = max(s.nextGameID, item.ID)
	}
	for _, item := range seed.Users {
		s.users[item.ID] = item
		s.nextUserID = max(s.nextUserID, item.ID)
	}

	return s
}

func (s *Store) Leagues() *LeagueRepository     { return &LeagueRepository{store: s} }
func (s *Store) Seasons() *SeasonRepository     { return &SeasonRepository{store: s} }
func (s *Store) Teams() *TeamRepository         { return &TeamRepository{store: s} }
func (s *Store) Players() *PlayerRepository     { return &PlayerRepository{store: s} }
func (s *Store) Games() *GameRepository         { return &GameRepository{store: s} }
func (s *Store) GameLogs() *GameLogRepository   { return &GameLogRepository{store: s} }
func (s *Store) BoxScores() *BoxScoreRepository { return &BoxScoreRepository{store: s} }
func (s *Store) Users() *UserRepository         { return &UserRepository{store: s} }

func sortedByID[T any](items map[int64]T) []T {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, items[id])
	}
	return out
}
