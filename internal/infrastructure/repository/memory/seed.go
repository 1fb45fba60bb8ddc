package memory

import (
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/domain/user"
)

// Seed is the initial content of a Store. Ids are kept as given.
type Seed struct {
	Leagues []league.League
	Seasons []season.Season
	Teams   []team.Team
	Players []player.Player
	Games   []game.Game
	Users   []user.User
}

const (
	LeagueIDDowntown int64 = 1
	SeasonIDSpring   int64 = 1
	TeamIDRockets    int64 = 1
	TeamIDHawks      int64 = 2
	TeamIDComets     int64 = 3
)

// DemoSeed returns one league with a dated season, three teams of three
// players and one scheduled game between the first two teams.
func DemoSeed() Seed {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	return Seed{
		Leagues: []league.League{
			{ID: LeagueIDDowntown, Name: "Downtown Rec League", Description: "Weeknight 5v5"},
		},
		Seasons: []season.Season{
			{ID: SeasonIDSpring, LeagueID: LeagueIDDowntown, Name: "Spring 2026", StartDate: &start, EndDate: &end},
		},
		Teams: []team.Team{
			{ID: TeamIDRockets, LeagueID: LeagueIDDowntown, Name: "Rockets", Division: "A", Captain: "Dana Reyes"},
			{ID: TeamIDHawks, LeagueID: LeagueIDDowntown, Name: "Hawks", Division: "A", Captain: "Sam Okafor"},
			{ID: TeamIDComets, LeagueID: LeagueIDDowntown, Name: "Comets", Division: "B", Captain: "Lee Park"},
		},
		Players: []player.Player{
			{ID: 1, TeamID: TeamIDRockets, FirstName: "Dana", LastName: "Reyes", JerseyNumber: 4, Position: "PG"},
			{ID: 2, TeamID: TeamIDRockets, FirstName: "Chris", LastName: "Vance", JerseyNumber: 11, Position: "SF"},
			{ID: 3, TeamID: TeamIDRockets, FirstName: "Ari", LastName: "Moss", JerseyNumber: 23, Position: "C"},
			{ID: 4, TeamID: TeamIDHawks, FirstName: "Sam", LastName: "Okafor", JerseyNumber: 1, Position: "SG"},
			{ID: 5, TeamID: TeamIDHawks, FirstName: "Jo", LastName: "Lindqvist", JerseyNumber: 8, Position: "PF"},
			{ID: 6, TeamID: TeamIDHawks, FirstName: "Max", LastName: "Ortiz", JerseyNumber: 15, Position: "C"},
			{ID: 7, TeamID: TeamIDComets, FirstName: "Lee", LastName: "Park", JerseyNumber: 3, Position: "PG"},
			{ID: 8, TeamID: TeamIDComets, FirstName: "Rui", LastName: "Santos", JerseyNumber: 9, Position: "SF"},
			{ID: 9, TeamID: TeamIDComets, FirstName: "Tom", LastName: "Hale", JerseyNumber: 32, Position: "PF"},
		},
		Games: []game.Game{
			{
				ID:       1,
				Date:     time.Date(2026, time.March, 10, 19, 0, 0, 0, time.UTC),
				Team1ID:  TeamIDRockets,
				Team2ID:  TeamIDHawks,
				Status:   game.StatusScheduled,
				LeagueID: LeagueIDDowntown,
				SeasonID: SeasonIDSpring,
			},
		},
	}
}
