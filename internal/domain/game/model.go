package game

import (
	"fmt"
	"strings"
	"time"
)

// Status is the game lifecycle state. Only Played games carry final scores.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusOngoing   Status = "Ongoing"
	StatusPlayed    Status = "Played"
)

var AllStatuses = []Status{StatusScheduled, StatusOngoing, StatusPlayed}

func ParseStatus(value string) (Status, bool) {
	for _, status := range AllStatuses {
		if strings.EqualFold(strings.TrimSpace(value), string(status)) {
			return status, true
		}
	}
	return "", false
}

// Game is one meeting of two teams inside a league season.
type Game struct {
	ID           int64
	Date         time.Time
	Team1ID      int64
	Team2ID      int64
	Team1Score   int
	Team2Score   int
	WinnerTeamID *int64
	Status       Status
	LeagueID     int64
	SeasonID     int64
}

func (g Game) Validate() error {
	if g.Team1ID <= 0 || g.Team2ID <= 0 {
		return fmt.Errorf("both teams are required")
	}
	if g.Team1ID == g.Team2ID {
		return fmt.Errorf("a team cannot play against itself")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if _, ok := ParseStatus(string(g.Status)); !ok {
		return fmt.Errorf("invalid game status: %s", g.Status)
	}

	return nil
}

// Settle writes the final scores, marks the game played and picks the
// strictly higher side as winner. A tie leaves no winner.
func (g Game) Settle(team1Points, team2Points int) Game {
	g.Team1Score = team1Points
	g.Team2Score = team2Points
	g.Status = StatusPlayed
	g.WinnerTeamID = nil

	switch {
	case team1Points > team2Points:
		winner := g.Team1ID
		g.WinnerTeamID = &winner
	case team2Points > team1Points:
		winner := g.Team2ID
		g.WinnerTeamID = &winner
	}

	return g
}

func (g Game) Involves(teamID int64) bool {
	return teamID > 0 && (g.Team1ID == teamID || g.Team2ID == teamID)
}

// Side returns the team's own score, the opponent id and the opponent score.
func (g Game) Side(teamID int64) (own int, opponentID int64, opponent int, ok bool) {
	switch teamID {
	case g.Team1ID:
		return g.Team1Score, g.Team2ID, g.Team2Score, true
	case g.Team2ID:
		return g.Team2Score, g.Team1ID, g.Team1Score, true
	default:
		return 0, 0, 0, false
	}
}

const (
	ResultWin     = "Win"
	ResultLoss    = "Loss"
	ResultTie     = "Tie"
	ResultPending = "Pending"
)

// ResultFor reports the outcome from the team's point of view.
func (g Game) ResultFor(teamID int64) string {
	if g.Status != StatusPlayed {
		return ResultPending
	}
	own, _, opponent, ok := g.Side(teamID)
	if !ok {
		return ResultPending
	}
	switch {
	case own > opponent:
		return ResultWin
	case own < opponent:
		return ResultLoss
	default:
		return ResultTie
	}
}
