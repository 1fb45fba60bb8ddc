package boxscore

import (
	"math"
	"time"
)

// Counters holds the additive statistics of a box score row.
// FGA and FGM include three point attempts and makes.
type Counters struct {
	FGA       int
	FGM       int
	ThreeFGA  int
	ThreeFGM  int
	FTA       int
	FTM       int
	OReb      int
	DReb      int
	Assists   int
	Steals    int
	Blocks    int
	Turnovers int
	Fouls     int
	Points    int
}

func (c Counters) Add(o Counters) Counters {
	return Counters{
		FGA:       c.FGA + o.FGA,
		FGM:       c.FGM + o.FGM,
		ThreeFGA:  c.ThreeFGA + o.ThreeFGA,
		ThreeFGM:  c.ThreeFGM + o.ThreeFGM,
		FTA:       c.FTA + o.FTA,
		FTM:       c.FTM + o.FTM,
		OReb:      c.OReb + o.OReb,
		DReb:      c.DReb + o.DReb,
		Assists:   c.Assists + o.Assists,
		Steals:    c.Steals + o.Steals,
		Blocks:    c.Blocks + o.Blocks,
		Turnovers: c.Turnovers + o.Turnovers,
		Fouls:     c.Fouls + o.Fouls,
		Points:    c.Points + o.Points,
	}
}

func (c Counters) IsZero() bool {
	return c == Counters{}
}

func (c Counters) Rebounds() int {
	return c.OReb + c.DReb
}

func (c Counters) FGPercent() float64 {
	return Percentage(c.FGM, c.FGA)
}

func (c Counters) ThreeFGPercent() float64 {
	return Percentage(c.ThreeFGM, c.ThreeFGA)
}

// ScoredPoints recomputes points from the shot counters.
func (c Counters) ScoredPoints() int {
	return 2*(c.FGM-c.ThreeFGM) + 3*c.ThreeFGM + c.FTM
}

// Percentage returns made/attempted*100 rounded to one decimal, 0 without attempts.
func Percentage(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return math.Round(float64(made)/float64(attempted)*1000) / 10
}

// Key identifies the single box score row of a player in a game.
type Key struct {
	GameID   int64
	TeamID   int64
	PlayerID int64
}

// BoxScore is the cumulative line of one player for one team in one game.
type BoxScore struct {
	ID         int64
	Key        Key
	LeagueID   int64
	SeasonID   int64
	DatePlayed time.Time
	Counters
}

// Apply adds the delta of the action label. Unknown labels leave the row unchanged.
func (b BoxScore) Apply(label string) BoxScore {
	delta, _ := DeltaFor(label)
	b.Counters = b.Counters.Add(delta)
	return b
}

// Line is a box score row joined with the player's display fields.
type Line struct {
	BoxScore
	FirstName    string
	LastName     string
	JerseyNumber int
}

func Totals(lines []Line) Counters {
	var out Counters
	for _, line := range lines {
		out = out.Add(line.Counters)
	}
	return out
}
