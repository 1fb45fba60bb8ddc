package standing

import (
	"sort"

	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
)

// Record is one ranked row of a league season table.
type Record struct {
	TeamID   int64
	TeamName string
	Wins     int
	Losses   int
	Rank     int
}

// Compute builds the table for teams from stored game scores. Equal scores
// count as neither a win nor a loss. Rows are ranked by wins descending then
// losses ascending, keeping the order of teams for ties.
func Compute(teams []team.Team, games []game.Game) []Record {
	out := make([]Record, 0, len(teams))
	index := make(map[int64]int, len(teams))
	for _, item := range teams {
		index[item.ID] = len(out)
		out = append(out, Record{TeamID: item.ID, TeamName: item.Name})
	}

	for _, g := range games {
		if g.Team1Score == g.Team2Score {
			continue
		}
		winner, loser := g.Team1ID, g.Team2ID
		if g.Team2Score > g.Team1Score {
			winner, loser = g.Team2ID, g.Team1ID
		}
		if i, ok := index[winner]; ok {
			out[i].Wins++
		}
		if i, ok := index[loser]; ok {
			out[i].Losses++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Losses < out[j].Losses
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}

// Find returns the record of a team.
func Find(records []Record, teamID int64) (Record, bool) {
	for _, item := range records {
		if item.TeamID == teamID {
			return item, true
		}
	}
	return Record{}, false
}
