package boxscore

import (
	"math"
	"sort"
)

// Leader is a player's summed scoring over a season or a single game.
type Leader struct {
	PlayerID  int64
	TeamID    int64
	FirstName string
	LastName  string
	Points    int
	FGM       int
	FGA       int
	FGPercent float64
}

// PlayerSeason is a player's season aggregate for one team.
type PlayerSeason struct {
	PlayerID    int64
	FirstName   string
	LastName    string
	GamesPlayed int
	Points      int
	FGM         int
	FGA         int
}

func (p PlayerSeason) AvgPoints() float64 {
	if p.GamesPlayed <= 0 {
		return 0
	}
	return math.Round(float64(p.Points)/float64(p.GamesPlayed)*10) / 10
}

func (p PlayerSeason) FGPercent() float64 {
	return Percentage(p.FGM, p.FGA)
}

// RankLeaders groups lines by (player, team), drops players without field goal
// attempts and returns the top limit by points, ties by player id.
func RankLeaders(lines []Line, limit int) []Leader {
	type groupKey struct{ playerID, teamID int64 }

	order := make([]groupKey, 0)
	grouped := make(map[groupKey]*Leader)
	for _, line := range lines {
		key := groupKey{playerID: line.Key.PlayerID, teamID: line.Key.TeamID}
		item, ok := grouped[key]
		if !ok {
			item = &Leader{
				PlayerID:  line.Key.PlayerID,
				TeamID:    line.Key.TeamID,
				FirstName: line.FirstName,
				LastName:  line.LastName,
			}
			grouped[key] = item
			order = append(order, key)
		}
		item.Points += line.Points
		item.FGM += line.FGM
		item.FGA += line.FGA
	}

	out := make([]Leader, 0, len(order))
	for _, key := range order {
		item := grouped[key]
		if item.FGA <= 0 {
			continue
		}
		item.FGPercent = Percentage(item.FGM, item.FGA)
		out = append(out, *item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].PlayerID < out[j].PlayerID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopOfGame returns the highest scoring player of a single game's lines,
// the lower player id on equal points. Players without field goal attempts are included.
func TopOfGame(lines []Line) (Leader, bool) {
	var (
		best  Leader
		found bool
	)
	byPlayer := make(map[int64]*Leader)
	order := make([]int64, 0)
	for _, line := range lines {
		item, ok := byPlayer[line.Key.PlayerID]
		if !ok {
			item = &Leader{
				PlayerID:  line.Key.PlayerID,
				TeamID:    line.Key.TeamID,
				FirstName: line.FirstName,
				LastName:  line.LastName,
			}
			byPlayer[line.Key.PlayerID] = item
			order = append(order, line.Key.PlayerID)
		}
		item.Points += line.Points
		item.FGM += line.FGM
		item.FGA += line.FGA
	}
	for _, playerID := range order {
		item := byPlayer[playerID]
		item.FGPercent = Percentage(item.FGM, item.FGA)
		if !found || item.Points > best.Points || (item.Points == best.Points && item.PlayerID < best.PlayerID) {
			best = *item
			found = true
		}
	}
	return best, found
}

// SeasonTotals aggregates lines per player for one team's season.
func SeasonTotals(lines []Line) []PlayerSeason {
	order := make([]int64, 0)
	byPlayer := make(map[int64]*PlayerSeason)
	games := make(map[int64]map[int64]struct{})
	for _, line := range lines {
		item, ok := byPlayer[line.Key.PlayerID]
		if !ok {
			item = &PlayerSeason{
				PlayerID:  line.Key.PlayerID,
				FirstName: line.FirstName,
				LastName:  line.LastName,
			}
			byPlayer[line.Key.PlayerID] = item
			games[line.Key.PlayerID] = make(map[int64]struct{})
			order = append(order, line.Key.PlayerID)
		}
		item.Points += line.Points
		item.FGM += line.FGM
		item.FGA += line.FGA
		games[line.Key.PlayerID][line.Key.GameID] = struct{}{}
	}

	out := make([]PlayerSeason, 0, len(order))
	for _, playerID := range order {
		item := byPlayer[playerID]
		item.GamesPlayed = len(games[playerID])
		out = append(out, *item)
	}
	return out
}
