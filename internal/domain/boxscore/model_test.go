package boxscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(3, 0))
	assert.Equal(t, 50.0, Percentage(1, 2))
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(4, 4))
}

func TestTotals(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{BoxScore: BoxScore{Counters: Counters{FGA: 4, FGM: 2, ThreeFGA: 2, ThreeFGM: 1, OReb: 1, DReb: 2, Points: 5}}},
		{BoxScore: BoxScore{Counters: Counters{FGA: 3, FGM: 1, FTA: 2, FTM: 2, Assists: 3, Points: 4}}},
	}

	got := Totals(lines)
	assert.Equal(t, 7, got.FGA)
	assert.Equal(t, 3, got.FGM)
	assert.Equal(t, 9, got.Points)
	assert.Equal(t, 3, got.Rebounds())
	assert.Equal(t, 42.9, got.FGPercent())
	assert.Equal(t, 50.0, got.ThreeFGPercent())
}

func TestRankLeaders(t *testing.T) {
	t.Parallel()

	line := func(gameID, teamID, playerID int64, c Counters) Line {
		return Line{BoxScore: BoxScore{Key: Key{GameID: gameID, TeamID: teamID, PlayerID: playerID}, Counters: c}}
	}
	lines := []Line{
		line(1, 10, 100, Counters{FGA: 5, FGM: 3, Points: 7}),
		line(2, 10, 100, Counters{FGA: 5, FGM: 2, Points: 4}),
		line(1, 20, 200, Counters{FGA: 10, FGM: 6, Points: 12}),
		line(1, 20, 201, Counters{FTA: 4, FTM: 4, Points: 4}),
		line(1, 10, 101, Counters{FGA: 2, FGM: 1, Points: 2}),
	}

	got := RankLeaders(lines, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(200), got[0].PlayerID)
	assert.Equal(t, 12, got[0].Points)
	assert.Equal(t, int64(100), got[1].PlayerID)
	assert.Equal(t, 11, got[1].Points)
	assert.Equal(t, 50.0, got[1].FGPercent)

	all := RankLeaders(lines, 0)
	for _, item := range all {
		assert.NotEqual(t, int64(201), item.PlayerID, "players without attempts are excluded")
	}
}

func TestTopOfGame(t *testing.T) {
	t.Parallel()

	_, ok := TopOfGame(nil)
	assert.False(t, ok)

	lines := []Line{
		{BoxScore: BoxScore{Key: Key{GameID: 1, TeamID: 10, PlayerID: 100}, Counters: Counters{Points: 8}}, FirstName: "Ana"},
		{BoxScore: BoxScore{Key: Key{GameID: 1, TeamID: 20, PlayerID: 200}, Counters: Counters{Points: 15}}, FirstName: "Ben"},
	}
	got, ok := TopOfGame(lines)
	assert.True(t, ok)
	assert.Equal(t, int64(200), got.PlayerID)
	assert.Equal(t, "Ben", got.FirstName)
}

func TestSeasonTotals(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{BoxScore: BoxScore{Key: Key{GameID: 1, PlayerID: 100}, Counters: Counters{FGA: 4, FGM: 2, Points: 5}}},
		{BoxScore: BoxScore{Key: Key{GameID: 2, PlayerID: 100}, Counters: Counters{FGA: 6, FGM: 3, Points: 8}}},
		{BoxScore: BoxScore{Key: Key{GameID: 2, PlayerID: 101}, Counters: Counters{}}},
	}

	got := SeasonTotals(lines)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].GamesPlayed)
	assert.Equal(t, 6.5, got[0].AvgPoints())
	assert.Equal(t, 50.0, got[0].FGPercent())
	assert.Equal(t, 0.0, got[1].AvgPoints())
	assert.Equal(t, 0.0, got[1].FGPercent())
}
