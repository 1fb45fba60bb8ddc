package httpapi

import (
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/standing"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

func TestFlexibleID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "number", in: `{"game_id":7}`, want: 7},
		{name: "numeric string", in: `{"game_id":"12"}`, want: 12},
		{name: "empty string", in: `{"game_id":""}`, want: 0},
		{name: "null", in: `{"game_id":null}`, want: 0},
		{name: "garbage", in: `{"game_id":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req endGameRequest
			err := sonic.Unmarshal([]byte(tt.in), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int64(req.GameID))
		})
	}
}

func TestRenderTeamBoxScore(t *testing.T) {
	line := boxscore.Line{
		BoxScore: boxscore.BoxScore{
			Key:      boxscore.Key{GameID: 1, TeamID: 1, PlayerID: 3},
			Counters: boxscore.Counters{FGA: 3, FGM: 2, ThreeFGA: 1, ThreeFGM: 1, Points: 5, OReb: 1, DReb: 2},
		},
		FirstName:    "Ari",
		LastName:     "<Moss>",
		JerseyNumber: 23,
	}
	view := usecase.TeamBoxScore{
		Team:   team.Team{ID: 1, Name: "Rockets"},
		Lines:  []boxscore.Line{line},
		Totals: boxscore.Totals([]boxscore.Line{line}),
	}

	html, err := renderTeamBoxScore(view)

	require.NoError(t, err)
	assert.Contains(t, html, "<caption>Rockets</caption>")
	assert.Contains(t, html, `data-player-id="3"`)
	assert.Contains(t, html, "&lt;Moss&gt;")
	assert.Contains(t, html, "<td>2-3</td><td>66.7</td>")
	assert.Contains(t, html, "<td>Totals</td><td>5</td>")
}

func TestStandingToDTO_FormatsRecord(t *testing.T) {
	out := standingsToDTO(nil)
	assert.Empty(t, out)

	dto := standingToDTO(standing.Record{TeamID: 1, TeamName: "Rockets", Wins: 3, Losses: 1, Rank: 1})
	assert.Equal(t, "3 - 1", dto.Record)
}
