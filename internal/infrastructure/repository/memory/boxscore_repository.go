package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
)

type BoxScoreRepository struct {
	store *Store
}

func (r *BoxScoreRepository) Increment(_ context.Context, seed boxscore.BoxScore, delta boxscore.Counters) (boxscore.BoxScore, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	row, ok := r.store.boxScores[seed.Key]
	if !ok {
		r.store.nextBoxScoreID++
		row = boxscore.BoxScore{
			ID:         r.store.nextBoxScoreID,
			Key:        seed.Key,
			LeagueID:   seed.LeagueID,
			SeasonID:   seed.SeasonID,
			DatePlayed: seed.DatePlayed,
		}
	}
	row.Counters = row.Counters.Add(delta)
	r.store.boxScores[seed.Key] = row
	return row, nil
}

func (r *BoxScoreRepository) GetByKey(_ context.Context, key boxscore.Key) (boxscore.BoxScore, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.boxScores[key]
	return row, ok, nil
}

func (r *BoxScoreRepository) ListLinesByGameTeam(_ context.Context, gameID, teamID int64) ([]boxscore.Line, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := r.linesLocked(func(row boxscore.BoxScore) bool {
		return row.Key.GameID == gameID && row.Key.TeamID == teamID
	})
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].JerseyNumber != lines[j].JerseyNumber {
			return lines[i].JerseyNumber < lines[j].JerseyNumber
		}
		return lines[i].Key.PlayerID < lines[j].Key.PlayerID
	})
	return lines, nil
}

func (r *BoxScoreRepository) TeamTotals(_ context.Context, gameID, teamID int64) (boxscore.Counters, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out boxscore.Counters
	for key, row := range r.store.boxScores {
		if key.GameID == gameID && key.TeamID == teamID {
			out = out.Add(row.Counters)
		}
	}
	return out, nil
}

func (r *BoxScoreRepository) TopScorers(_ context.Context, leagueID, seasonID int64, limit int) ([]boxscore.Leader, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := r.linesLocked(func(row boxscore.BoxScore) bool {
		return row.LeagueID == leagueID && row.SeasonID == seasonID
	})
	return boxscore.RankLeaders(lines, limit), nil
}

func (r *BoxScoreRepository) GameLeader(_ context.Context, gameID int64) (boxscore.Leader, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := r.linesLocked(func(row boxscore.BoxScore) bool {
		return row.Key.GameID == gameID
	})
	leader, ok := boxscore.TopOfGame(lines)
	return leader, ok, nil
}

func (r *BoxScoreRepository) PlayerSeasonTotals(_ context.Context, seasonID, teamID int64) ([]boxscore.PlayerSeason, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lines := r.linesLocked(func(row boxscore.BoxScore) bool {
		return row.SeasonID == seasonID && row.Key.TeamID == teamID
	})
	return boxscore.SeasonTotals(lines), nil
}

// linesLocked joins matching rows with player display fields, ordered by row id.
// Rows whose player no longer exists are dropped.
func (r *BoxScoreRepository) linesLocked(match func(boxscore.BoxScore) bool) []boxscore.Line {
	out := make([]boxscore.Line, 0)
	for _, row := range r.store.boxScores {
		if !match(row) {
			continue
		}
		p, ok := r.store.players[row.Key.PlayerID]
		if !ok {
			continue
		}
		out = append(out, boxscore.Line{
			BoxScore:     row,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			JerseyNumber: p.JerseyNumber,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
