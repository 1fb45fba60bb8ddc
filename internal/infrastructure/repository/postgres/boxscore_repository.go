package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type BoxScoreRepository struct {
	db *sqlx.DB
}

func NewBoxScoreRepository(db *sqlx.DB) *BoxScoreRepository {
	return &BoxScoreRepository{db: db}
}

// Increment upserts the row and adds delta onto the stored counters in one
// statement, so concurrent increments never overwrite each other.
func (r *BoxScoreRepository) Increment(ctx context.Context, seed boxscore.BoxScore, delta boxscore.Counters) (boxscore.BoxScore, error) {
	query, args, err := qb.InsertModel("box_scores", boxScoreInsertModel{
		GameID:     seed.Key.GameID,
		TeamID:     seed.Key.TeamID,
		PlayerID:   seed.Key.PlayerID,
		LeagueID:   seed.LeagueID,
		SeasonID:   seed.SeasonID,
		DatePlayed: seed.DatePlayed,
		FGA:        delta.FGA,
		FGM:        delta.FGM,
		ThreeFGA:   delta.ThreeFGA,
		ThreeFGM:   delta.ThreeFGM,
		FTA:        delta.FTA,
		FTM:        delta.FTM,
		OReb:       delta.OReb,
		DReb:       delta.DReb,
		Assists:    delta.Assists,
		Steals:     delta.Steals,
		Blocks:     delta.Blocks,
		Turnovers:  delta.Turnovers,
		Fouls:      delta.Fouls,
		Points:     delta.Points,
	}).
		OnConflict("game_id", "team_id", "player_id").
		Accumulate(boxScoreCounterColumns...).
		SetOnConflict("updated_at", "NOW()").
		Returning("*").
		ToSQL()
	if err != nil {
		return boxscore.BoxScore{}, fmt.Errorf("build increment box score query: %w", err)
	}

	var row boxScoreTableModel
	if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return boxscore.BoxScore{}, fmt.Errorf("increment box score: %w", err)
	}
	return boxScoreFromRow(row), nil
}

func (r *BoxScoreRepository) GetByKey(ctx context.Context, key boxscore.Key) (boxscore.BoxScore, bool, error) {
	query, args, err := qb.Select("*").From("box_scores").
		Where(
			qb.Eq("game_id", key.GameID),
			qb.Eq("team_id", key.TeamID),
			qb.Eq("player_id", key.PlayerID),
		).
		ToSQL()
	if err != nil {
		return boxscore.BoxScore{}, false, fmt.Errorf("build get box score query: %w", err)
	}

	var row boxScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return boxscore.BoxScore{}, false, nil
		}
		return boxscore.BoxScore{}, false, fmt.Errorf("get box score: %w", err)
	}
	return boxScoreFromRow(row), true, nil
}

func (r *BoxScoreRepository) ListLinesByGameTeam(ctx context.Context, gameID, teamID int64) ([]boxscore.Line, error) {
	query, args, err := qb.Select("box_scores.*", "players.first_name", "players.last_name", "players.jersey_number").
		From("box_scores").
		Join("players", "players.id = box_scores.player_id").
		Where(
			qb.Eq("box_scores.game_id", gameID),
			qb.Eq("box_scores.team_id", teamID),
		).
		OrderBy("players.jersey_number", "box_scores.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select box score lines query: %w", err)
	}

	var rows []boxScoreLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select box score lines: %w", err)
	}

	out := make([]boxscore.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, boxscore.Line{
			BoxScore:     boxScoreFromRow(row.boxScoreTableModel),
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			JerseyNumber: row.JerseyNumber,
		})
	}
	return out, nil
}

func (r *BoxScoreRepository) TeamTotals(ctx context.Context, gameID, teamID int64) (boxscore.Counters, error) {
	columns := make([]string, 0, len(boxScoreCounterColumns))
	for _, col := range boxScoreCounterColumns {
		columns = append(columns, fmt.Sprintf("COALESCE(SUM(%s), 0) AS %s", col, col))
	}
	query, args, err := qb.Select(columns...).From("box_scores").
		Where(
			qb.Eq("game_id", gameID),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return boxscore.Counters{}, fmt.Errorf("build team totals query: %w", err)
	}

	var row boxScoreCounters
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return boxscore.Counters{}, fmt.Errorf("select team totals: %w", err)
	}
	return countersFromRow(row), nil
}

func leaderSelect() *qb.SelectBuilder {
	return qb.Select(
		"bs.player_id",
		"bs.team_id",
		"p.first_name",
		"p.last_name",
		"SUM(bs.points) AS points",
		"SUM(bs.fgm) AS fgm",
		"SUM(bs.fga) AS fga",
	).
		From("box_scores bs").
		Join("players p", "p.id = bs.player_id")
}

func (r *BoxScoreRepository) TopScorers(ctx context.Context, leagueID, seasonID int64, limit int) ([]boxscore.Leader, error) {
	query, args, err := leaderSelect().
		Where(
			qb.Eq("bs.league_id", leagueID),
			qb.Eq("bs.season_id", seasonID),
		).
		GroupBy("bs.player_id", "bs.team_id", "p.first_name", "p.last_name").
		Having(qb.Expr("SUM(bs.fga) > 0")).
		OrderBy("points DESC", "bs.player_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top scorers query: %w", err)
	}

	var rows []leaderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select top scorers: %w", err)
	}

	out := make([]boxscore.Leader, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderFromRow(row))
	}
	return out, nil
}

func (r *BoxScoreRepository) GameLeader(ctx context.Context, gameID int64) (boxscore.Leader, bool, error) {
	query, args, err := leaderSelect().
		Where(qb.Eq("bs.game_id", gameID)).
		GroupBy("bs.player_id", "bs.team_id", "p.first_name", "p.last_name").
		OrderBy("points DESC", "bs.player_id").
		Limit(1).
		ToSQL()
	if err != nil {
		return boxscore.Leader{}, false, fmt.Errorf("build game leader query: %w", err)
	}

	var row leaderRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return boxscore.Leader{}, false, nil
		}
		return boxscore.Leader{}, false, fmt.Errorf("select game leader: %w", err)
	}
	return leaderFromRow(row), true, nil
}

func (r *BoxScoreRepository) PlayerSeasonTotals(ctx context.Context, seasonID, teamID int64) ([]boxscore.PlayerSeason, error) {
	query, args, err := qb.Select(
		"bs.player_id",
		"p.first_name",
		"p.last_name",
		"COUNT(DISTINCT bs.game_id) AS games_played",
		"SUM(bs.points) AS points",
		"SUM(bs.fgm) AS fgm",
		"SUM(bs.fga) AS fga",
	).
		From("box_scores bs").
		Join("players p", "p.id = bs.player_id").
		Where(
			qb.Eq("bs.season_id", seasonID),
			qb.Eq("bs.team_id", teamID),
		).
		GroupBy("bs.player_id", "p.first_name", "p.last_name").
		OrderBy("bs.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build player season totals query: %w", err)
	}

	var rows []playerSeasonRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player season totals: %w", err)
	}

	out := make([]boxscore.PlayerSeason, 0, len(rows))
	for _, row := range rows {
		out = append(out, boxscore.PlayerSeason{
			PlayerID:    row.PlayerID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			GamesPlayed: row.GamesPlayed,
			Points:      row.Points,
			FGM:         row.FGM,
			FGA:         row.FGA,
		})
	}
	return out, nil
}

func boxScoreFromRow(row boxScoreTableModel) boxscore.BoxScore {
	return boxscore.BoxScore{
		ID:         row.ID,
		Key:        boxscore.Key{GameID: row.GameID, TeamID: row.TeamID, PlayerID: row.PlayerID},
		LeagueID:   row.LeagueID,
		SeasonID:   row.SeasonID,
		DatePlayed: row.DatePlayed,
		Counters:   countersFromRow(row.boxScoreCounters),
	}
}

func countersFromRow(row boxScoreCounters) boxscore.Counters {
	return boxscore.Counters{
		FGA:       row.FGA,
		FGM:       row.FGM,
		ThreeFGA:  row.ThreeFGA,
		ThreeFGM:  row.ThreeFGM,
		FTA:       row.FTA,
		FTM:       row.FTM,
		OReb:      row.OReb,
		DReb:      row.DReb,
		Assists:   row.Assists,
		Steals:    row.Steals,
		Blocks:    row.Blocks,
		Turnovers: row.Turnovers,
		Fouls:     row.Fouls,
		Points:    row.Points,
	}
}

func leaderFromRow(row leaderRow) boxscore.Leader {
	return boxscore.Leader{
		PlayerID:  row.PlayerID,
		TeamID:    row.TeamID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Points:    row.Points,
		FGM:       row.FGM,
		FGA:       row.FGA,
		FGPercent: boxscore.Percentage(row.FGM, row.FGA),
	}
}
