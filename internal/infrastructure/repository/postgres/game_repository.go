package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) Create(ctx context.Context, item game.Game) (game.Game, error) {
	query, args, err := qb.InsertModel("games", gameToRow(item)).Returning("id").ToSQL()
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}
	return item, nil
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Eq("id", gameID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game by id query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game by id: %w", err)
	}
	return gameFromRow(row), true, nil
}

func (r *GameRepository) Start(ctx context.Context, item game.Game) error {
	query, args, err := qb.Update("games").
		Set("status", string(game.StatusOngoing)).
		Set("date", item.Date).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build start game query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	return nil
}

func (r *GameRepository) ListBySeason(ctx context.Context, leagueID, seasonID int64) ([]game.Game, error) {
	return r.list(ctx, "select games by season",
		qb.Eq("league_id", leagueID),
		qb.Eq("season_id", seasonID),
		qb.IsNull("deleted_at"),
	)
}

func (r *GameRepository) ListByLeague(ctx context.Context, leagueID int64) ([]game.Game, error) {
	return r.list(ctx, "select games by league",
		qb.Eq("league_id", leagueID),
		qb.IsNull("deleted_at"),
	)
}

// Settle holds the game row lock from the point sum through the score update.
func (r *GameRepository) Settle(ctx context.Context, gameID int64) (game.Game, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return game.Game{}, false, fmt.Errorf("begin tx settle game: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("*").From("games").
		Where(
			qb.Eq("id", gameID),
			qb.IsNull("deleted_at"),
		).
		ForUpdate().
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build lock game query: %w", err)
	}

	var row gameTableModel
	if err := tx.GetContext(ctx, &row, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("lock game: %w", err)
	}
	current := gameFromRow(row)

	pointsQuery, pointsArgs, err := qb.Select("team_id", "COALESCE(SUM(points), 0) AS points").
		From("box_scores").
		Where(
			qb.Eq("game_id", gameID),
			qb.In("team_id", []any{current.Team1ID, current.Team2ID}),
		).
		GroupBy("team_id").
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build sum game points query: %w", err)
	}

	var sums []struct {
		TeamID int64 `db:"team_id"`
		Points int   `db:"points"`
	}
	if err := tx.SelectContext(ctx, &sums, pointsQuery, pointsArgs...); err != nil {
		return game.Game{}, false, fmt.Errorf("sum game points: %w", err)
	}

	var team1Points, team2Points int
	for _, sum := range sums {
		switch sum.TeamID {
		case current.Team1ID:
			team1Points = sum.Points
		case current.Team2ID:
			team2Points = sum.Points
		}
	}
	settled := current.Settle(team1Points, team2Points)

	var winner any
	if settled.WinnerTeamID != nil {
		winner = *settled.WinnerTeamID
	}
	updateQuery, updateArgs, err := qb.Update("games").
		Set("team1_score", settled.Team1Score).
		Set("team2_score", settled.Team2Score).
		Set("winner_team_id", winner).
		Set("status", string(settled.Status)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", gameID)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build settle game query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return game.Game{}, false, fmt.Errorf("settle game: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return game.Game{}, false, fmt.Errorf("commit settle game tx: %w", err)
	}
	return settled, true, nil
}

func (r *GameRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(conditions...).
		OrderBy("date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}
	return out, nil
}

func gameToRow(item game.Game) gameTableModel {
	row := gameTableModel{
		Date:       item.Date,
		Team1ID:    item.Team1ID,
		Team2ID:    item.Team2ID,
		Team1Score: item.Team1Score,
		Team2Score: item.Team2Score,
		Status:     string(item.Status),
		LeagueID:   item.LeagueID,
		SeasonID:   item.SeasonID,
	}
	if item.WinnerTeamID != nil {
		row.WinnerTeamID = nullableID(*item.WinnerTeamID)
	}
	return row
}

func gameFromRow(row gameTableModel) game.Game {
	out := game.Game{
		ID:         row.ID,
		Date:       row.Date,
		Team1ID:    row.Team1ID,
		Team2ID:    row.Team2ID,
		Team1Score: row.Team1Score,
		Team2Score: row.Team2Score,
		Status:     game.Status(row.Status),
		LeagueID:   row.LeagueID,
		SeasonID:   row.SeasonID,
	}
	if row.WinnerTeamID.Valid {
		winner := row.WinnerTeamID.Int64
		out.WinnerTeamID = &winner
	}
	return out
}
