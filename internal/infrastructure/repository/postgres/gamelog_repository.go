package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type GameLogRepository struct {
	db *sqlx.DB
}

func NewGameLogRepository(db *sqlx.DB) *GameLogRepository {
	return &GameLogRepository{db: db}
}

func (r *GameLogRepository) Append(ctx context.Context, entry gamelog.Entry) (gamelog.Entry, error) {
	query, args, err := qb.InsertModel("gamelog", gameLogTableModel{
		GameID:      entry.GameID,
		TeamID:      entry.TeamID,
		PlayerID:    entry.PlayerID,
		ActionType:  entry.ActionType,
		Action:      entry.Action,
		Description: entry.Description,
		GameClock:   entry.GameClock,
		LoggedAt:    entry.LoggedAt,
	}).Returning("id").ToSQL()
	if err != nil {
		return gamelog.Entry{}, fmt.Errorf("build insert gamelog query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		return gamelog.Entry{}, fmt.Errorf("insert gamelog: %w", err)
	}
	return entry, nil
}

// recentGameLogQuery orders by timestamp; ids break ties between entries
// logged in the same instant.
func recentGameLogQuery(gameID int64, limit int) (string, []any, error) {
	return qb.Select("*").From("gamelog").
		Where(qb.Eq("game_id", gameID)).
		OrderBy("logged_at DESC", "id DESC").
		Limit(limit).
		ToSQL()
}

func (r *GameLogRepository) ListRecentByGame(ctx context.Context, gameID int64, limit int) ([]gamelog.Entry, error) {
	query, args, err := recentGameLogQuery(gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("build select gamelog query: %w", err)
	}

	var rows []gameLogTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gamelog: %w", err)
	}

	out := make([]gamelog.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, gamelog.Entry{
			ID:          row.ID,
			GameID:      row.GameID,
			TeamID:      row.TeamID,
			PlayerID:    row.PlayerID,
			ActionType:  row.ActionType,
			Action:      row.Action,
			Description: row.Description,
			GameClock:   row.GameClock,
			LoggedAt:    row.LoggedAt,
		})
	}
	return out, nil
}
