package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, "select players", qb.IsNull("deleted_at"))
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	return r.list(ctx, "select players by team", qb.Eq("team_id", teamID), qb.IsNull("deleted_at"))
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("id", playerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	return insertPlayer(ctx, r.db, item)
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("team_id", nullableID(item.TeamID)).
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("jersey_number", item.JerseyNumber).
		Set("age", nullableInt(item.Age)).
		Set("phone_number", item.PhoneNumber).
		Set("email", item.Email).
		Set("position", item.Position).
		Set("weight", nullableFloat(item.Weight)).
		Set("height", nullableFloat(item.Height)).
		Set("country_of_origin", item.CountryOfOrigin).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update player %d: no rows affected", item.ID)
	}
	return nil
}

func (r *PlayerRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func insertPlayer(ctx context.Context, q sqlx.QueryerContext, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerTableModel{
		TeamID:          nullableID(item.TeamID),
		FirstName:       item.FirstName,
		LastName:        item.LastName,
		JerseyNumber:    item.JerseyNumber,
		Age:             nullableInt(item.Age),
		PhoneNumber:     item.PhoneNumber,
		Email:           item.Email,
		Position:        item.Position,
		Weight:          nullableFloat(item.Weight),
		Height:          nullableFloat(item.Height),
		CountryOfOrigin: item.CountryOfOrigin,
	}).Returning("id").ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := q.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return item, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:              row.ID,
		TeamID:          idFromNull(row.TeamID),
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		JerseyNumber:    row.JerseyNumber,
		Age:             intFromNull(row.Age),
		PhoneNumber:     row.PhoneNumber,
		Email:           row.Email,
		Position:        row.Position,
		Weight:          floatFromNull(row.Weight),
		Height:          floatFromNull(row.Height),
		CountryOfOrigin: row.CountryOfOrigin,
	}
}
