package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	return r.getOne(ctx, "get league by id", qb.Eq("id", leagueID))
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	return r.getOne(ctx, "get league by name", qb.Expr("LOWER(name) = LOWER(?)", strings.TrimSpace(name)))
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) (league.League, error) {
	query, args, err := qb.InsertModel("leagues", leagueTableModel{
		Name:        item.Name,
		Description: item.Description,
	}).Returning("id").ToSQL()
	if err != nil {
		return league.League{}, fmt.Errorf("build insert league query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		if isUniqueViolation(err) {
			return league.League{}, league.ErrDuplicateName
		}
		return league.League{}, fmt.Errorf("insert league: %w", err)
	}

	return item, nil
}

func (r *LeagueRepository) getOne(ctx context.Context, op string, cond qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(cond, qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return leagueFromRow(row), true, nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
	}
}
