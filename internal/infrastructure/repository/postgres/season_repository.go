package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func seasonsByLeagueLatestFirst(leagueID int64) *qb.SelectBuilder {
	return qb.Select("*").From("seasons").
		Where(
			qb.Eq("league_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("start_date DESC NULLS LAST", "id DESC")
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueID int64) ([]season.Season, error) {
	query, args, err := seasonsByLeagueLatestFirst(leagueID).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons by league query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons by league: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}
	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) GetLatestByLeague(ctx context.Context, leagueID int64) (season.Season, bool, error) {
	query, args, err := seasonsByLeagueLatestFirst(leagueID).Limit(1).ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get latest season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get latest season: %w", err)
	}
	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	query, args, err := qb.InsertModel("seasons", seasonTableModel{
		LeagueID:  item.LeagueID,
		Name:      item.Name,
		StartDate: item.StartDate,
		EndDate:   item.EndDate,
	}).Returning("id").ToSQL()
	if err != nil {
		return season.Season{}, fmt.Errorf("build insert season query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return season.Season{}, fmt.Errorf("insert season: %w", err)
	}
	return item, nil
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.ID,
		LeagueID:  row.LeagueID,
		Name:      row.Name,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
	}
}
