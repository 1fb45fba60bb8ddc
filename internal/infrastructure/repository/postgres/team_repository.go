package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("league_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	return insertTeam(ctx, r.db, item)
}

func (r *TeamRepository) CreateWithRoster(ctx context.Context, item team.Team, roster []player.Player) (team.Team, []player.Player, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, nil, fmt.Errorf("begin tx create team with roster: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	created, err := insertTeam(ctx, tx, item)
	if err != nil {
		return team.Team{}, nil, err
	}

	players := make([]player.Player, 0, len(roster))
	for _, p := range roster {
		p.TeamID = created.ID
		inserted, err := insertPlayer(ctx, tx, p)
		if err != nil {
			return team.Team{}, nil, err
		}
		players = append(players, inserted)
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, nil, fmt.Errorf("commit create team with roster tx: %w", err)
	}
	return created, players, nil
}

func insertTeam(ctx context.Context, q sqlx.QueryerContext, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamTableModel{
		LeagueID:      nullableID(item.LeagueID),
		Name:          item.Name,
		Division:      item.Division,
		Captain:       item.Captain,
		ContactNumber: item.ContactNumber,
		ContactEmail:  item.ContactEmail,
	}).Returning("id").ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := q.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return item, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.ID,
		LeagueID:      idFromNull(row.LeagueID),
		Name:          row.Name,
		Division:      row.Division,
		Captain:       row.Captain,
		ContactNumber: row.ContactNumber,
		ContactEmail:  row.ContactEmail,
	}
}
