package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league into an empty database. Seed ids are
// remapped onto the generated ids.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insert := func(what, query string, arg map[string]any) (int64, error) {
		sqlQuery, args, err := sqlx.Named(query+" RETURNING id", arg)
		if err != nil {
			return 0, fmt.Errorf("bind seed %s query: %w", what, err)
		}
		var id int64
		if err := tx.QueryRowxContext(ctx, tx.Rebind(sqlQuery), args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("seed %s: %w", what, err)
		}
		return id, nil
	}

	seed := memory.DemoSeed()
	leagueIDs := make(map[int64]int64, len(seed.Leagues))
	seasonIDs := make(map[int64]int64, len(seed.Seasons))
	teamIDs := make(map[int64]int64, len(seed.Teams))

	for _, l := range seed.Leagues {
		id, err := insert("league "+l.Name, `INSERT INTO leagues (name, description) VALUES (:name, :description)`, map[string]any{
			"name":        l.Name,
			"description": l.Description,
		})
		if err != nil {
			return err
		}
		leagueIDs[l.ID] = id
	}

	for _, s := range seed.Seasons {
		id, err := insert("season "+s.Name, `INSERT INTO seasons (league_id, name, start_date, end_date) VALUES (:league_id, :name, :start_date, :end_date)`, map[string]any{
			"league_id":  leagueIDs[s.LeagueID],
			"name":       s.Name,
			"start_date": s.StartDate,
			"end_date":   s.EndDate,
		})
		if err != nil {
			return err
		}
		seasonIDs[s.ID] = id
	}

	for _, t := range seed.Teams {
		id, err := insert("team "+t.Name, `INSERT INTO teams (league_id, name, division, captain) VALUES (:league_id, :name, :division, :captain)`, map[string]any{
			"league_id": nullableID(leagueIDs[t.LeagueID]),
			"name":      t.Name,
			"division":  t.Division,
			"captain":   t.Captain,
		})
		if err != nil {
			return err
		}
		teamIDs[t.ID] = id
	}

	for _, p := range seed.Players {
		_, err := insert("player "+p.FullName(), `INSERT INTO players (team_id, first_name, last_name, jersey_number, position) VALUES (:team_id, :first_name, :last_name, :jersey_number, :position)`, map[string]any{
			"team_id":       nullableID(teamIDs[p.TeamID]),
			"first_name":    p.FirstName,
			"last_name":     p.LastName,
			"jersey_number": p.JerseyNumber,
			"position":      p.Position,
		})
		if err != nil {
			return err
		}
	}

	for _, g := range seed.Games {
		_, err := insert(fmt.Sprintf("game %d", g.ID), `INSERT INTO games (date, team1_id, team2_id, status, league_id, season_id) VALUES (:date, :team1_id, :team2_id, :status, :league_id, :season_id)`, map[string]any{
			"date":      g.Date,
			"team1_id":  teamIDs[g.Team1ID],
			"team2_id":  teamIDs[g.Team2ID],
			"status":    string(g.Status),
			"league_id": leagueIDs[g.LeagueID],
			"season_id": seasonIDs[g.SeasonID],
		})
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
