package postgres

import (
	"database/sql"
	"time"
)

type gameTableModel struct {
	ID           int64         `db:"id,auto"`
	Date         time.Time     `db:"date"`
	Team1ID      int64         `db:"team1_id"`
	Team2ID      int64         `db:"team2_id"`
	Team1Score   int           `db:"team1_score"`
	Team2Score   int           `db:"team2_score"`
	WinnerTeamID sql.NullInt64 `db:"winner_team_id"`
	Status       string        `db:"status"`
	LeagueID     int64         `db:"league_id"`
	SeasonID     int64         `db:"season_id"`
	CreatedAt    time.Time     `db:"created_at,auto"`
	UpdatedAt    time.Time     `db:"updated_at,auto"`
	DeletedAt    *time.Time    `db:"deleted_at,auto"`
}

type gameLogTableModel struct {
	ID          int64     `db:"id,auto"`
	GameID      int64     `db:"game_id"`
	TeamID      int64     `db:"team_id"`
	PlayerID    int64     `db:"player_id"`
	ActionType  string    `db:"action_type"`
	Action      string    `db:"action"`
	Description string    `db:"description"`
	GameClock   string    `db:"game_clock"`
	LoggedAt    time.Time `db:"logged_at"`
}
