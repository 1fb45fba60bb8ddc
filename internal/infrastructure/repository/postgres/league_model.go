package postgres

import "time"

type leagueTableModel struct {
	ID          int64      `db:"id,auto"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at,auto"`
	UpdatedAt   time.Time  `db:"updated_at,auto"`
	DeletedAt   *time.Time `db:"deleted_at,auto"`
}

type seasonTableModel struct {
	ID        int64      `db:"id,auto"`
	LeagueID  int64      `db:"league_id"`
	Name      string     `db:"name"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	CreatedAt time.Time  `db:"created_at,auto"`
	UpdatedAt time.Time  `db:"updated_at,auto"`
	DeletedAt *time.Time `db:"deleted_at,auto"`
}
