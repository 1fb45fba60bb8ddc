package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID            int64         `db:"id,auto"`
	LeagueID      sql.NullInt64 `db:"league_id"`
	Name          string        `db:"name"`
	Division      string        `db:"division"`
	Captain       string        `db:"captain"`
	ContactNumber string        `db:"contact_number"`
	ContactEmail  string        `db:"contact_email"`
	CreatedAt     time.Time     `db:"created_at,auto"`
	UpdatedAt     time.Time     `db:"updated_at,auto"`
	DeletedAt     *time.Time    `db:"deleted_at,auto"`
}
