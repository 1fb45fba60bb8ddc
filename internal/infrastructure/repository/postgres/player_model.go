package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID              int64           `db:"id,auto"`
	TeamID          sql.NullInt64   `db:"team_id"`
	FirstName       string          `db:"first_name"`
	LastName        string          `db:"last_name"`
	JerseyNumber    int             `db:"jersey_number"`
	Age             sql.NullInt32   `db:"age"`
	PhoneNumber     string          `db:"phone_number"`
	Email           string          `db:"email"`
	Position        string          `db:"position"`
	Weight          sql.NullFloat64 `db:"weight"`
	Height          sql.NullFloat64 `db:"height"`
	CountryOfOrigin string          `db:"country_of_origin"`
	CreatedAt       time.Time       `db:"created_at,auto"`
	UpdatedAt       time.Time       `db:"updated_at,auto"`
	DeletedAt       *time.Time      `db:"deleted_at,auto"`
}
