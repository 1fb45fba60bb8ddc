package postgres

import "time"

type userTableModel struct {
	ID           int64      `db:"id,auto"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at,auto"`
	DeletedAt    *time.Time `db:"deleted_at,auto"`
}
