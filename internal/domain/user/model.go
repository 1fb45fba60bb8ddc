package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCaptain Role = "captain"
	RolePlayer  Role = "player"
)

func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return RolePlayer, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCaptain:
		return RoleCaptain, true
	case RolePlayer:
		return RolePlayer, true
	default:
		return "", false
	}
}

// User is an authenticated account. Only the password hash is stored.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if len(u.Username) > 150 {
		return fmt.Errorf("username must be at most 150 characters")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(u.Email)); err != nil {
		return fmt.Errorf("invalid email: %s", u.Email)
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	if _, ok := ParseRole(string(u.Role)); !ok {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	return nil
}
