package player

import (
	"fmt"
	"net/mail"
	"strings"
)

// Player is a rostered athlete. TeamID is zero for free agents.
type Player struct {
	ID              int64
	TeamID          int64
	FirstName       string
	LastName        string
	JerseyNumber    int
	Age             *int
	PhoneNumber     string
	Email           string
	Position        string
	Weight          *float64
	Height          *float64
	CountryOfOrigin string
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("player jersey number must not be negative")
	}
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("player age must not be negative")
	}
	if email := strings.TrimSpace(p.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("invalid player email: %s", email)
		}
	}

	return nil
}
