package team

import (
	"fmt"
	"strings"
)

// Team is a club that plays games inside a league.
// LeagueID is zero when the team is not attached to a league.
type Team struct {
	ID            int64
	LeagueID      int64
	Name          string
	Division      string
	Captain       string
	ContactNumber string
	ContactEmail  string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Name) > 100 {
		return fmt.Errorf("team name must be at most 100 characters")
	}

	return nil
}
