package league

import (
	"fmt"
	"strings"
)

// League is the top level grouping for seasons, teams and games.
type League struct {
	ID          int64
	Name        string
	Description string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if len(l.Name) > 100 {
		return fmt.Errorf("league name must be at most 100 characters")
	}

	return nil
}
