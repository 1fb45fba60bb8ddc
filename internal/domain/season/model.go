package season

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Season is a dated period of play inside one league.
type Season struct {
	ID        int64
	LeagueID  int64
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}

func (s Season) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return fmt.Errorf("season end date must not be before start date")
	}

	return nil
}

// SortLatestFirst orders by start date descending, undated seasons last,
// then by id descending.
func SortLatestFirst(items []Season) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.StartDate == nil && b.StartDate == nil:
			return a.ID > b.ID
		case a.StartDate == nil:
			return false
		case b.StartDate == nil:
			return true
		case !a.StartDate.Equal(*b.StartDate):
			return a.StartDate.After(*b.StartDate)
		default:
			return a.ID > b.ID
		}
	})
}
