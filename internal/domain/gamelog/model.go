package gamelog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry is one immutable ledger row recorded during a game.
// Ids are bare integers with no referential guarantees.
type Entry struct {
	ID          int64
	GameID      int64
	TeamID      int64
	PlayerID    int64
	ActionType  string
	Action      string
	Description string
	GameClock   string
	LoggedAt    time.Time
}

func (e Entry) Validate() error {
	if e.GameID <= 0 {
		return fmt.Errorf("game id is required")
	}
	if strings.TrimSpace(e.Action) == "" {
		return fmt.Errorf("action is required")
	}

	return nil
}

// clockFieldMax bounds hours, minutes and seconds; the stored clock is
// at most eight characters.
var clockFieldMax = [3]int{99, 59, 59}

// NormalizeClock accepts "MM:SS" or "HH:MM:SS" and returns "HH:MM:SS".
// Empty input returns an empty clock.
func NormalizeClock(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	parts := strings.Split(value, ":")
	if len(parts) == 2 {
		parts = append([]string{"0"}, parts...)
	}
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid game clock %q", value)
	}

	out := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid game clock %q", value)
		}
		if n > clockFieldMax[i] {
			return "", fmt.Errorf("invalid game clock %q", value)
		}
		out[i] = n
	}

	return fmt.Sprintf("%02d:%02d:%02d", out[0], out[1], out[2]), nil
}
