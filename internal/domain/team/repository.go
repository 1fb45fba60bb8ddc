package team

import (
	"context"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
)

// Repository describes team persistence needs from use cases.
type Repository interface {
	// ListByLeague returns teams ordered by id.
	ListByLeague(ctx context.Context, leagueID int64) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	// CreateWithRoster stores the team and its players atomically.
	CreateWithRoster(ctx context.Context, item Team, roster []player.Player) (Team, []player.Player, error)
}
