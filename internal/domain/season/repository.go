package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	// ListByLeague returns seasons latest first.
	ListByLeague(ctx context.Context, leagueID int64) ([]Season, error)
	GetByID(ctx context.Context, seasonID int64) (Season, bool, error)
	GetLatestByLeague(ctx context.Context, leagueID int64) (Season, bool, error)
	Create(ctx context.Context, item Season) (Season, error)
}
