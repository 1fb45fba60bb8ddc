package boxscore

import "context"

// Repository describes box score persistence needs from use cases.
type Repository interface {
	// Increment creates the row for seed.Key when missing, seeded with the
	// league, season and date of seed, then adds delta in the same write.
	Increment(ctx context.Context, seed BoxScore, delta Counters) (BoxScore, error)
	GetByKey(ctx context.Context, key Key) (BoxScore, bool, error)
	// ListLinesByGameTeam returns lines ordered by jersey number then player id.
	ListLinesByGameTeam(ctx context.Context, gameID, teamID int64) ([]Line, error)
	TeamTotals(ctx context.Context, gameID, teamID int64) (Counters, error)
	TopScorers(ctx context.Context, leagueID, seasonID int64, limit int) ([]Leader, error)
	GameLeader(ctx context.Context, gameID int64) (Leader, bool, error)
	PlayerSeasonTotals(ctx context.Context, seasonID, teamID int64) ([]PlayerSeason, error)
}
