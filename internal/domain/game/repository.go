package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Game) (Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	// Start moves a game to Ongoing and updates its date.
	Start(ctx context.Context, item Game) error
	// ListBySeason returns games of the league season ordered by date descending.
	ListBySeason(ctx context.Context, leagueID, seasonID int64) ([]Game, error)
	ListByLeague(ctx context.Context, leagueID int64) ([]Game, error)
	// Settle locks the game, sums its box score points per side and stores
	// the result of Game.Settle.
	Settle(ctx context.Context, gameID int64) (Game, bool, error)
}
