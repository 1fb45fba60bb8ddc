package gamelog

import "context"

// Repository is append-only; entries are never updated or deleted.
type Repository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)
	// ListRecentByGame returns up to limit entries, newest first.
	ListRecentByGame(ctx context.Context, gameID int64, limit int) ([]Entry, error)
}
