package league

import (
	"context"
	"errors"
)

// ErrDuplicateName is returned by Create when another league already uses the name.
var ErrDuplicateName = errors.New("league name already exists")

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	GetByName(ctx context.Context, name string) (League, bool, error)
	Create(ctx context.Context, item League) (League, error)
}
