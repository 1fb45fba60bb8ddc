package user

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when the username or email is taken.
var ErrDuplicate = errors.New("username or email already taken")

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item User) (User, error)
	GetByID(ctx context.Context, userID int64) (User, bool, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
