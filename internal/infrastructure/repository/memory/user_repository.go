package memory

import (
	"context"
	"strings"

	"github.com/riskibarqy/hoops-league/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Username == item.Username || strings.EqualFold(existing.Email, item.Email) {
			return user.User{}, user.ErrDuplicate
		}
	}

	r.store.nextUserID++
	item.ID = r.store.nextUserID
	r.store.users[item.ID] = item
	return item, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.users[userID]
	return item, ok, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if item.Username == username {
			return item, true, nil
		}
	}
	return user.User{}, false, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok, err := r.GetByUsername(ctx, username)
	return ok, err
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if strings.EqualFold(item.Email, email) {
			return true, nil
		}
	}
	return false, nil
}
