package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hoops-league/internal/domain/user"
	qb "github.com/riskibarqy/hoops-league/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	query, args, err := qb.InsertModel("users", userTableModel{
		Username:     item.Username,
		Email:        item.Email,
		PasswordHash: item.PasswordHash,
		Role:         string(item.Role),
		CreatedAt:    item.CreatedAt,
	}).Returning("id").ToSQL()
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrDuplicate
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return item, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (user.User, bool, error) {
	return r.getOne(ctx, "get user by id", qb.Eq("id", userID))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by username", qb.Eq("username", username))
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "check username", qb.Eq("username", username))
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "check email", qb.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *UserRepository) getOne(ctx context.Context, op string, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(cond, qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         user.Role(row.Role),
		CreatedAt:    row.CreatedAt,
	}, true, nil
}

func (r *UserRepository) exists(ctx context.Context, op string, cond qb.Condition) (bool, error) {
	query, args, err := qb.Select("1").From("users").
		Where(cond, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build %s query: %w", op, err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}
