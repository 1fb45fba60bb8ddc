package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/user"
	"github.com/riskibarqy/hoops-league/internal/platform/password"
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

type AuthService struct {
	userRepo user.Repository
	hasher   password.Hasher
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, hasher password.Hasher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if username == "" || email == "" || input.Password == "" {
		return user.User{}, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}
	if input.Password != input.ConfirmPassword {
		return user.User{}, fmt.Errorf("%w: passwords must match", ErrInvalidInput)
	}
	role, ok := user.ParseRole(input.Role)
	if !ok {
		return user.User{}, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, input.Role)
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return user.User{}, fmt.Errorf("%w: username is already taken", ErrConflict)
	}
	taken, err = s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return user.User{}, fmt.Errorf("%w: email is already registered", ErrConflict)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item := user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.userRepo.Create(ctx, item)
	if errors.Is(err, user.ErrDuplicate) {
		return user.User{}, fmt.Errorf("%w: username or email already taken", ErrConflict)
	}
	if err != nil {
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// Authenticate does not reveal whether the username or the password was wrong.
func (s *AuthService) Authenticate(ctx context.Context, username, plain string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || plain == "" {
		return user.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists || !s.hasher.Verify(item.PasswordHash, plain) {
		return user.User{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	return item, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID int64) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.GetUser")
	defer span.End()

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	return item, nil
}
