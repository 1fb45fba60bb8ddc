package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
)

type PlayerInput struct {
	TeamID          int64
	FirstName       string
	LastName        string
	JerseyNumber    int
	Age             *int
	PhoneNumber     string
	Email           string
	Position        string
	Weight          *float64
	Height          *float64
	CountryOfOrigin string
}

func (in PlayerInput) toPlayer() player.Player {
	return player.Player{
		TeamID:          in.TeamID,
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		JerseyNumber:    in.JerseyNumber,
		Age:             in.Age,
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		Email:           strings.TrimSpace(in.Email),
		Position:        strings.TrimSpace(in.Position),
		Weight:          in.Weight,
		Height:          in.Height,
		CountryOfOrigin: strings.TrimSpace(in.CountryOfOrigin),
	}
}

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	return s.getPlayer(ctx, playerID)
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item := input.toPlayer()
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureTeam(ctx, item.TeamID); err != nil {
		return player.Player{}, err
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// UpdatePlayer replaces the editable fields. The jersey number is kept when
// the input leaves it at zero.
func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID int64, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	current, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	item := input.toPlayer()
	item.ID = current.ID
	if item.JerseyNumber == 0 {
		item.JerseyNumber = current.JerseyNumber
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureTeam(ctx, item.TeamID); err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) getPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) ensureTeam(ctx context.Context, teamID int64) error {
	if teamID == 0 {
		return nil
	}
	if teamID < 0 {
		return fmt.Errorf("%w: invalid team id %d", ErrInvalidInput, teamID)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return nil
}
