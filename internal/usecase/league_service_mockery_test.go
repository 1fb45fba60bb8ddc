package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	leaguemock "github.com/riskibarqy/hoops-league/internal/mocks/domain/league"
)

func TestLeagueService_ListLeagues_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, memory.NewStore(memory.Seed{}).Seasons())

	expected := []league.League{
		{ID: 1, Name: "Downtown Rec League"},
		{ID: 2, Name: "Sunday Pickup"},
	}
	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(expected, nil).
		Once()

	got, err := service.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(expected))
	}
	if got[1].Name != "Sunday Pickup" {
		t.Fatalf("unexpected league name: got=%s", got[1].Name)
	}
}

func TestLeagueService_SelectLeague_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, memory.NewStore(memory.Seed{}).Seasons())

	leagueRepo.
		On("GetByID", mock.Anything, int64(404)).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.SelectLeague(ctx, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := service.SelectLeague(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}
}

func TestLeagueService_CreateLeague_DuplicateNameUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, memory.NewStore(memory.Seed{}).Seasons())

	leagueRepo.
		On("GetByName", mock.Anything, "Downtown Rec League").
		Return(league.League{ID: 1, Name: "Downtown Rec League"}, true, nil).
		Once()

	_, err := service.CreateLeague(ctx, CreateLeagueInput{Name: "  Downtown Rec League "})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	leagueRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeagueService_CreateLeague_RaceLostUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo, memory.NewStore(memory.Seed{}).Seasons())

	leagueRepo.
		On("GetByName", mock.Anything, "Night Owls").
		Return(league.League{}, false, nil).
		Once()
	leagueRepo.
		On("Create", mock.Anything, league.League{Name: "Night Owls"}).
		Return(league.League{}, league.ErrDuplicateName).
		Once()

	_, err := service.CreateLeague(ctx, CreateLeagueInput{Name: "Night Owls"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLeagueService_Seasons(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore(memory.DemoSeed())
	service := NewLeagueService(store.Leagues(), store.Seasons())

	created, err := service.CreateSeason(ctx, CreateSeasonInput{LeagueID: memory.LeagueIDDowntown, Name: "Fall 2026"})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned season id")
	}

	seasons, err := service.ListSeasons(ctx, memory.LeagueIDDowntown)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("unexpected season count: got=%d want=2", len(seasons))
	}

	if _, err := service.CreateSeason(ctx, CreateSeasonInput{LeagueID: 404, Name: "Ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.ListSeasons(ctx, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
