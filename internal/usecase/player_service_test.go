package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
)

func TestPlayerService_CreateAndUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore(memory.DemoSeed())
	service := NewPlayerService(store.Players(), store.Teams())

	created, err := service.CreatePlayer(ctx, PlayerInput{
		TeamID:       memory.TeamIDComets,
		FirstName:    " Kai ",
		LastName:     "Novak",
		JerseyNumber: 21,
		Email:        "kai@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Kai", created.FirstName)

	updated, err := service.UpdatePlayer(ctx, created.ID, PlayerInput{
		TeamID:    memory.TeamIDHawks,
		FirstName: "Kai",
		LastName:  "Novak",
		Position:  "SG",
	})
	require.NoError(t, err)
	require.Equal(t, 21, updated.JerseyNumber, "zero jersey keeps the stored number")
	require.Equal(t, memory.TeamIDHawks, updated.TeamID)

	got, err := service.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "SG", got.Position)

	all, err := service.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 10)
}

func TestPlayerService_Rejections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.NewStore(memory.DemoSeed())
	service := NewPlayerService(store.Players(), store.Teams())

	_, err := service.CreatePlayer(ctx, PlayerInput{FirstName: "No", JerseyNumber: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.CreatePlayer(ctx, PlayerInput{TeamID: 99, FirstName: "No", LastName: "Team"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.CreatePlayer(ctx, PlayerInput{FirstName: "Bad", LastName: "Mail", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.UpdatePlayer(ctx, 404, PlayerInput{FirstName: "A", LastName: "B"})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetPlayer(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}
