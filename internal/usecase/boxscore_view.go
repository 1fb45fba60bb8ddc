package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
)

// TeamBoxScore is one side of a game's box score.
type TeamBoxScore struct {
	Team   team.Team
	Lines  []boxscore.Line
	Totals boxscore.Counters
}

func loadTeamBoxScore(ctx context.Context, teamRepo team.Repository, boxScoreRepo boxscore.Repository, gameID, teamID int64) (TeamBoxScore, error) {
	out := TeamBoxScore{Team: team.Team{ID: teamID}}

	item, exists, err := teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamBoxScore{}, fmt.Errorf("get team: %w", err)
	}
	if exists {
		out.Team = item
	}

	lines, err := boxScoreRepo.ListLinesByGameTeam(ctx, gameID, teamID)
	if err != nil {
		return TeamBoxScore{}, fmt.Errorf("list box score lines team=%d: %w", teamID, err)
	}
	out.Lines = lines
	out.Totals = boxscore.Totals(lines)

	return out, nil
}

func getGame(ctx context.Context, repo game.Repository, gameID int64) (game.Game, error) {
	if gameID <= 0 {
		return game.Game{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	return item, nil
}
