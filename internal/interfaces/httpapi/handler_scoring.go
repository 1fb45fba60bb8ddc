package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

// Messages returned by the scorer table routes.
const (
	msgMissingFields     = "Missing required fields."
	msgNoSeason          = "No season found for the current league."
	msgNoSessionLeague   = "League not found in session."
	msgInvalidJSON       = "Invalid or missing JSON data."
	msgBoxScoreUpdated   = "BoxScore updated successfully."
	msgGameEnded         = "Game ended and scores updated."
	msgInternalServerErr = "An internal server error occurred."

	statusSuccess = "success"
	statusError   = "error"
)

type logActionRequest struct {
	GameID       flexibleID `json:"gameid"`
	TeamID       flexibleID `json:"teamid"`
	PlayerID     flexibleID `json:"playerid"`
	ActionType   string     `json:"actiontype"`
	Action       string     `json:"action"`
	ActionDesc   string     `json:"actiondesc"`
	CurrentTimer string     `json:"currenttimer"`
}

type updateBoxScoreRequest struct {
	GameID   flexibleID `json:"game_id"`
	TeamID   flexibleID `json:"team_id"`
	PlayerID flexibleID `json:"player_id"`
	Action   string     `json:"action"`
}

type endGameRequest struct {
	GameID flexibleID `json:"game_id"`
}

type refreshBoxScoresResponse struct {
	Team1HTML        string `json:"team1_html"`
	Team2HTML        string `json:"team2_html"`
	Team1TotalPoints int    `json:"team1_total_points"`
	Team2TotalPoints int    `json:"team2_total_points"`
}

// decodeScoringRequest is lenient about extra fields; the scorer table posts whole form state.
func decodeScoringRequest(r *http.Request, dst any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// writeScoringError maps err onto the flat {status, message} body.
func (h *Handler) writeScoringError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	mapped := classify(err)
	message := err.Error()
	switch {
	case errors.Is(err, usecase.ErrMissingScoringFields):
		message = msgMissingFields
	case errors.Is(err, usecase.ErrNoSeasonForLeague):
		message = msgNoSeason
	case mapped.HTTPStatus >= http.StatusInternalServerError:
		message = msgInternalServerErr
	}

	h.logFailure(ctx, msg, err)
	recordSpanError(ctx, err, mapped.HTTPStatus)
	writeStatus(w, mapped.HTTPStatus, statusResponse{Status: statusError, Message: message})
}

// LogAction appends one entry to the game ledger.
func (h *Handler) LogAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "LogAction")
	defer span.End()

	var req logActionRequest
	if err := decodeScoringRequest(r, &req); err != nil {
		h.logger.WarnContext(ctx, "log action rejected", "error", err)
		writeStatus(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: msgInvalidJSON})
		return
	}

	_, err := h.scoringService.LogAction(ctx, usecase.LogActionInput{
		GameID:      int64(req.GameID),
		TeamID:      int64(req.TeamID),
		PlayerID:    int64(req.PlayerID),
		ActionType:  req.ActionType,
		Action:      req.Action,
		Description: req.ActionDesc,
		GameClock:   req.CurrentTimer,
	})
	if err != nil {
		h.writeScoringError(ctx, w, "log action failed", err)
		return
	}

	writeStatus(w, http.StatusOK, statusResponse{Status: statusSuccess})
}

// UpdateBoxScore applies one action label to the player's box score row.
func (h *Handler) UpdateBoxScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateBoxScore")
	defer span.End()

	leagueID := sessionLeagueID(ctx)
	if leagueID <= 0 {
		writeStatus(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: msgNoSessionLeague})
		return
	}

	var req updateBoxScoreRequest
	if err := decodeScoringRequest(r, &req); err != nil {
		h.logger.WarnContext(ctx, "update box score rejected", "error", err)
		writeStatus(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: msgInvalidJSON})
		return
	}

	_, err := h.scoringService.UpdateBoxScore(ctx, usecase.UpdateBoxScoreInput{
		LeagueID: leagueID,
		GameID:   int64(req.GameID),
		TeamID:   int64(req.TeamID),
		PlayerID: int64(req.PlayerID),
		Action:   req.Action,
	})
	if err != nil {
		h.writeScoringError(ctx, w, "update box score failed", err)
		return
	}

	writeStatus(w, http.StatusOK, statusResponse{Status: statusSuccess, Message: msgBoxScoreUpdated})
}

// EndGame settles the game from its box score totals.
func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "EndGame")
	defer span.End()

	var req endGameRequest
	if err := decodeScoringRequest(r, &req); err != nil {
		h.logger.WarnContext(ctx, "end game rejected", "error", err)
		writeStatus(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: msgInvalidJSON})
		return
	}

	settled, err := h.gameService.EndGame(ctx, int64(req.GameID))
	if err != nil {
		h.writeScoringError(ctx, w, "end game failed", err)
		return
	}

	h.logger.InfoContext(ctx, "game settled",
		"game_id", settled.ID,
		"team1_score", settled.Team1Score,
		"team2_score", settled.Team2Score,
	)
	writeStatus(w, http.StatusOK, statusResponse{Status: statusSuccess, Message: msgGameEnded})
}

// RefreshBoxScores renders both team tables for live polling.
func (h *Handler) RefreshBoxScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "RefreshBoxScores")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		h.writeScoringError(ctx, w, "refresh box scores rejected", err)
		return
	}

	refresh, err := h.scoringService.RefreshBoxScores(ctx, gameID)
	if err != nil {
		h.writeScoringError(ctx, w, "refresh box scores failed", err)
		return
	}

	team1HTML, err := renderTeamBoxScore(refresh.Team1)
	if err != nil {
		h.writeScoringError(ctx, w, "render box score failed", err)
		return
	}
	team2HTML, err := renderTeamBoxScore(refresh.Team2)
	if err != nil {
		h.writeScoringError(ctx, w, "render box score failed", err)
		return
	}

	writeJSON(w, http.StatusOK, refreshBoxScoresResponse{
		Team1HTML:        team1HTML,
		Team2HTML:        team2HTML,
		Team1TotalPoints: refresh.Team1.Totals.Points,
		Team2TotalPoints: refresh.Team2.Totals.Points,
	})
}
