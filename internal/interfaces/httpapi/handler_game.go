package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type scheduleGameRequest struct {
	SeasonID int64  `json:"season_id" validate:"required,gt=0"`
	Team1ID  int64  `json:"team1_id" validate:"required,gt=0"`
	Team2ID  int64  `json:"team2_id" validate:"required,gt=0,nefield=Team1ID"`
	Date     string `json:"date" validate:"required"`
}

// startGameRequest either names a scheduled game or describes a new one.
type startGameRequest struct {
	ScheduledGameID int64  `json:"scheduled_game_id" validate:"omitempty,gt=0"`
	SeasonID        int64  `json:"season_id" validate:"required_without=ScheduledGameID"`
	Team1ID         int64  `json:"team1_id" validate:"required_without=ScheduledGameID"`
	Team2ID         int64  `json:"team2_id" validate:"required_without=ScheduledGameID"`
	Date            string `json:"date"`
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListGames")
	defer span.End()

	leagueID := sessionLeagueID(ctx)
	games, err := h.gameService.ListGames(ctx, leagueID)
	if err != nil {
		h.logFailure(ctx, "list games failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, gamesByStatusDTO{
		Scheduled: gamesToDTO(games.Scheduled),
		Ongoing:   gamesToDTO(games.Ongoing),
		Played:    gamesToDTO(games.Played),
	})
}

func (h *Handler) ScheduleGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ScheduleGame")
	defer span.End()

	var req scheduleGameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := sessionLeagueID(ctx)
	created, err := h.gameService.ScheduleGame(ctx, usecase.ScheduleGameInput{
		LeagueID: leagueID,
		SeasonID: req.SeasonID,
		Team1ID:  req.Team1ID,
		Team2ID:  req.Team2ID,
		Date:     date,
	})
	if err != nil {
		h.logFailure(ctx, "schedule game failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, gameToDTO(created))
}

// StartGame promotes a scheduled game to ongoing, or creates an ongoing game
// dated today when no date is given.
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "StartGame")
	defer span.End()

	var req startGameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate("date", req.Date)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		date = parsed
	} else if req.ScheduledGameID == 0 {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	leagueID := sessionLeagueID(ctx)
	started, err := h.gameService.StartGame(ctx, usecase.StartGameInput{
		LeagueID:        leagueID,
		ScheduledGameID: req.ScheduledGameID,
		SeasonID:        req.SeasonID,
		Team1ID:         req.Team1ID,
		Team2ID:         req.Team2ID,
		Date:            date,
	})
	if err != nil {
		h.logFailure(ctx, "start game failed", err, "league_id", leagueID, "scheduled_game_id", req.ScheduledGameID)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if req.ScheduledGameID == 0 {
		status = http.StatusCreated
	}
	writeSuccess(w, status, gameToDTO(started))
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.gameService.GetGameDetails(ctx, gameID)
	if err != nil {
		h.logFailure(ctx, "get game failed", err, "game_id", gameID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, gameDetailsDTO{
		Game:         gameToDTO(details.Game),
		Team1:        teamBoxScoreToDTO(details.Team1),
		Team2:        teamBoxScoreToDTO(details.Team2),
		Team1Players: playersToDTO(details.Team1Players),
		Team2Players: playersToDTO(details.Team2Players),
		Logs:         gameLogsToDTO(details.Logs),
	})
}

func (h *Handler) GetGameSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetGameSummary")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.gameService.GetGameSummary(ctx, gameID)
	if err != nil {
		h.logFailure(ctx, "get game summary failed", err, "game_id", gameID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, gameDetailsDTO{
		Game:  gameToDTO(summary.Game),
		Team1: teamBoxScoreToDTO(summary.Team1),
		Team2: teamBoxScoreToDTO(summary.Team2),
		Logs:  gameLogsToDTO(summary.Logs),
	})
}
