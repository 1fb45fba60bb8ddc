package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type createLeagueRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type createSeasonRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, leagueToDTO(item))
	}

	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateLeague(ctx, usecase.CreateLeagueInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logFailure(ctx, "create league failed", err, "name", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, leagueToDTO(created))
}

// SelectLeague stores the league in the session cookie.
func (h *Handler) SelectLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SelectLeague")
	defer span.End()

	claims, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	selected, err := h.leagueService.SelectLeague(ctx, leagueID)
	if err != nil {
		h.logFailure(ctx, "select league failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	claims.SelectedLeagueID = selected.ID
	claims.ExpiresAt = 0
	if _, err := h.sessions.Issue(w, claims); err != nil {
		h.logger.ErrorContext(ctx, "reissue session failed", "league_id", leagueID, "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeSuccess(w, http.StatusOK, leagueToDTO(selected))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListSeasons")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.leagueService.ListSeasons(ctx, leagueID)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, seasonsToDTO(seasons))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateSeason")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req createSeasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	startDate, err := parseOptionalDate("start_date", req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endDate, err := parseOptionalDate("end_date", req.EndDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.CreateSeason(ctx, usecase.CreateSeasonInput{
		LeagueID:  leagueID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		h.logFailure(ctx, "create season failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, seasonToDTO(created))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetDashboard")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID, err := queryID(r, "season_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.dashboardService.Get(ctx, leagueID, seasonID)
	if err != nil {
		h.logFailure(ctx, "get dashboard failed", err, "league_id", leagueID, "season_id", seasonID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, dashboardToDTO(dashboard))
}
