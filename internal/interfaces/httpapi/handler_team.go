package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type createTeamRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Division      string `json:"division" validate:"omitempty,max=50"`
	Captain       string `json:"captain" validate:"omitempty,max=100"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=20"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email,max=120"`
}

type quickUploadPlayerRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JerseyNumber *int   `json:"jersey_number"`
}

type quickUploadRequest struct {
	TeamName string                     `json:"team_name" validate:"required,max=100"`
	Players  []quickUploadPlayerRequest `json:"players" validate:"max=10"`
}

type quickUploadResponse struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
}

// ListTeams returns the selected league's teams with their current records.
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	leagueID := sessionLeagueID(ctx)
	standings, err := h.teamService.ListTeamsWithRecords(ctx, leagueID)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamStandingsToDTO(standings))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := sessionLeagueID(ctx)
	created, err := h.teamService.CreateTeam(ctx, usecase.CreateTeamInput{
		LeagueID:      leagueID,
		Name:          req.Name,
		Division:      req.Division,
		Captain:       req.Captain,
		ContactNumber: req.ContactNumber,
		ContactEmail:  req.ContactEmail,
	})
	if err != nil {
		h.logFailure(ctx, "create team failed", err, "league_id", leagueID, "name", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, teamToDTO(created))
}

// QuickUpload creates a team and its roster in one step.
func (h *Handler) QuickUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "QuickUpload")
	defer span.End()

	var req quickUploadRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	roster := make([]usecase.QuickUploadPlayer, 0, len(req.Players))
	for _, item := range req.Players {
		roster = append(roster, usecase.QuickUploadPlayer{
			FirstName:    item.FirstName,
			LastName:     item.LastName,
			JerseyNumber: item.JerseyNumber,
		})
	}

	leagueID := sessionLeagueID(ctx)
	created, players, err := h.teamService.QuickUpload(ctx, usecase.QuickUploadInput{
		LeagueID: leagueID,
		TeamName: req.TeamName,
		Players:  roster,
	})
	if err != nil {
		h.logFailure(ctx, "quick upload failed", err, "league_id", leagueID, "team_name", req.TeamName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, quickUploadResponse{
		Team:    teamToDTO(created),
		Players: playersToDTO(players),
	})
}

func (h *Handler) GetTeamDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamDetails")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := sessionLeagueID(ctx)
	details, err := h.teamService.GetTeamDetails(ctx, leagueID, teamID)
	if err != nil {
		h.logFailure(ctx, "get team details failed", err, "league_id", leagueID, "team_id", teamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamDetailsToDTO(details))
}
