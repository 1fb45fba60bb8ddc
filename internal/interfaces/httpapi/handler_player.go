package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type playerRequest struct {
	TeamID          int64    `json:"team_id" validate:"required,gt=0"`
	FirstName       string   `json:"first_name" validate:"required,max=50"`
	LastName        string   `json:"last_name" validate:"required,max=50"`
	JerseyNumber    int      `json:"jersey_number" validate:"gte=0,lte=99"`
	Age             *int     `json:"age" validate:"omitempty,gte=0,lte=120"`
	PhoneNumber     string   `json:"phone_number" validate:"omitempty,max=20"`
	Email           string   `json:"email" validate:"omitempty,email,max=120"`
	Position        string   `json:"position" validate:"omitempty,max=20"`
	Weight          *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height          *float64 `json:"height" validate:"omitempty,gt=0"`
	CountryOfOrigin string   `json:"country_of_origin" validate:"omitempty,max=50"`
}

func (req playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		TeamID:          req.TeamID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		JerseyNumber:    req.JerseyNumber,
		Age:             req.Age,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Position:        req.Position,
		Weight:          req.Weight,
		Height:          req.Height,
		CountryOfOrigin: req.CountryOfOrigin,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPlayers")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logFailure(ctx, "get player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.CreatePlayer(ctx, req.toInput())
	if err != nil {
		h.logFailure(ctx, "create player failed", err, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req playerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.UpdatePlayer(ctx, playerID, req.toInput())
	if err != nil {
		h.logFailure(ctx, "update player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, playerToDTO(updated))
}
