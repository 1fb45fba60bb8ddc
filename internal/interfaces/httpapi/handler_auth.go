package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/hoops-league/internal/platform/session"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type registerRequest struct {
	Username        string `json:"username" validate:"required,max=64"`
	Email           string `json:"email" validate:"required,email,max=120"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Role            string `json:"role" validate:"omitempty,oneof=admin captain player"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.authService.Register(ctx, usecase.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		h.logFailure(ctx, "register failed", err, "username", req.Username)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, userToDTO(created))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		h.logFailure(ctx, "login failed", err, "username", req.Username)
		writeError(ctx, w, err)
		return
	}

	claims, err := h.sessions.Issue(w, session.Claims{
		UserID:   item.ID,
		Username: item.Username,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "issue session failed", "user_id", item.ID, "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeSuccess(w, http.StatusOK, sessionDTO{
		User:      userToDTO(item),
		ExpiresAt: time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r, "Logout")
	defer span.End()

	h.sessions.Clear(w)
	writeSuccess(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetSession")
	defer span.End()

	claims, err := currentSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.authService.GetUser(ctx, claims.UserID)
	if err != nil {
		h.logFailure(ctx, "get session user failed", err, "user_id", claims.UserID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, sessionDTO{
		User:             userToDTO(item),
		SelectedLeagueID: claims.SelectedLeagueID,
		ExpiresAt:        time.Unix(claims.ExpiresAt, 0).UTC().Format(time.RFC3339),
	})
}
