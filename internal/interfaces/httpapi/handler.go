package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
	"github.com/riskibarqy/hoops-league/internal/platform/session"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type Handler struct {
	authService      *usecase.AuthService
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	gameService      *usecase.GameService
	scoringService   *usecase.ScoringService
	dashboardService *usecase.DashboardService
	sessions         *SessionManager
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	gameService *usecase.GameService,
	scoringService *usecase.ScoringService,
	dashboardService *usecase.DashboardService,
	sessions *SessionManager,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:      authService,
		leagueService:    leagueService,
		teamService:      teamService,
		playerService:    playerService,
		gameService:      gameService,
		scoringService:   scoringService,
		dashboardService: dashboardService,
		sessions:         sessions,
		logger:           logger,
		validator:        validator.New(),
	}
}

// Healthz is excluded from tracing.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a strict JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// logFailure logs client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if classify(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

func sessionLeagueID(ctx context.Context) int64 {
	claims, ok := sessionFromContext(ctx)
	if !ok {
		return 0
	}
	return claims.SelectedLeagueID
}

func currentSession(ctx context.Context) (session.Claims, error) {
	claims, ok := sessionFromContext(ctx)
	if !ok {
		return session.Claims{}, fmt.Errorf("%w: session is missing from request context", usecase.ErrUnauthorized)
	}
	return claims, nil
}

func pathID(r *http.Request, name string) (int64, error) {
	return parseID(name, r.PathValue(name))
}

// queryID returns 0 when the parameter is absent.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	return parseID(name, raw)
}

func parseID(name, raw string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
