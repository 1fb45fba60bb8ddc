package httpapi

import (
	"net/http"

	"github.com/riskibarqy/hoops-league/internal/platform/logging"
	"github.com/riskibarqy/hoops-league/internal/platform/metrics"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	// MetricsHandler is mounted on GET /metrics when set.
	MetricsHandler http.Handler
	Metrics        metrics.Metrics
}

func NewRouter(handler *Handler, sessions *SessionManager, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.MetricsHandler)
	registerAuthRoutes(mux, handler, sessions)
	registerLeagueRoutes(mux, handler, sessions)
	registerLeagueScopedRoutes(mux, handler, sessions)
	registerPlayerRoutes(mux, handler, sessions)
	registerScoringRoutes(mux, handler, sessions)

	return RequestTracing(RequestLogging(logger, cfg.Metrics, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, recordRoute(mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// recordRoute reports the matched mux pattern to RequestLogging.
func recordRoute(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if holder, ok := routeHolderFromContext(r.Context()); ok {
			_, *holder = mux.Handler(r)
		}
		mux.ServeHTTP(w, r)
	})
}
