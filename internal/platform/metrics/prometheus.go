package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskibarqy/hoops-league/internal/platform/cache"
)

var _ Metrics = (*Service)(nil)

const namespace = "hoops"

type Service struct {
	ActionsLogged    *prometheus.CounterVec
	BoxScoreUpdates  *prometheus.CounterVec
	GamesSettled     *prometheus.CounterVec
	RequestDurations *prometheus.HistogramVec
}

// NewHandler returns an http.Handler for the given Gatherer, the default one when omitted.
func NewHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors, on the default registerer when omitted.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ActionsLogged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "game_log_actions_total",
			Help:      "Ledger entries appended, by action label.",
		}, []string{"action"}),
		BoxScoreUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "box_score_updates_total",
			Help:      "Box score updates applied, by action label and whether the label changed counters.",
		}, []string{"action", "known"}),
		GamesSettled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_settled_total",
			Help:      "Games settled, by outcome.",
		}, []string{"outcome"}),
		RequestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		s.ActionsLogged,
		s.BoxScoreUpdates,
		s.GamesSettled,
		s.RequestDurations,
	)

	return s
}

// RegisterCacheStats exposes hit, miss and size figures of a cache store.
func RegisterCacheStats(store *cache.Store, registerer ...prometheus.Registerer) {
	if store == nil {
		return
	}
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	reg.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Repository cache hits.",
		}, func() float64 { return float64(store.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Repository cache misses.",
		}, func() float64 { return float64(store.Stats().Misses) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Entries currently held by the repository cache.",
		}, func() float64 { return float64(store.Stats().Entries) }),
	)
}

func (s *Service) IncActionLogged(action string) {
	s.ActionsLogged.WithLabelValues(action).Inc()
}

func (s *Service) IncBoxScoreUpdate(action string, known bool) {
	if !known {
		action = "unknown"
	}
	s.BoxScoreUpdates.WithLabelValues(action, strconv.FormatBool(known)).Inc()
}

func (s *Service) IncGameSettled(tie bool) {
	outcome := "decided"
	if tie {
		outcome = "tie"
	}
	s.GamesSettled.WithLabelValues(outcome).Inc()
}

func (s *Service) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	s.RequestDurations.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
