package app

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/riskibarqy/hoops-league/internal/config"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hoops-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/hoops-league/internal/platform/cache"
	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
	"github.com/riskibarqy/hoops-league/internal/platform/metrics"
	"github.com/riskibarqy/hoops-league/internal/platform/password"
	"github.com/riskibarqy/hoops-league/internal/platform/session"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

// NewHTTPServer wires storage, services and the router. The returned close
// func releases the database pool and must be called after shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, errors.New("http server addr cannot be empty")
	}

	repos, closeFn, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var (
		m              metrics.Metrics = metrics.Nop{}
		metricsHandler http.Handler
		registry       *prometheus.Registry
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.NewService(registry)
		metricsHandler = metrics.NewHandler(registry)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos = repos.withCache(store)
		if registry != nil {
			metrics.RegisterCacheStats(store, registry)
		}
		logger.Info("read-through cache enabled", "ttl", cfg.CacheTTL.String())
	}

	authSvc := usecase.NewAuthService(repos.users, password.NewBcryptHasher(0))
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.seasons)
	teamSvc := usecase.NewTeamService(repos.leagues, repos.seasons, repos.teams, repos.games, repos.boxScores)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams)
	gameSvc := usecase.NewGameService(
		repos.seasons,
		repos.teams,
		repos.players,
		repos.games,
		repos.gameLogs,
		repos.boxScores,
		cfg.GameLogRecentLimit,
		m,
	)
	scoringSvc := usecase.NewScoringService(repos.seasons, repos.teams, repos.players, repos.games, repos.gameLogs, repos.boxScores, m)
	dashboardSvc := usecase.NewDashboardService(
		repos.leagues,
		repos.seasons,
		repos.teams,
		repos.games,
		repos.boxScores,
		cfg.LeadersLimit,
	)

	sessions := httpapi.NewSessionManager(
		session.NewCodec(cfg.SessionSecret, cfg.SessionTTL),
		id.NewUUIDGenerator(),
		cfg.SessionCookieSecure,
	)

	handler := httpapi.NewHandler(
		authSvc,
		leagueSvc,
		teamSvc,
		playerSvc,
		gameSvc,
		scoringSvc,
		dashboardSvc,
		sessions,
		logger,
	)
	router := httpapi.NewRouter(handler, sessions, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsHandler:     metricsHandler,
		Metrics:            m,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeFn, nil
}

func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Info("storage driver selected", "driver", cfg.StorageDriver)
		return newMemoryRepositories(), func() error { return nil }, nil
	case config.StorageDriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.AppEnv == config.EnvDev {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, nil, errors.Wrap(err, "bootstrap seed")
			}
		}
		logger.Info("storage driver selected",
			"driver", cfg.StorageDriver,
			"db_name", postgres.DatabaseName(cfg.DBURL),
			"max_open_conns", cfg.DBMaxOpenConns,
		)
		return newPostgresRepositories(db), db.Close, nil
	default:
		return repositories{}, nil, errors.Newf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := openTracedDB(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	return db, nil
}
