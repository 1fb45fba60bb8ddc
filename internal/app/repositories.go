package app

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/hoops-league/internal/config"
	"github.com/riskibarqy/hoops-league/internal/domain/boxscore"
	"github.com/riskibarqy/hoops-league/internal/domain/game"
	"github.com/riskibarqy/hoops-league/internal/domain/gamelog"
	"github.com/riskibarqy/hoops-league/internal/domain/league"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/season"
	"github.com/riskibarqy/hoops-league/internal/domain/team"
	"github.com/riskibarqy/hoops-league/internal/domain/user"
	cacherepo "github.com/riskibarqy/hoops-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/hoops-league/internal/platform/cache"
)

type repositories struct {
	leagues   league.Repository
	seasons   season.Repository
	teams     team.Repository
	players   player.Repository
	games     game.Repository
	gameLogs  gamelog.Repository
	boxScores boxscore.Repository
	users     user.Repository
}

func newMemoryRepositories() repositories {
	store := memory.NewStore(memory.DemoSeed())
	return repositories{
		leagues:   store.Leagues(),
		seasons:   store.Seasons(),
		teams:     store.Teams(),
		players:   store.Players(),
		games:     store.Games(),
		gameLogs:  store.GameLogs(),
		boxScores: store.BoxScores(),
		users:     store.Users(),
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		leagues:   postgres.NewLeagueRepository(db),
		seasons:   postgres.NewSeasonRepository(db),
		teams:     postgres.NewTeamRepository(db),
		players:   postgres.NewPlayerRepository(db),
		games:     postgres.NewGameRepository(db),
		gameLogs:  postgres.NewGameLogRepository(db),
		boxScores: postgres.NewBoxScoreRepository(db),
		users:     postgres.NewUserRepository(db),
	}
}

// withCache puts the read-mostly catalog tables behind the shared store.
// Games, logs and box scores change every play and are always read through.
func (r repositories) withCache(store *basecache.Store) repositories {
	r.leagues = cacherepo.NewLeagueRepository(r.leagues, store)
	r.seasons = cacherepo.NewSeasonRepository(r.seasons, store)
	r.teams = cacherepo.NewTeamRepository(r.teams, store)
	return r
}

func openTracedDB(cfg config.Config) (*sqlx.DB, error) {
	return otelsqlx.Open(
		"postgres",
		postgres.ConnString(cfg.DBURL, cfg.ServiceName, cfg.DBDisablePreparedBinary),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(postgres.DatabaseName(cfg.DBURL)),
		otelsql.WithQueryFormatter(traceQuery),
	)
}

const maxTracedQueryLength = 512

// traceQuery collapses whitespace and truncates long statements before they
// are attached to database spans.
func traceQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) <= maxTracedQueryLength {
		return compact
	}
	return compact[:maxTracedQueryLength] + "..."
}
