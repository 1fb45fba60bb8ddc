// Command migration applies the SQL files under db/migrations and can load
// the demo league into an empty database.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

const seedTimeout = 30 * time.Second

var logger = logging.New(logging.Options{Format: logging.FormatConsole, Level: logging.LevelInfo}).Named("migration")

type command struct {
	usage string
	// run gets the arguments after the command name. A nil migrator means
	// the command talks to the database directly.
	run        func(m *migrate.Migrate, dsn string, args []string) error
	needsFiles bool
}

var commands = map[string]command{
	"up":      {usage: "up", run: runUp, needsFiles: true},
	"down":    {usage: "down [steps]", run: runDown, needsFiles: true},
	"goto":    {usage: "goto <version>", run: runGoto, needsFiles: true},
	"force":   {usage: "force <version>", run: runForce, needsFiles: true},
	"version": {usage: "version", run: runVersion, needsFiles: true},
	"seed":    {usage: "seed", run: runSeed},
}

func main() {
	defer func() { _ = logger.Sync() }()
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}
	name := strings.ToLower(strings.TrimSpace(os.Args[1]))
	cmd, ok := commands[name]
	if !ok {
		usage()
	}

	dsn, err := dsnFromEnv()
	if err != nil {
		fatal("read database settings", "error", err)
	}

	var m *migrate.Migrate
	if cmd.needsFiles {
		dir, err := migrationsDir()
		if err != nil {
			fatal("locate migrations", "error", err)
		}
		m, err = migrate.New("file://"+filepath.ToSlash(dir), dsn)
		if err != nil {
			fatal("create migrator", "error", err)
		}
		defer closeMigrator(m)
	}

	if err := cmd.run(m, dsn, os.Args[2:]); err != nil {
		fatal(name+" failed", "error", err)
	}
}

func runUp(m *migrate.Migrate, _ string, _ []string) error {
	return report(m.Up(), "migrations applied")
}

func runDown(m *migrate.Migrate, _ string, args []string) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n < 1 {
			return fmt.Errorf("down steps must be a positive integer, got %q", args[0])
		}
		steps = n
	}
	return report(m.Steps(-steps), "rolled back", "steps", steps)
}

func runGoto(m *migrate.Migrate, _ string, args []string) error {
	version, err := versionArg(args)
	if err != nil {
		return err
	}
	return report(m.Migrate(version), "migrated", "version", version)
}

func runForce(m *migrate.Migrate, _ string, args []string) error {
	version, err := versionArg(args)
	if err != nil {
		return err
	}
	if err := m.Force(int(version)); err != nil {
		return err
	}
	logger.Info("forced version", "version", version)
	return nil
}

func runVersion(m *migrate.Migrate, _ string, _ []string) error {
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		fmt.Println("version: none\ndirty: false")
		return nil
	case err != nil:
		return err
	}
	fmt.Printf("version: %d\ndirty: %t\n", version, dirty)
	return nil
}

// runSeed loads the demo league into a migrated database with no leagues.
func runSeed(_ *migrate.Migrate, dsn string, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		return err
	}
	logger.Info("demo league seeded", "db_name", postgres.DatabaseName(dsn))
	return nil
}

// report treats ErrNoChange as success.
func report(err error, msg string, args ...any) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg, args...)
	return nil
}

func versionArg(args []string) (uint, error) {
	if len(args) == 0 {
		return 0, errors.New("a version argument is required")
	}
	v, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 31)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return uint(v), nil
}

func dsnFromEnv() (string, error) {
	raw := strings.TrimSpace(os.Getenv("DB_URL"))
	if raw == "" {
		return "", errors.New("DB_URL is required")
	}
	disableBinary := true
	if v := strings.TrimSpace(os.Getenv("DB_DISABLE_PREPARED_BINARY_RESULT")); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
		}
		disableBinary = parsed
	}
	return postgres.ConnString(raw, "hoops-league-migration", disableBinary), nil
}

func migrationsDir() (string, error) {
	candidates := []string{os.Getenv("MIGRATIONS_DIR"), "./db/migrations", "/app/db/migrations"}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("no migrations directory among %v", candidates)
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if err := errors.Join(srcErr, dbErr); err != nil {
		logger.Warn("close migrator", "error", err)
	}
}

func fatal(msg string, args ...any) {
	logger.Error(msg, args...)
	_ = logger.Sync()
	os.Exit(1)
}

func usage() {
	bin := filepath.Base(os.Args[0])
	names := []string{"up", "down", "goto", "force", "version", "seed"}
	fmt.Fprintf(os.Stderr, "usage: %s <command> [args]\n\ncommands:\n", bin)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s %s\n", bin, commands[name].usage)
	}
	os.Exit(2)
}
