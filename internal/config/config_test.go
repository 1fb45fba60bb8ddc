package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

// loadWith clears the variables Load reads, applies env and loads.
func loadWith(t *testing.T, env map[string]string) (Config, error) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "STORAGE_DRIVER", "SESSION_SECRET", "SESSION_COOKIE_SECURE", "UPTRACE_ENABLED",
		"UPTRACE_DSN", "OTEL_EXPORTER_OTLP_HEADERS", "PPROF_ENABLED", "PPROF_ADDR", "PYROSCOPE_ENABLED",
		"PYROSCOPE_SERVER_ADDRESS", "PYROSCOPE_APP_NAME", "APP_SERVICE_NAME", "CORS_ALLOWED_ORIGINS",
		"CACHE_ENABLED", "CACHE_TTL", "GAMELOG_RECENT_LIMIT", "LEADERS_LIMIT", "METRICS_ENABLED",
		"DB_DISABLE_PREPARED_BINARY_RESULT", "APP_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(t, nil)
	require.NoError(t, err)

	require.Equal(t, EnvDev, cfg.AppEnv)
	require.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	require.Equal(t, devSessionSecret, cfg.SessionSecret)
	require.False(t, cfg.SessionCookieSecure)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 100, cfg.GameLogRecentLimit)
	require.Equal(t, 5, cfg.LeadersLimit)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.True(t, cfg.DBDisablePreparedBinary)
	require.True(t, cfg.CacheEnabled)
	require.Equal(t, time.Minute, cfg.CacheTTL)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, ":6060", cfg.PprofAddr)
	require.Equal(t, logging.LevelInfo, cfg.LogLevel)
}

func TestLoad_Parsing(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "storage driver is case insensitive",
			env:  map[string]string{"STORAGE_DRIVER": " Memory "},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, StorageDriverMemory, cfg.StorageDriver)
			},
		},
		{
			name: "uptrace dsn from otlp headers",
			env: map[string]string{
				"UPTRACE_ENABLED":            "true",
				"OTEL_EXPORTER_OTLP_HEADERS": "x-other=1, uptrace-dsn='https://token@api.uptrace.dev'",
			},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, "https://token@api.uptrace.dev", cfg.UptraceDSN)
			},
		},
		{
			name: "prod defaults to secure cookies",
			env:  map[string]string{"APP_ENV": EnvProd, "SESSION_SECRET": "0123456789abcdef0123"},
			check: func(t *testing.T, cfg Config) {
				require.True(t, cfg.SessionCookieSecure)
			},
		},
		{
			name: "pyroscope app name follows service name",
			env: map[string]string{
				"APP_SERVICE_NAME":         "hoops-league-api-test",
				"PYROSCOPE_ENABLED":        "true",
				"PYROSCOPE_SERVER_ADDRESS": "http://localhost:4040",
			},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, "hoops-league-api-test", cfg.PyroscopeAppName)
			},
		},
		{
			name: "cors origins are trimmed",
			env:  map[string]string{"CORS_ALLOWED_ORIGINS": " https://a.example.com, ,http://localhost:5173 "},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, []string{"https://a.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
			},
		},
		{
			name: "log level",
			env:  map[string]string{"APP_LOG_LEVEL": "debug"},
			check: func(t *testing.T, cfg Config) {
				require.Equal(t, logging.LevelDebug, cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, tt.env)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"unknown app env", map[string]string{"APP_ENV": "invalid"}, "APP_ENV"},
		{"unknown storage driver", map[string]string{"STORAGE_DRIVER": "sqlite"}, "STORAGE_DRIVER"},
		{"uptrace without dsn", map[string]string{"UPTRACE_ENABLED": "true"}, "UPTRACE_DSN"},
		{"pyroscope without server", map[string]string{"PYROSCOPE_ENABLED": "true"}, "PYROSCOPE_SERVER_ADDRESS"},
		{"prod without secret", map[string]string{"APP_ENV": EnvProd}, "SESSION_SECRET is required"},
		{"short secret", map[string]string{"APP_ENV": EnvProd, "SESSION_SECRET": "short"}, "at least 16"},
		{"zero game log limit", map[string]string{"GAMELOG_RECENT_LIMIT": "0"}, "GAMELOG_RECENT_LIMIT"},
		{"non numeric leaders limit", map[string]string{"LEADERS_LIMIT": "five"}, "LEADERS_LIMIT"},
		{"bad prepared binary flag", map[string]string{"DB_DISABLE_PREPARED_BINARY_RESULT": "not-bool"}, "DB_DISABLE_PREPARED_BINARY_RESULT"},
		{"bad cache ttl", map[string]string{"CACHE_TTL": "bad"}, "CACHE_TTL"},
		{"negative cache ttl", map[string]string{"CACHE_TTL": "-1s"}, "CACHE_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadWith(t, tt.env)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_ReportsEveryMalformedVariable(t *testing.T) {
	_, err := loadWith(t, map[string]string{
		"CACHE_TTL":       "bad",
		"LEADERS_LIMIT":   "-1",
		"METRICS_ENABLED": "maybe",
	})
	require.Error(t, err)
	for _, key := range []string{"CACHE_TTL", "LEADERS_LIMIT", "METRICS_ENABLED"} {
		require.ErrorContains(t, err, key)
	}
}
