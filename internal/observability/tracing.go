package observability

import (
	"context"
	"errors"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/hoops-league/internal/config"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

// startTracing installs the global OpenTelemetry providers that otelhttp,
// otelsqlx and the usecase spans report to.
func startTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		return nil, errors.New("uptrace: dsn is empty")
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("uptrace tracing enabled", "service", cfg.ServiceName, "version", cfg.ServiceVersion, "env", cfg.AppEnv)

	return uptrace.Shutdown, nil
}
