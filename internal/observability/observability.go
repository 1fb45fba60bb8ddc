// Package observability starts the process-wide telemetry the API server
// runs with: Uptrace tracing, Pyroscope profiling and a private pprof
// listener. Each piece is opt-in through config.
package observability

import (
	"context"

	"go.uber.org/multierr"

	"github.com/riskibarqy/hoops-league/internal/config"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

// Runtime holds whatever was started so it can be torn down in reverse order.
type Runtime struct {
	logger   *logging.Logger
	stoppers []stopper
}

type stopper struct {
	name string
	stop func(context.Context) error
}

// Start brings up every enabled component. If one fails, the ones already
// running are stopped before the error is returned.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	steps := []struct {
		name    string
		enabled bool
		start   func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{name: "uptrace", enabled: cfg.UptraceEnabled, start: startTracing},
		{name: "pyroscope", enabled: cfg.PyroscopeEnabled, start: startProfiling},
		{name: "pprof", enabled: cfg.PprofEnabled, start: startPprof},
	}
	for _, step := range steps {
		if !step.enabled {
			logger.Debug("telemetry component disabled", "component", step.name)
			continue
		}
		stop, err := step.start(cfg, logger)
		if err != nil {
			return nil, multierr.Append(err, rt.Shutdown(ctx))
		}
		rt.stoppers = append(rt.stoppers, stopper{name: step.name, stop: stop})
	}
	return rt, nil
}

// Shutdown stops components last-started first and reports every failure.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var err error
	for i := len(r.stoppers) - 1; i >= 0; i-- {
		s := r.stoppers[i]
		if stopErr := s.stop(ctx); stopErr != nil {
			err = multierr.Append(err, stopErr)
			continue
		}
		r.logger.Info("telemetry component stopped", "component", s.name)
	}
	r.stoppers = nil
	return err
}
