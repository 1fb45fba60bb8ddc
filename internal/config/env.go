package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// envReader looks variables up with defaults for blank values and collects
// parse failures in err.
type envReader struct {
	err error
}

func (r *envReader) fail(key string, err error) {
	r.err = multierr.Append(r.err, fmt.Errorf("parse %s: %w", key, err))
}

func (r *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (r *envReader) oneOf(key, fallback string, allowed ...string) string {
	v := strings.ToLower(r.str(key, fallback))
	if !slices.Contains(allowed, v) {
		r.fail(key, fmt.Errorf("invalid value %q: valid values are %s", v, strings.Join(allowed, ", ")))
		return fallback
	}
	return v
}

func (r *envReader) bool(key string, fallback bool) bool {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return v
}

func (r *envReader) positiveInt(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err == nil && v < 1 {
		err = fmt.Errorf("must be >= 1, got %d", v)
	}
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return v
}

func (r *envReader) positiveDuration(key string, fallback time.Duration) time.Duration {
	v := r.duration(key, fallback)
	if v <= 0 {
		r.fail(key, fmt.Errorf("must be > 0, got %s", v))
		return fallback
	}
	return v
}

func (r *envReader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.fail(key, err)
		return fallback
	}
	return v
}

func (r *envReader) csv(key, fallback string) []string {
	var out []string
	for _, part := range strings.Split(r.str(key, fallback), ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// uptraceDSNFromOTLPHeaders finds uptrace-dsn in a comma separated
// OTEL_EXPORTER_OTLP_HEADERS value.
func uptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if ok && strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}
	return ""
}
