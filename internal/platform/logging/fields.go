package logging

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// fields converts alternating key/value args to zap fields and appends the
// trace and span ids of ctx when it carries a valid span. A non-string key
// becomes "arg"; a dangling key is logged with a nil value.
func fields(ctx context.Context, args []any) []zap.Field {
	out := make([]zap.Field, 0, (len(args)+1)/2+2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}
		if i+1 == len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}
		if err, ok := args[i+1].(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, args[i+1]))
	}

	if ctx == nil {
		return out
	}
	if span := trace.SpanContextFromContext(ctx); span.IsValid() {
		out = append(out,
			zap.String("trace_id", span.TraceID().String()),
			zap.String("span_id", span.SpanID().String()),
		)
	}
	return out
}
