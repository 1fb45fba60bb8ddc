package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "hoops-league/internal/interfaces/httpapi"

var noopSpan = trace.SpanFromContext(context.Background())

// startHandlerSpan opens "httpapi.Handler.<name>" under the otelhttp server
// span, tagged with the caller's session. The child comes from the parent's
// own provider. Requests filtered out of tracing get a no-op span.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx := r.Context()
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}

	parent := trace.SpanFromContext(ctx)
	ctx, span := parent.TracerProvider().Tracer(tracerName).Start(ctx, "httpapi.Handler."+name)
	if route := r.Pattern; route != "" {
		span.SetAttributes(attribute.String("http.route", route))
	}
	if claims, ok := sessionFromContext(ctx); ok {
		span.SetAttributes(attribute.Int64("hoops.user_id", claims.UserID))
		if claims.HasLeague() {
			span.SetAttributes(attribute.Int64("hoops.league_id", claims.SelectedLeagueID))
		}
	}
	return ctx, span
}

// recordSpanError marks the active span failed for server-side errors only;
// client mistakes stay as events.
func recordSpanError(ctx context.Context, err error, status int) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.RecordError(err)
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}
