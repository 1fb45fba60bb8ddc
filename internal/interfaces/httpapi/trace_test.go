package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/riskibarqy/hoops-league/internal/platform/session"
)

func TestStartHandlerSpan_WithoutParentIsNoop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	ctx, span := startHandlerSpan(req, "Healthz")
	require.False(t, span.SpanContext().IsValid())
	require.Equal(t, req.Context(), ctx)
}

func TestStartHandlerSpan_TagsSession(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	parentCtx, parent := provider.Tracer("test").Start(context.Background(), "GET /v1/games")

	req := httptest.NewRequest(http.MethodGet, "/v1/games", nil)
	req = req.WithContext(withSession(parentCtx, session.Claims{UserID: 7, SelectedLeagueID: 3}))

	ctx, span := startHandlerSpan(req, "ListGames")
	require.True(t, span.SpanContext().IsValid())
	require.NotEqual(t, parent.SpanContext().SpanID(), span.SpanContext().SpanID())

	recordSpanError(ctx, errors.New("db down"), http.StatusInternalServerError)
	span.End()
	parent.End()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	child := ended[0]
	require.Equal(t, "httpapi.Handler.ListGames", child.Name())
	require.Equal(t, parent.SpanContext().SpanID(), child.Parent().SpanID())
	require.Equal(t, codes.Error, child.Status().Code)

	attrs := map[string]any{}
	for _, kv := range child.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	require.Equal(t, int64(7), attrs["hoops.user_id"])
	require.Equal(t, int64(3), attrs["hoops.league_id"])
	require.Equal(t, int64(500), attrs["http.response.status_code"])
	require.Len(t, child.Events(), 1)
}
