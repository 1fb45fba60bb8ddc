package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

type recordedRequest struct {
	method  string
	route   string
	status  int
	seconds float64
}

type fakeMetrics struct {
	requests []recordedRequest
}

func (f *fakeMetrics) IncActionLogged(string)         {}
func (f *fakeMetrics) IncBoxScoreUpdate(string, bool) {}
func (f *fakeMetrics) IncGameSettled(bool)            {}
func (f *fakeMetrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status, seconds: seconds})
}

func TestRequestLogging_RecordsRoutePatternAndStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/games/{gameID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	m := &fakeMetrics{}
	handler := RequestLogging(logging.NewNop(), m, recordRoute(mux))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/games/42", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Len(t, m.requests, 2)
	assert.Equal(t, "GET /v1/games/{gameID}", m.requests[0].route)
	assert.Equal(t, http.StatusTeapot, m.requests[0].status)
	assert.Equal(t, "unmatched", m.requests[1].route)
	assert.Equal(t, http.StatusNotFound, m.requests[1].status)
}

func TestRequestLogging_DefaultsToOKWhenHandlerOnlyWrites(t *testing.T) {
	m := &fakeMetrics{}
	handler := RequestLogging(logging.NewNop(), m, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, http.StatusOK, m.requests[0].status)
}

func TestRecoverPanic_ReturnsInternalError(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", resolveClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", resolveClientIP(req))
}
