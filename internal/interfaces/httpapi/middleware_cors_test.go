package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name            string
		allowed         []string
		method          string
		origin          string
		wantStatus      int
		wantAllowOrigin string
		wantCredentials string
	}{
		{"listed origin gets credentials", []string{"https://scores.example.com"}, http.MethodGet, "https://scores.example.com", http.StatusOK, "https://scores.example.com", "true"},
		{"wildcard never sends credentials", []string{"*"}, http.MethodGet, "https://scores.example.com", http.StatusOK, "*", ""},
		{"preflight short circuits", []string{"*"}, http.MethodOptions, "https://scores.example.com", http.StatusNoContent, "*", ""},
		{"unlisted origin", []string{"https://allowed.example.com"}, http.MethodGet, "https://other.example.com", http.StatusOK, "", ""},
		{"no origin header", []string{"https://allowed.example.com"}, http.MethodGet, "", http.StatusOK, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/games", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tt.allowed, ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
