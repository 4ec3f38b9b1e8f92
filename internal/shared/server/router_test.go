package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/analyses"
	"resume-insights/internal/services/health"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/server/middleware"
)

func testRouter(rps float64, burst int) http.Handler {
	svc := analyses.NewService(analyses.NewMemoryRepo(), nil, time.Minute)
	return NewRouter(RouterDeps{
		Config: config.Config{
			Env:             "dev",
			CORSAllowOrigin: []string{"http://localhost:5173"},
			RateLimitRPS:    rps,
			RateLimitBurst:  burst,
		},
		AnalysisHandler: analyses.NewHandler(svc, 20, 1<<20),
		Health:          health.NewService(nil, nil, "test"),
		RateLimiter:     middleware.NewRateLimiter(func() time.Time { return time.Unix(1700000000, 0) }),
	})
}

func TestHealthAndMe(t *testing.T) {
	r := testRouter(5, 10)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var report health.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.OK)
	assert.Equal(t, "test", report.Version)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("X-User-Id", "user-42")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-42","isGuest":false}`, w.Body.String())
}

func TestScoringIsRateLimited(t *testing.T) {
	r := testRouter(1, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "user-1")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	r := testRouter(0, 0)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := testRouter(5, 10)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "analysis_started_total")
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", Addr(""))
	assert.Equal(t, ":9000", Addr("9000"))
	assert.Equal(t, ":9000", Addr(":9000"))
}
