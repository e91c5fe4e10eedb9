package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godist/internal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	return NewServer(internal.NewLoggerTo(internal.LogLevelError, io.Discard))
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListDistributions(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/distributions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":27`)
	assert.Contains(t, rec.Body.String(), `"kind":"Gaussian"`)
}

func TestDescribeDistribution(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/api/distributions/gaussian?mu=1&sigma=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"kind": "Gaussian",
		"params": [{"name": "mu", "value": 1}, {"name": "sigma", "value": 2}],
		"support": "(-Inf, +Inf)",
		"mean": 1,
		"standard_deviation": 2
	}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/api/distributions/cauchy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mean":"Undefined"`)
}

func TestDescribeDistribution_Errors(t *testing.T) {
	s := newTestServer()
	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"unknown kind", "/api/distributions/pareto", http.StatusNotFound, "NOT_FOUND"},
		{"invalid parameter", "/api/distributions/gaussian?sigma=-1", http.StatusBadRequest, "INVALID_PARAMETER"},
		{"unknown parameter", "/api/distributions/gaussian?rate=1", http.StatusBadRequest, "INVALID_PARAMETER"},
		{"not a number", "/api/distributions/gaussian?mu=abc", http.StatusBadRequest, "INVALID_INPUT"},
		{"zeta limit too large", "/api/distributions/zeta?limit=1e19", http.StatusBadRequest, "INVALID_PARAMETER"},
		{"bates n too large", "/api/distributions/bates?n=5000", http.StatusBadRequest, "INVALID_PARAMETER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestEvaluatePDF(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/distributions/uniform/pdf", `{"x": [0.5, 2]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"x": 0.5, "density": 1}, {"x": 2, "density": 0}]`, rec.Body.String())
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.evaluations.WithLabelValues("Uniform")))

	rec = do(t, s, http.MethodPost, "/api/distributions/beta/pdf", `{"x": [1.5]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"DOMAIN_ERROR"`)

	rec = do(t, s, http.MethodPost, "/api/distributions/uniform/pdf", `{"x": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INVALID_INPUT"`)
}

func TestCompose(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/distributions/poisson/compose", `{"left": {"mu": 1.5}, "right": {"mu": 2.5}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mean":4`)
	assert.Contains(t, rec.Body.String(), `"standard_deviation":2`)

	rec = do(t, s, http.MethodPost, "/api/distributions/binomial/compose", `{"left": {"p": 0.3}, "right": {"p": 0.4}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INCOMPATIBLE_OPERANDS"`)

	rec = do(t, s, http.MethodPost, "/api/distributions/uniform/compose", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRefresh(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/distributions/uniform/refresh", `{"sample": [2, 5, 1, 9]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"params":[{"name":"a","value":1},{"name":"b","value":9}]`)
	assert.Contains(t, rec.Body.String(), `"mean":5`)

	rec = do(t, s, http.MethodPost, "/api/distributions/uniform/refresh", `{"sample": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"EMPTY_SAMPLE"`)

	rec = do(t, s, http.MethodPost, "/api/distributions/gaussian/refresh", `{"sample": [1, 2]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INCOMPATIBLE_OPERANDS"`)
}

func TestZScore(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/distributions/gaussian/zscore", `{"params": {"sigma": 2}, "x": 3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"x": 3, "z_score": 1.5}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/distributions/gaussian/zscore", `{"params": {"sigma": 2}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarizeSample(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/api/samples/summary", `{"values": [2, 4, 4, 4, 5, 5, 7, 9]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":8`)
	assert.Contains(t, rec.Body.String(), `"mean":5`)

	rec = do(t, s, http.MethodPost, "/api/samples/summary", `{"values": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer()
	do(t, s, http.MethodGet, "/api/distributions", "")
	do(t, s, http.MethodGet, "/api/distributions/pareto", "")

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("/api/distributions", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("/api/distributions/:kind", "404")))

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "godist_http_requests_total")
	assert.Contains(t, rec.Body.String(), "godist_http_request_duration_seconds")
}
