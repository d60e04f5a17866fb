package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditlens/internal/infrastructure"
)

const appTestCSV = `,Age,Sex,Job,Housing,Saving accounts,Checking account,Credit amount,Duration,Purpose
0,67,male,2,own,NA,little,1169,6,radio/TV
1,22,female,2,own,little,moderate,5951,48,radio/TV
2,49,male,1,own,little,NA,2096,12,education
`

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	infrastructure.ResetLoggerForTesting()

	path := filepath.Join(t.TempDir(), "german_credit_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(appTestCSV), 0644))
	t.Setenv("CREDITLENS_DATASET_PATH", path)
	t.Setenv("CREDITLENS_LOGGING_OUTPUT", "stdout")

	frontend := fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte("<html><body>CreditLens</body></html>")},
	}

	application, err := NewApplication(frontend)
	require.NoError(t, err)
	t.Cleanup(func() {
		application.WebSocketHub.Stop()
	})
	return application
}

func TestNewApplication(t *testing.T) {
	application := newTestApplication(t)

	assert.NotNil(t, application.Config)
	assert.NotNil(t, application.Router)
	assert.NotNil(t, application.Server)
	assert.NotNil(t, application.WebSocketHub)
	assert.NotNil(t, application.DataService)
	assert.NotNil(t, application.HealthService)
	assert.Equal(t, 3, application.DataService.TotalRecords())
}

func TestNewApplicationMissingDataset(t *testing.T) {
	infrastructure.ResetLoggerForTesting()
	t.Setenv("CREDITLENS_DATASET_PATH", filepath.Join(t.TempDir(), "missing.csv"))
	t.Setenv("CREDITLENS_LOGGING_OUTPUT", "stdout")

	_, err := NewApplication(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset")
}

func TestApplicationRoutes(t *testing.T) {
	application := newTestApplication(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"health", "/api/health", http.StatusOK},
		{"liveness", "/api/health/live", http.StatusOK},
		{"readiness", "/api/health/ready", http.StatusOK},
		{"version", "/api/version", http.StatusOK},
		{"records", "/api/data/records", http.StatusOK},
		{"summary", "/api/data/summary", http.StatusOK},
		{"breakdown", "/api/data/breakdowns?field=sex", http.StatusOK},
		{"chart", "/api/data/charts/age-groups", http.StatusOK},
		{"box chart", "/api/data/charts/duration-by-purpose", http.StatusOK},
		{"describe", "/api/data/describe", http.StatusOK},
		{"findings", "/api/data/findings", http.StatusOK},
		{"filter options", "/api/data/filters", http.StatusOK},
		{"csv export", "/api/data/export/csv", http.StatusOK},
		{"metrics", "/metrics", http.StatusOK},
		{"unknown api route", "/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			application.Router.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestApplicationSummaryEnvelope(t *testing.T) {
	application := newTestApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/api/data/summary", nil)
	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.Equal(t, 3, envelope.Data.Count)
}

func TestApplicationFrontendFallback(t *testing.T) {
	application := newTestApplication(t)

	for _, path := range []string{"/", "/dashboard", "/index.html"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		application.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "CreditLens", path)
	}
}

func TestApplicationSecurityHeaders(t *testing.T) {
	application := newTestApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestApplicationRequestIDPropagation(t *testing.T) {
	application := newTestApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "app-test-id")
	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, req)

	assert.Equal(t, "app-test-id", rec.Header().Get("X-Request-ID"))
}

func TestIsDevelopmentMode(t *testing.T) {
	application := newTestApplication(t)

	t.Setenv("ENVIRONMENT", "")
	assert.True(t, application.isDevelopmentMode())

	t.Setenv("ENVIRONMENT", "production")
	assert.False(t, application.isDevelopmentMode())
}

func TestBuildTime(t *testing.T) {
	got := buildTime()
	assert.NotEmpty(t, got)
	if buildTimestamp == "" {
		assert.True(t, strings.HasPrefix(got, "20"))
	}
}
