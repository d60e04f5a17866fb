package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditlens/internal/dataset"
	apierrors "creditlens/internal/errors"
	"creditlens/internal/services"
)

const healthTestCSV = `,Age,Sex,Job,Housing,Saving accounts,Checking account,Credit amount,Duration,Purpose
0,67,male,2,own,NA,little,1169,6,radio/TV
`

type staticClientCounter int

func (c staticClientCounter) ClientCount() int { return int(c) }

func newHealthRouter(t *testing.T, withStore bool) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var store *dataset.Store
	path := filepath.Join(t.TempDir(), "german_credit_data.csv")
	if withStore {
		require.NoError(t, os.WriteFile(path, []byte(healthTestCSV), 0644))
		var err error
		store, err = dataset.NewStore(path, logger)
		require.NoError(t, err)
	}

	svc := services.NewHealthService("1.0.0", "", path, store, staticClientCounter(1), logger)
	handler := NewHealthHandler(svc, logger, apierrors.NewErrorHandler(logger))

	router := chi.NewRouter()
	router.Mount("/api/health", handler.Routes())
	router.Get("/api/version", handler.Version)
	return router
}

func TestHealthEndpoints(t *testing.T) {
	router := newHealthRouter(t, true)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var status services.HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, "ok", status.Status)
	})

	t.Run("ready", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("live", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health/live", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alive")
	})

	t.Run("version", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "1.0.0")
	})
}

func TestReadyWithoutDataset(t *testing.T) {
	router := newHealthRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_ready")
}
