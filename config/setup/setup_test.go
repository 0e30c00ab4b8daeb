package setup

import (
	"email-dataset/config"
	"email-dataset/database"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*database.DB, func(req *http.Request) *http.Response) {
	t.Helper()

	t.Setenv("ENV", "test")
	t.Setenv("DATASET_PATH", filepath.Join(t.TempDir(), "emails.db"))
	config.Load()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := InitDatabase(config.AppConfig.DatasetPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { Shutdown(db, logger) })

	app := NewFiberApp(logger)
	ApplyMiddleware(app, logger)
	RegisterRoutes(app, InitApp(db, logger))

	return db, func(req *http.Request) *http.Response {
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}
}

func TestRegisterRoutes(t *testing.T) {
	_, do := newTestServer(t)

	t.Run("Health", func(t *testing.T) {
		resp := do(httptest.NewRequest(http.MethodGet, "/health", nil))
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("Stats on an empty dataset", func(t *testing.T) {
		resp := do(httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Stats struct {
				TotalEmails  int64 `json:"total_emails"`
				TaggedEmails int64 `json:"tagged_emails"`
			} `json:"stats"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Zero(t, body.Stats.TotalEmails)
		assert.Zero(t, body.Stats.TaggedEmails)
	})

	t.Run("Metrics expose repository timings", func(t *testing.T) {
		resp := do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "dataset_query_duration_seconds")
	})

	t.Run("Unknown route uses the JSON error handler", func(t *testing.T) {
		resp := do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["request_id"])
	})

	t.Run("Purge through the write route", func(t *testing.T) {
		resp := do(httptest.NewRequest(http.MethodDelete, "/api/emails/hidden", strings.NewReader("")))
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestInitDatabaseIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "emails.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for i := 0; i < 2; i++ {
		db, err := InitDatabase(path, logger)
		require.NoError(t, err)
		Shutdown(db, logger)
	}
}
