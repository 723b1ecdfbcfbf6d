package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "linksphere_backend/internals/databases"
	alertRoute "linksphere_backend/internals/features/alerts/route"
	"linksphere_backend/internals/features/alerts/dto"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	blobStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	hub := realtime.NewHub(db, blobStorage)

	app := fiber.New()
	alertRoute.AlertRoutes(app.Group("/api"), db, hub)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestCreateAlertAppliesDefaults(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/alerts", fiber.Map{
		"title":   "Pemberitahuan",
		"message": "server maintenance malam ini",
	})
	require.Equal(t, http.StatusCreated, status)

	var created dto.AlertDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.AlertID)
	assert.Equal(t, "info", created.AlertType)
	assert.Equal(t, "medium", created.AlertPriority)
	assert.NotEmpty(t, created.AlertDate)
}

func TestCreateAlertRejectsInvalidType(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/alerts", fiber.Map{
		"title":   "Pemberitahuan",
		"message": "halo",
		"type":    "bencana",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "oneof", env.Details["AlertType"])
}

func TestUpdateAlertPriority(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/alerts", fiber.Map{
		"title":   "Deadline",
		"message": "kumpulkan tugas",
	})
	var created dto.AlertDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodPut, "/api/alerts/"+created.AlertID, fiber.Map{
		"priority": "high",
	})
	require.Equal(t, http.StatusOK, status)

	var updated dto.AlertDTO
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "high", updated.AlertPriority)
	assert.Equal(t, "Deadline", updated.AlertTitle, "field lain tidak berubah")
	assert.Equal(t, "info", updated.AlertType)
}

func TestDeleteAlert(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/alerts", fiber.Map{
		"title":   "Sekali",
		"message": "hapus aku",
	})
	var created dto.AlertDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ := doJSON(t, app, http.MethodDelete, "/api/alerts/"+created.AlertID, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/alerts/"+created.AlertID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
