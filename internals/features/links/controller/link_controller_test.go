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
	"linksphere_backend/internals/features/links/dto"
	linkRoute "linksphere_backend/internals/features/links/route"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
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
	linkRoute.LinkRoutes(app.Group("/api"), db, hub)
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

func TestCreateLink(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/links", fiber.Map{
		"title": "Channel YouTube",
		"url":   "https://yt.example",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "success", env.Status)

	var created dto.LinkDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.LinkID)
	assert.Equal(t, "Channel YouTube", created.LinkTitle)
	assert.False(t, created.LinkCreatedAt.IsZero())
}

func TestCreateLinkValidation(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/links", fiber.Map{
		"title": "Tanpa URL",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "required", env.Details["LinkURL"])
}

func TestListLinks(t *testing.T) {
	app := newTestApp(t)

	for _, title := range []string{"Satu", "Dua"} {
		status, _ := doJSON(t, app, http.MethodPost, "/api/links", fiber.Map{
			"title": title,
			"url":   "https://example.com/" + title,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := doJSON(t, app, http.MethodGet, "/api/links", nil)
	require.Equal(t, http.StatusOK, status)

	var links []dto.LinkDTO
	require.NoError(t, json.Unmarshal(env.Data, &links))
	assert.Len(t, links, 2)
}

func TestUpdateLinkPartial(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/links", fiber.Map{
		"title":       "Awal",
		"description": "deskripsi tetap",
		"url":         "https://a.example",
	})
	var created dto.LinkDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodPut, "/api/links/"+created.LinkID, fiber.Map{
		"title": "Diubah",
	})
	require.Equal(t, http.StatusOK, status)

	var updated dto.LinkDTO
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Diubah", updated.LinkTitle)
	assert.Equal(t, "deskripsi tetap", updated.LinkDescription)
	assert.Equal(t, "https://a.example", updated.LinkURL)
}

func TestUpdateLinkNotFound(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPut, "/api/links/tidak-ada", fiber.Map{
		"title": "x",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)
}

func TestDeleteLink(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/links", fiber.Map{
		"title": "Sekali pakai",
		"url":   "https://x.example",
	})
	var created dto.LinkDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodDelete, "/api/links/"+created.LinkID, nil)
	require.Equal(t, http.StatusOK, status)

	var deleted struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &deleted))
	assert.Equal(t, created.LinkID, deleted.ID)

	// delete kedua: sudah tidak ada
	status, _ = doJSON(t, app, http.MethodDelete, "/api/links/"+created.LinkID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = doJSON(t, app, http.MethodGet, "/api/links", nil)
	require.Equal(t, http.StatusOK, status)
	var links []dto.LinkDTO
	require.NoError(t, json.Unmarshal(env.Data, &links))
	assert.Empty(t, links)
}
