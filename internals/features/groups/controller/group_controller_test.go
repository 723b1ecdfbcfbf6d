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
	"linksphere_backend/internals/features/groups/dto"
	groupRoute "linksphere_backend/internals/features/groups/route"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
)

type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
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
	groupRoute.GroupRoutes(app.Group("/api"), db, hub)
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

func TestCreateGroupWithResources(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/groups", fiber.Map{
		"name":        "Komunitas Go",
		"description": "belajar bareng",
		"category":    "programming",
		"memberCount": 12,
		"resources": []fiber.Map{
			{"title": "Dokumentasi", "url": "https://go.dev/doc"},
			{"title": "Playground", "url": "https://go.dev/play"},
		},
	})
	require.Equal(t, http.StatusCreated, status)

	var created dto.GroupDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.GroupID)
	assert.Equal(t, 12, created.GroupMemberCount)
	require.Len(t, created.GroupResources, 2)
	assert.Equal(t, "Dokumentasi", created.GroupResources[0].Title)
}

func TestCreateGroupRequiresName(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/api/groups", fiber.Map{
		"description": "tanpa nama",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
}

func TestUpdateGroupReplacesResources(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/groups", fiber.Map{
		"name": "Komunitas Go",
		"resources": []fiber.Map{
			{"title": "Lama", "url": "https://old.example"},
		},
	})
	var created dto.GroupDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env := doJSON(t, app, http.MethodPut, "/api/groups/"+created.GroupID, fiber.Map{
		"resources": []fiber.Map{
			{"title": "Baru", "url": "https://new.example"},
		},
		"isPrivate": true,
	})
	require.Equal(t, http.StatusOK, status)

	var updated dto.GroupDTO
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Len(t, updated.GroupResources, 1)
	assert.Equal(t, "Baru", updated.GroupResources[0].Title)
	assert.True(t, updated.GroupIsPrivate)
	assert.Equal(t, "Komunitas Go", updated.GroupName, "field lain tidak berubah")
}

func TestDeleteGroup(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/api/groups", fiber.Map{"name": "Sekali"})
	var created dto.GroupDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ := doJSON(t, app, http.MethodDelete, "/api/groups/"+created.GroupID, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/groups/"+created.GroupID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
