package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"linksphere_backend/internals/configs"
	database "linksphere_backend/internals/databases"
	LinkModel "linksphere_backend/internals/features/links/model"
	"linksphere_backend/internals/features/settings/dto"
	settingsRoute "linksphere_backend/internals/features/settings/route"
	"linksphere_backend/internals/features/settings/service"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

func TestMain(m *testing.M) {
	configs.LoadEnv()
	os.Exit(m.Run())
}

func newSettingsApp(t *testing.T, metrics service.MetricsSource) (*fiber.App, *gorm.DB) {
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
	settingsRoute.SettingsRoutes(app.Group("/api"), db, hub, metrics)
	return app, db
}

func getJSON(t *testing.T, app *fiber.App, path string, out interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestGetSettingsLazyCreatesDefaults(t *testing.T) {
	app, _ := newSettingsApp(t, &service.FixedMetrics{})

	var settings dto.SettingDTO
	getJSON(t, app, "/api/settings", &settings)

	assert.Equal(t, "LinkSphere", settings.SiteName)
	assert.Equal(t, "1234", settings.AdminPin)
	assert.Equal(t, "light", settings.Theme)
	assert.True(t, settings.Notifications)
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	app, _ := newSettingsApp(t, &service.FixedMetrics{})

	body, _ := json.Marshal(fiber.Map{"theme": "dark", "notifications": false})
	req := httptest.NewRequest(http.MethodPut, "/api/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings dto.SettingDTO
	getJSON(t, app, "/api/settings", &settings)
	assert.Equal(t, "dark", settings.Theme)
	assert.False(t, settings.Notifications)
	assert.Equal(t, "LinkSphere", settings.SiteName, "field yang tidak dikirim tidak berubah")
	assert.Equal(t, "1234", settings.AdminPin)
}

func TestGetAnalyticsCombinesPersistedAndRealtime(t *testing.T) {
	metrics := &service.FixedMetrics{Value: dto.AnalyticsDTO{
		TotalViews:  7777,
		ActiveUsers: 321,
		Engagement:  0.5,
	}}
	app, db := newSettingsApp(t, metrics)

	// dua konten di store → totalContent = 2
	for _, title := range []string{"Satu", "Dua"} {
		link := LinkModel.LinkModel{LinkTitle: title, LinkURL: "https://example.com"}
		require.NoError(t, store.CreateOne(db, &link))
	}

	// totalUsers diambil dari counter persisted, bukan dari MetricsSource
	users := int64(42)
	_, err := service.UpdateAnalytics(db, dto.UpdateAnalyticsRequest{TotalUsers: &users})
	require.NoError(t, err)

	var analytics dto.AnalyticsDTO
	getJSON(t, app, "/api/analytics", &analytics)

	assert.Equal(t, int64(7777), analytics.TotalViews)
	assert.Equal(t, int64(321), analytics.ActiveUsers)
	assert.Equal(t, int64(42), analytics.TotalUsers)
	assert.Equal(t, int64(2), analytics.TotalContent)
}
