package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"linksphere_backend/internals/configs"
	"linksphere_backend/internals/features/settings/dto"
	"linksphere_backend/internals/features/settings/model"
)

func TestMain(m *testing.M) {
	configs.LoadEnv()
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SettingModel{}, &model.AnalyticsModel{}))
	return db
}

func TestGetOrCreateSettingsSingleton(t *testing.T) {
	db := newTestDB(t)

	first, err := GetOrCreateSettings(db)
	require.NoError(t, err)
	assert.Equal(t, "LinkSphere", first.SettingSiteName)
	assert.Equal(t, "1234", first.SettingAdminPin)
	assert.True(t, first.SettingNotifications)

	// pembacaan kedua tidak membuat baris baru
	second, err := GetOrCreateSettings(db)
	require.NoError(t, err)
	assert.Equal(t, first.SettingID, second.SettingID)

	var n int64
	require.NoError(t, db.Model(&model.SettingModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestUpdateSettingsIgnoresEmptyStrings(t *testing.T) {
	db := newTestDB(t)

	theme := "dark"
	empty := ""
	updated, err := UpdateSettings(db, dto.UpdateSettingRequest{
		Theme:    &theme,
		AdminPin: &empty, // string kosong = tidak diubah
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", updated.SettingTheme)
	assert.Equal(t, "1234", updated.SettingAdminPin)
}

func TestUpdateAnalyticsPersistsCounters(t *testing.T) {
	db := newTestDB(t)

	users := int64(99)
	views := int64(1234)
	updated, err := UpdateAnalytics(db, dto.UpdateAnalyticsRequest{
		TotalUsers: &users,
		TotalViews: &views,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), updated.AnalyticsTotalUsers)

	// nilai bertahan di pembacaan berikutnya
	again, err := GetOrCreateAnalytics(db)
	require.NoError(t, err)
	assert.Equal(t, int64(99), again.AnalyticsTotalUsers)
	assert.Equal(t, int64(1234), again.AnalyticsTotalViews)
}

func TestRandomMetricsRanges(t *testing.T) {
	m := NewRandomMetrics()

	for i := 0; i < 20; i++ {
		snap := m.Snapshot(7)
		assert.Equal(t, int64(7), snap.TotalContent)
		assert.GreaterOrEqual(t, snap.TotalViews, int64(5000))
		assert.Less(t, snap.TotalViews, int64(15000))
		assert.GreaterOrEqual(t, snap.ActiveUsers, int64(100))
		assert.GreaterOrEqual(t, snap.Engagement, 0.2)
		assert.LessOrEqual(t, snap.Engagement, 1.0)
		assert.Len(t, snap.ContentGrowth, 12)
		assert.Len(t, snap.UserActivity, 7)
	}
}

func TestFixedMetricsInjectsTotalContent(t *testing.T) {
	m := &FixedMetrics{Value: dto.AnalyticsDTO{TotalViews: 10}}
	snap := m.Snapshot(3)
	assert.Equal(t, int64(10), snap.TotalViews)
	assert.Equal(t, int64(3), snap.TotalContent)
}
