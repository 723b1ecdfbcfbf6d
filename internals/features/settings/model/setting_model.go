package model

import (
	"time"

	"gorm.io/datatypes"
)

// SettingModel: singleton (selalu baris id=1), dibuat lazy dengan default
// saat pertama kali dibaca.
type SettingModel struct {
	SettingID            uint      `gorm:"column:setting_id;primaryKey"`
	SettingSiteName      string    `gorm:"column:setting_site_name;type:varchar(255)"`
	SettingAdminPin      string    `gorm:"column:setting_admin_pin;type:varchar(32)"` // shared PIN, bukan security boundary
	SettingTheme         string    `gorm:"column:setting_theme;type:varchar(32)"`
	SettingNotifications bool      `gorm:"column:setting_notifications;default:true"`
	SettingUpdatedAt     time.Time `gorm:"column:setting_updated_at;autoUpdateTime"`
}

func (SettingModel) TableName() string {
	return "settings"
}

// AnalyticsModel: singleton counter/series yang dipersist.
type AnalyticsModel struct {
	AnalyticsID            uint           `gorm:"column:analytics_id;primaryKey"`
	AnalyticsTotalViews    int64          `gorm:"column:analytics_total_views;default:0"`
	AnalyticsTotalUsers    int64          `gorm:"column:analytics_total_users;default:0"`
	AnalyticsEngagement    float64        `gorm:"column:analytics_engagement;default:0"`
	AnalyticsContentGrowth datatypes.JSON `gorm:"column:analytics_content_growth"` // [{week,content}]
	AnalyticsUserActivity  datatypes.JSON `gorm:"column:analytics_user_activity"`  // [{day,active}]
	AnalyticsUpdatedAt     time.Time      `gorm:"column:analytics_updated_at;autoUpdateTime"`
}

func (AnalyticsModel) TableName() string {
	return "analytics"
}
