package dto

import (
	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"linksphere_backend/internals/features/settings/model"
)

// ============================
// Settings
// ============================
type SettingDTO struct {
	SiteName      string `json:"siteName"`
	AdminPin      string `json:"adminPin"`
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
}

type UpdateSettingRequest struct {
	SiteName      *string `json:"siteName"`
	AdminPin      *string `json:"adminPin"`
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
}

func ToSettingDTO(m model.SettingModel) SettingDTO {
	return SettingDTO{
		SiteName:      m.SettingSiteName,
		AdminPin:      m.SettingAdminPin,
		Theme:         m.SettingTheme,
		Notifications: m.SettingNotifications,
	}
}

func ApplySettingUpdate(m *model.SettingModel, req UpdateSettingRequest) {
	if req.SiteName != nil && *req.SiteName != "" {
		m.SettingSiteName = *req.SiteName
	}
	if req.AdminPin != nil && *req.AdminPin != "" {
		m.SettingAdminPin = *req.AdminPin
	}
	if req.Theme != nil && *req.Theme != "" {
		m.SettingTheme = *req.Theme
	}
	if req.Notifications != nil {
		m.SettingNotifications = *req.Notifications
	}
}

// ============================
// Analytics
// ============================
type GrowthPoint struct {
	Week    int `json:"week"`
	Content int `json:"content"`
}

type ActivityPoint struct {
	Day    string `json:"day"`
	Active int    `json:"active"`
}

type AnalyticsDTO struct {
	TotalViews    int64           `json:"totalViews"`
	TotalUsers    int64           `json:"totalUsers"`
	ActiveUsers   int64           `json:"activeUsers,omitempty"`
	Engagement    float64         `json:"engagement"`
	TotalContent  int64           `json:"totalContent"`
	ContentGrowth []GrowthPoint   `json:"contentGrowth"`
	UserActivity  []ActivityPoint `json:"userActivity"`
}

type UpdateAnalyticsRequest struct {
	TotalViews *int64   `json:"totalViews"`
	TotalUsers *int64   `json:"totalUsers"`
	Engagement *float64 `json:"engagement"`
}

func seriesToJSON(v any) datatypes.JSON {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func GrowthToJSON(points []GrowthPoint) datatypes.JSON {
	if points == nil {
		points = []GrowthPoint{}
	}
	return seriesToJSON(points)
}

func ActivityToJSON(points []ActivityPoint) datatypes.JSON {
	if points == nil {
		points = []ActivityPoint{}
	}
	return seriesToJSON(points)
}

func ToAnalyticsDTO(m model.AnalyticsModel) AnalyticsDTO {
	growth := []GrowthPoint{}
	if len(m.AnalyticsContentGrowth) > 0 {
		_ = sonic.Unmarshal(m.AnalyticsContentGrowth, &growth)
	}
	activity := []ActivityPoint{}
	if len(m.AnalyticsUserActivity) > 0 {
		_ = sonic.Unmarshal(m.AnalyticsUserActivity, &activity)
	}
	return AnalyticsDTO{
		TotalViews:    m.AnalyticsTotalViews,
		TotalUsers:    m.AnalyticsTotalUsers,
		Engagement:    m.AnalyticsEngagement,
		ContentGrowth: growth,
		UserActivity:  activity,
	}
}

func ApplyAnalyticsUpdate(m *model.AnalyticsModel, req UpdateAnalyticsRequest) {
	if req.TotalViews != nil {
		m.AnalyticsTotalViews = *req.TotalViews
	}
	if req.TotalUsers != nil {
		m.AnalyticsTotalUsers = *req.TotalUsers
	}
	if req.Engagement != nil {
		m.AnalyticsEngagement = *req.Engagement
	}
}
