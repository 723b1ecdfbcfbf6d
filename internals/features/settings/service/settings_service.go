package service

import (
	"errors"

	"gorm.io/gorm"

	"linksphere_backend/internals/configs"
	"linksphere_backend/internals/features/settings/dto"
	"linksphere_backend/internals/features/settings/model"
)

const singletonID = 1

// GetOrCreateSettings: lazy-create baris settings dengan default saat
// pertama kali dibaca. Selalu tepat satu instance.
func GetOrCreateSettings(db *gorm.DB) (*model.SettingModel, error) {
	var setting model.SettingModel
	err := db.First(&setting, "setting_id = ?", singletonID).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	setting = model.SettingModel{
		SettingID:            singletonID,
		SettingSiteName:      configs.SiteName,
		SettingAdminPin:      configs.DefaultPin,
		SettingTheme:         configs.DefaultTheme,
		SettingNotifications: true,
	}
	if err := db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpdateSettings merge partial lalu persist. Mengembalikan hasil akhir.
func UpdateSettings(db *gorm.DB, req dto.UpdateSettingRequest) (*model.SettingModel, error) {
	setting, err := GetOrCreateSettings(db)
	if err != nil {
		return nil, err
	}
	dto.ApplySettingUpdate(setting, req)
	if err := db.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}

func GetOrCreateAnalytics(db *gorm.DB) (*model.AnalyticsModel, error) {
	var analytics model.AnalyticsModel
	err := db.First(&analytics, "analytics_id = ?", singletonID).Error
	if err == nil {
		return &analytics, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	analytics = model.AnalyticsModel{
		AnalyticsID:            singletonID,
		AnalyticsContentGrowth: dto.GrowthToJSON(nil),
		AnalyticsUserActivity:  dto.ActivityToJSON(nil),
	}
	if err := db.Create(&analytics).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}

func UpdateAnalytics(db *gorm.DB, req dto.UpdateAnalyticsRequest) (*model.AnalyticsModel, error) {
	analytics, err := GetOrCreateAnalytics(db)
	if err != nil {
		return nil, err
	}
	dto.ApplyAnalyticsUpdate(analytics, req)
	if err := db.Save(analytics).Error; err != nil {
		return nil, err
	}
	return analytics, nil
}
