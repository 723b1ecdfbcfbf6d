package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AlertModel "linksphere_backend/internals/features/alerts/model"
	GroupModel "linksphere_backend/internals/features/groups/model"
	LinkModel "linksphere_backend/internals/features/links/model"
	NewsModel "linksphere_backend/internals/features/news/model"
	PdfModel "linksphere_backend/internals/features/pdfs/model"
	"linksphere_backend/internals/features/settings/dto"
	"linksphere_backend/internals/features/settings/service"
	helper "linksphere_backend/internals/helpers"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

type SettingsController struct {
	DB      *gorm.DB
	Hub     *realtime.Hub
	Metrics service.MetricsSource
}

func NewSettingsController(db *gorm.DB, hub *realtime.Hub, metrics service.MetricsSource) *SettingsController {
	return &SettingsController{DB: db, Hub: hub, Metrics: metrics}
}

// 🔍 Ambil settings (lazy-create dengan default)
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	setting, err := service.GetOrCreateSettings(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}
	return helper.JsonOK(c, "Settings", dto.ToSettingDTO(*setting))
}

// 🔄 Update settings (merge partial) + broadcast settings-updated
func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	setting, err := service.UpdateSettings(ctrl.DB, req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update settings")
	}

	result := dto.ToSettingDTO(*setting)
	ctrl.Hub.BroadcastEvent(realtime.EventSettingsUpdated, result)
	return helper.JsonUpdated(c, "Settings berhasil diupdate", result)
}

// 📊 Analytics: nilai persisted + angka realtime dari MetricsSource
func (ctrl *SettingsController) GetAnalytics(c *fiber.Ctx) error {
	persisted, err := service.GetOrCreateAnalytics(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil analytics")
	}

	totalContent, err := ctrl.countContent()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung konten")
	}

	result := ctrl.Metrics.Snapshot(totalContent)
	result.TotalUsers = persisted.AnalyticsTotalUsers // counter persisted, bukan simulasi
	return helper.JsonOK(c, "Analytics", result)
}

func (ctrl *SettingsController) countContent() (int64, error) {
	var total int64
	counts := []func() (int64, error){
		func() (int64, error) { return store.CountAll[LinkModel.LinkModel](ctrl.DB) },
		func() (int64, error) { return store.CountAll[PdfModel.PdfModel](ctrl.DB) },
		func() (int64, error) { return store.CountAll[NewsModel.NewsModel](ctrl.DB) },
		func() (int64, error) { return store.CountAll[AlertModel.AlertModel](ctrl.DB) },
		func() (int64, error) { return store.CountAll[GroupModel.GroupModel](ctrl.DB) },
	}
	for _, count := range counts {
		n, err := count()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
