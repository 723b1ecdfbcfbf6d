package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"linksphere_backend/internals/features/alerts/dto"
	"linksphere_backend/internals/features/alerts/model"
	helper "linksphere_backend/internals/helpers"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

var validate = validator.New()

type AlertController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewAlertController(db *gorm.DB, hub *realtime.Hub) *AlertController {
	return &AlertController{DB: db, Hub: hub}
}

// 🔍 List semua alert (terbaru dulu)
func (ctrl *AlertController) GetAlerts(c *fiber.Ctx) error {
	alerts, err := store.ListAll[model.AlertModel](ctrl.DB, "alert_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alert")
	}
	return helper.JsonOK(c, "Daftar alert", dto.ToAlertDTOs(alerts))
}

// ➕ Buat alert baru (type default info, priority default medium)
func (ctrl *AlertController) CreateAlert(c *fiber.Ctx) error {
	var req dto.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	alert := dto.ToAlertModel(req)
	if err := store.CreateOne(ctrl.DB, &alert); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat alert")
	}

	result := dto.ToAlertDTO(alert)
	ctrl.Hub.BroadcastContent(realtime.TypeAlerts, realtime.ActionAdd, result)
	return helper.JsonCreated(c, "Alert berhasil dibuat", result)
}

// 🔄 Update alert (partial)
func (ctrl *AlertController) UpdateAlert(c *fiber.Ctx) error {
	id := c.Params("id")

	alert, err := store.FindByID[model.AlertModel](ctrl.DB, "alert_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alert tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alert")
	}

	var req dto.UpdateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dto.ApplyAlertUpdate(alert, req)
	if err := store.SaveOne(ctrl.DB, alert); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update alert")
	}

	result := dto.ToAlertDTO(*alert)
	ctrl.Hub.BroadcastContent(realtime.TypeAlerts, realtime.ActionUpdate, result)
	return helper.JsonUpdated(c, "Alert berhasil diupdate", result)
}

// 🗑️ Hapus alert
func (ctrl *AlertController) DeleteAlert(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := store.DeleteByID[model.AlertModel](ctrl.DB, "alert_id", id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alert tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus alert")
	}

	ctrl.Hub.BroadcastContent(realtime.TypeAlerts, realtime.ActionDelete, fiber.Map{"id": id})
	return helper.JsonDeleted(c, "Alert berhasil dihapus", fiber.Map{"id": id})
}
