package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"linksphere_backend/internals/features/links/dto"
	"linksphere_backend/internals/features/links/model"
	helper "linksphere_backend/internals/helpers"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

var validate = validator.New()

type LinkController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewLinkController(db *gorm.DB, hub *realtime.Hub) *LinkController {
	return &LinkController{DB: db, Hub: hub}
}

// 🔍 List semua link (terbaru dulu)
func (ctrl *LinkController) GetLinks(c *fiber.Ctx) error {
	links, err := store.ListAll[model.LinkModel](ctrl.DB, "link_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data link")
	}
	return helper.JsonOK(c, "Daftar link", dto.ToLinkDTOs(links))
}

// ➕ Buat link baru
func (ctrl *LinkController) CreateLink(c *fiber.Ctx) error {
	var req dto.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	link := dto.ToLinkModel(req)
	if err := store.CreateOne(ctrl.DB, &link); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat link")
	}

	result := dto.ToLinkDTO(link)
	ctrl.Hub.BroadcastContent(realtime.TypeLinks, realtime.ActionAdd, result)
	return helper.JsonCreated(c, "Link berhasil dibuat", result)
}

// 🔄 Update link (partial)
func (ctrl *LinkController) UpdateLink(c *fiber.Ctx) error {
	id := c.Params("id")

	link, err := store.FindByID[model.LinkModel](ctrl.DB, "link_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Link tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data link")
	}

	var req dto.UpdateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	dto.ApplyLinkUpdate(link, req)
	if err := store.SaveOne(ctrl.DB, link); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update link")
	}

	result := dto.ToLinkDTO(*link)
	ctrl.Hub.BroadcastContent(realtime.TypeLinks, realtime.ActionUpdate, result)
	return helper.JsonUpdated(c, "Link berhasil diupdate", result)
}

// 🗑️ Hapus link
func (ctrl *LinkController) DeleteLink(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := store.DeleteByID[model.LinkModel](ctrl.DB, "link_id", id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Link tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus link")
	}

	ctrl.Hub.BroadcastContent(realtime.TypeLinks, realtime.ActionDelete, fiber.Map{"id": id})
	return helper.JsonDeleted(c, "Link berhasil dihapus", fiber.Map{"id": id})
}
