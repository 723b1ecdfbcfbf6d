package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"linksphere_backend/internals/features/groups/dto"
	"linksphere_backend/internals/features/groups/model"
	helper "linksphere_backend/internals/helpers"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

var validate = validator.New()

type GroupController struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

func NewGroupController(db *gorm.DB, hub *realtime.Hub) *GroupController {
	return &GroupController{DB: db, Hub: hub}
}

// 🔍 List semua grup (terbaru dulu)
func (ctrl *GroupController) GetGroups(c *fiber.Ctx) error {
	groups, err := store.ListAll[model.GroupModel](ctrl.DB, "group_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}
	return helper.JsonOK(c, "Daftar grup", dto.ToGroupDTOs(groups))
}

// ➕ Buat grup baru
func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	group := dto.ToGroupModel(req)
	if err := store.CreateOne(ctrl.DB, &group); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat grup")
	}

	result := dto.ToGroupDTO(group)
	ctrl.Hub.BroadcastContent(realtime.TypeGroups, realtime.ActionAdd, result)
	return helper.JsonCreated(c, "Grup berhasil dibuat", result)
}

// 🔄 Update grup (partial)
func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	group, err := store.FindByID[model.GroupModel](ctrl.DB, "group_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grup")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dto.ApplyGroupUpdate(group, req)
	if err := store.SaveOne(ctrl.DB, group); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update grup")
	}

	result := dto.ToGroupDTO(*group)
	ctrl.Hub.BroadcastContent(realtime.TypeGroups, realtime.ActionUpdate, result)
	return helper.JsonUpdated(c, "Grup berhasil diupdate", result)
}

// 🗑️ Hapus grup
func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	id := c.Params("id")

	if _, err := store.DeleteByID[model.GroupModel](ctrl.DB, "group_id", id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus grup")
	}

	ctrl.Hub.BroadcastContent(realtime.TypeGroups, realtime.ActionDelete, fiber.Map{"id": id})
	return helper.JsonDeleted(c, "Grup berhasil dihapus", fiber.Map{"id": id})
}
