package controller

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"linksphere_backend/internals/configs"
	"linksphere_backend/internals/features/pdfs/dto"
	"linksphere_backend/internals/features/pdfs/model"
	helper "linksphere_backend/internals/helpers"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

// Ekstensi yang diterima endpoint upload (konfigurasi, bukan protokol)
var allowedExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".json": true, ".txt": true,
}

type PdfController struct {
	DB      *gorm.DB
	Hub     *realtime.Hub
	Storage *storage.LocalStorage
}

func NewPdfController(db *gorm.DB, hub *realtime.Hub, blobStorage *storage.LocalStorage) *PdfController {
	return &PdfController{DB: db, Hub: hub, Storage: blobStorage}
}

// 🔍 List semua PDF (terbaru dulu)
func (ctrl *PdfController) GetPdfs(c *fiber.Ctx) error {
	pdfs, err := store.ListAll[model.PdfModel](ctrl.DB, "pdf_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data PDF")
	}
	return helper.JsonOK(c, "Daftar PDF", dto.ToPdfDTOs(pdfs))
}

// ⬆️ Upload PDF baru (multipart, field "pdf")
// Blob disimpan dulu dengan key unik, baru record dibuat; kalau create
// record gagal setelah blob tersimpan, blob jadi orphan (acceptable).
func (ctrl *PdfController) UploadPdf(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("pdf")
	if err != nil || fileHeader == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form (field 'pdf')")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe file tidak didukung")
	}
	if fileHeader.Size > configs.MaxUploadBytes() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file melebihi batas upload")
	}

	key, size, err := ctrl.Storage.SaveMultipart(fileHeader)
	if err != nil {
		log.Printf("[ERROR] gagal menyimpan blob: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	title := c.FormValue("title")
	if title == "" {
		title = fileHeader.Filename // fallback ke nama file asli
	}

	pdf := model.PdfModel{
		PdfTitle:       title,
		PdfDescription: c.FormValue("description"),
		PdfURL:         ctrl.Storage.URL(key),
		PdfSizeLabel:   helper.FormatSizeMB(size),
		PdfFilename:    key,
	}
	if err := store.CreateOne(ctrl.DB, &pdf); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan record PDF")
	}

	result := dto.ToPdfDTO(pdf)
	ctrl.Hub.BroadcastContent(realtime.TypePdfs, realtime.ActionAdd, result)
	return helper.JsonCreated(c, "PDF berhasil diupload", result)
}

// 🔄 Update atribut PDF (judul/deskripsi; url & filename tidak bisa diubah)
func (ctrl *PdfController) UpdatePdf(c *fiber.Ctx) error {
	id := c.Params("id")

	pdf, err := store.FindByID[model.PdfModel](ctrl.DB, "pdf_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PDF tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data PDF")
	}

	var req dto.UpdatePdfRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}

	dto.ApplyPdfUpdate(pdf, req)
	if err := store.SaveOne(ctrl.DB, pdf); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update PDF")
	}

	result := dto.ToPdfDTO(*pdf)
	ctrl.Hub.BroadcastContent(realtime.TypePdfs, realtime.ActionUpdate, result)
	return helper.JsonUpdated(c, "PDF berhasil diupdate", result)
}

// 🗑️ Hapus PDF + blob-nya (blob best-effort, tidak menggagalkan delete)
func (ctrl *PdfController) DeletePdf(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := store.DeleteByID[model.PdfModel](ctrl.DB, "pdf_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PDF tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus PDF")
	}

	if err := ctrl.Storage.Delete(deleted.PdfFilename); err != nil {
		log.Printf("[WARN] gagal hapus blob %s: %v", deleted.PdfFilename, err)
	}

	ctrl.Hub.BroadcastContent(realtime.TypePdfs, realtime.ActionDelete, fiber.Map{"id": id})
	return helper.JsonDeleted(c, "PDF berhasil dihapus", fiber.Map{"id": id})
}
