package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"linksphere_backend/internals/features/news/dto"
	"linksphere_backend/internals/features/news/model"
	helper "linksphere_backend/internals/helpers"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
	"linksphere_backend/internals/store"
)

type NewsController struct {
	DB      *gorm.DB
	Hub     *realtime.Hub
	Storage *storage.LocalStorage
}

func NewNewsController(db *gorm.DB, hub *realtime.Hub, blobStorage *storage.LocalStorage) *NewsController {
	return &NewsController{DB: db, Hub: hub, Storage: blobStorage}
}

// 🔍 List semua berita (terbaru dulu)
func (ctrl *NewsController) GetNews(c *fiber.Ctx) error {
	news, err := store.ListAll[model.NewsModel](ctrl.DB, "news_created_at DESC")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data berita")
	}
	return helper.JsonOK(c, "Daftar berita", dto.ToNewsDTOs(news))
}

// saveImage: file gambar dikonversi ke webp dulu baru disimpan ke storage.
func (ctrl *NewsController) saveImage(c *fiber.Ctx) (*string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return nil, nil // tidak ada file, bukan error
	}

	data, name, err := helper.ConvertImageToWebP(fileHeader)
	if err != nil {
		return nil, err
	}
	key, _, err := ctrl.Storage.SaveBytes(name, data)
	if err != nil {
		return nil, err
	}
	imageURL := ctrl.Storage.URL(key)
	return &imageURL, nil
}

// deleteOldImage: hapus blob lama kalau image sebelumnya hasil upload lokal.
func (ctrl *NewsController) deleteOldImage(image *string) {
	if image == nil || !strings.HasPrefix(*image, "/uploads/") {
		return
	}
	key := strings.TrimPrefix(*image, "/uploads/")
	if err := ctrl.Storage.Delete(key); err != nil {
		log.Printf("[WARN] gagal hapus blob gambar %s: %v", key, err)
	}
}

// ➕ Buat berita (multipart: title/excerpt/content/url + optional image)
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	title := c.FormValue("title")
	excerpt := c.FormValue("excerpt")
	if title == "" || excerpt == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Judul dan excerpt wajib diisi")
	}

	req := dto.CreateNewsRequest{
		NewsTitle:   title,
		NewsExcerpt: excerpt,
		NewsContent: c.FormValue("content"),
	}
	if v := c.FormValue("url"); v != "" {
		req.NewsURL = &v
	}

	news := dto.ToNewsModel(req)

	if image, err := ctrl.saveImage(c); err != nil {
		log.Printf("[ERROR] gagal menyimpan gambar: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	} else if image != nil {
		news.NewsImage = image
	} else if v := c.FormValue("image"); v != "" {
		news.NewsImage = &v // URL eksternal
	}

	if err := store.CreateOne(ctrl.DB, &news); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat berita")
	}

	result := dto.ToNewsDTO(news)
	ctrl.Hub.BroadcastContent(realtime.TypeNews, realtime.ActionAdd, result)
	return helper.JsonCreated(c, "Berita berhasil dibuat", result)
}

// 🔄 Update berita (multipart partial; field kosong tidak diubah)
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	news, err := store.FindByID[model.NewsModel](ctrl.DB, "news_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data berita")
	}

	if v := c.FormValue("title"); v != "" {
		news.NewsTitle = v
	}
	if v := c.FormValue("excerpt"); v != "" {
		news.NewsExcerpt = v
	}
	if v := c.FormValue("content"); v != "" {
		news.NewsContent = v
	}
	if v := c.FormValue("url"); v != "" {
		news.NewsURL = &v
	}

	// 🖼️ Gambar baru menggantikan yang lama
	if image, err := ctrl.saveImage(c); err != nil {
		log.Printf("[ERROR] gagal menyimpan gambar baru: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar baru")
	} else if image != nil {
		ctrl.deleteOldImage(news.NewsImage)
		news.NewsImage = image
	} else if v := c.FormValue("image"); v != "" {
		news.NewsImage = &v
	}

	if err := store.SaveOne(ctrl.DB, news); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update berita")
	}

	result := dto.ToNewsDTO(*news)
	ctrl.Hub.BroadcastContent(realtime.TypeNews, realtime.ActionUpdate, result)
	return helper.JsonUpdated(c, "Berita berhasil diupdate", result)
}

// 🗑️ Hapus berita (+ blob gambar upload, best-effort)
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := store.DeleteByID[model.NewsModel](ctrl.DB, "news_id", id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Berita tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus berita")
	}

	ctrl.deleteOldImage(deleted.NewsImage)

	ctrl.Hub.BroadcastContent(realtime.TypeNews, realtime.ActionDelete, fiber.Map{"id": id})
	return helper.JsonDeleted(c, "Berita berhasil dihapus", fiber.Map{"id": id})
}
