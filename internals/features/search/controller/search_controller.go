package controller

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AlertDTO "linksphere_backend/internals/features/alerts/dto"
	AlertModel "linksphere_backend/internals/features/alerts/model"
	GroupDTO "linksphere_backend/internals/features/groups/dto"
	GroupModel "linksphere_backend/internals/features/groups/model"
	LinkDTO "linksphere_backend/internals/features/links/dto"
	LinkModel "linksphere_backend/internals/features/links/model"
	NewsDTO "linksphere_backend/internals/features/news/dto"
	NewsModel "linksphere_backend/internals/features/news/model"
	PdfDTO "linksphere_backend/internals/features/pdfs/dto"
	PdfModel "linksphere_backend/internals/features/pdfs/model"
	"linksphere_backend/internals/features/search/dto"
	helper "linksphere_backend/internals/helpers"
	"linksphere_backend/internals/store"
)

type SearchController struct {
	DB *gorm.DB
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{DB: db}
}

// tagged: flatten DTO jadi map + tag "type" singular.
func tagged(record interface{}, typeTag string) dto.SearchResultItem {
	item := dto.SearchResultItem{}
	if raw, err := sonic.Marshal(record); err == nil {
		_ = sonic.Unmarshal(raw, &item)
	}
	item["type"] = typeTag
	return item
}

// 🔎 Cari konten: substring case-insensitive per tipe.
// Query kosong sengaja mengembalikan hasil kosong, bukan seluruh store.
func (ctrl *SearchController) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	typeFilter := c.Query("type", "all")

	results := []dto.SearchResultItem{}
	if query == "" {
		return helper.JsonOK(c, "Hasil pencarian", results)
	}

	if typeFilter == "all" || typeFilter == "links" {
		links, err := store.SearchColumns[LinkModel.LinkModel](ctrl.DB, query, "link_title", "link_description")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari link")
		}
		for _, m := range links {
			results = append(results, tagged(LinkDTO.ToLinkDTO(m), "link"))
		}
	}

	if typeFilter == "all" || typeFilter == "news" {
		news, err := store.SearchColumns[NewsModel.NewsModel](ctrl.DB, query, "news_title", "news_excerpt")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari berita")
		}
		for _, m := range news {
			results = append(results, tagged(NewsDTO.ToNewsDTO(m), "news"))
		}
	}

	if typeFilter == "all" || typeFilter == "pdfs" {
		pdfs, err := store.SearchColumns[PdfModel.PdfModel](ctrl.DB, query, "pdf_title")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari PDF")
		}
		for _, m := range pdfs {
			results = append(results, tagged(PdfDTO.ToPdfDTO(m), "pdf"))
		}
	}

	if typeFilter == "all" || typeFilter == "alerts" {
		alerts, err := store.SearchColumns[AlertModel.AlertModel](ctrl.DB, query, "alert_title", "alert_message")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari alert")
		}
		for _, m := range alerts {
			results = append(results, tagged(AlertDTO.ToAlertDTO(m), "alert"))
		}
	}

	if typeFilter == "all" || typeFilter == "groups" {
		groups, err := store.SearchColumns[GroupModel.GroupModel](ctrl.DB, query, "group_name", "group_description")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari grup")
		}
		for _, m := range groups {
			results = append(results, tagged(GroupDTO.ToGroupDTO(m), "group"))
		}
	}

	return helper.JsonOK(c, "Hasil pencarian", results)
}
