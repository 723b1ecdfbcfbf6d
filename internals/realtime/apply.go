package realtime

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

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
	SettingDTO "linksphere_backend/internals/features/settings/dto"
	settingService "linksphere_backend/internals/features/settings/service"
	"linksphere_backend/internals/store"
)

var validate = validator.New()

// handleInbound memproses frame dari subscriber. Direct channel-originated
// write memakai jalur validasi + store yang sama dengan Mutation API —
// bukan jalur yang lebih longgar.
func (h *Hub) handleInbound(raw []byte) {
	var env Envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		log.Printf("[WARN] frame websocket tidak valid: %v", err)
		return
	}

	switch env.Event {
	case EventUpdateContent:
		var upd ContentUpdate
		if err := sonic.Unmarshal(env.Data, &upd); err != nil {
			log.Printf("[WARN] payload update-content tidak valid: %v", err)
			return
		}
		if err := h.applyContentUpdate(upd); err != nil {
			log.Printf("[WARN] update-content %s/%s ditolak: %v", upd.Type, upd.Action, err)
		}

	case EventUpdateSettings:
		var req SettingDTO.UpdateSettingRequest
		if err := sonic.Unmarshal(env.Data, &req); err != nil {
			log.Printf("[WARN] payload update-settings tidak valid: %v", err)
			return
		}
		setting, err := settingService.UpdateSettings(h.db, req)
		if err != nil {
			log.Printf("[ERROR] gagal update settings via channel: %v", err)
			return
		}
		h.BroadcastEvent(EventSettingsUpdated, SettingDTO.ToSettingDTO(*setting))

	case EventUpdateAnalytics:
		var req SettingDTO.UpdateAnalyticsRequest
		if err := sonic.Unmarshal(env.Data, &req); err != nil {
			log.Printf("[WARN] payload update-analytics tidak valid: %v", err)
			return
		}
		analytics, err := settingService.UpdateAnalytics(h.db, req)
		if err != nil {
			log.Printf("[ERROR] gagal update analytics via channel: %v", err)
			return
		}
		h.BroadcastEvent(EventAnalyticsUpdated, SettingDTO.ToAnalyticsDTO(*analytics))

	default:
		log.Printf("[WARN] event tidak dikenal: %q", env.Event)
	}
}

func (h *Hub) applyContentUpdate(upd ContentUpdate) error {
	switch upd.Type {
	case TypeLinks:
		return h.applyLink(upd)
	case TypePdfs:
		return h.applyPdf(upd)
	case TypeNews:
		return h.applyNews(upd)
	case TypeAlerts:
		return h.applyAlert(upd)
	case TypeGroups:
		return h.applyGroup(upd)
	default:
		return store.NewValidationError("type", "tipe konten tidak dikenal")
	}
}

// deleteAndBroadcast: delete by id; id yang sudah tidak ada tetap
// di-broadcast — penghapusan di cache subscriber idempotent.
func (h *Hub) applyLink(upd ContentUpdate) error {
	switch upd.Action {
	case ActionAdd:
		var req LinkDTO.CreateLinkRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		if err := validate.Struct(req); err != nil {
			return err
		}
		m := LinkDTO.ToLinkModel(req)
		if err := store.CreateOne(h.db, &m); err != nil {
			return err
		}
		h.BroadcastContent(TypeLinks, ActionAdd, LinkDTO.ToLinkDTO(m))

	case ActionUpdate:
		var req LinkDTO.UpdateLinkRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		m, err := store.FindByID[LinkModel.LinkModel](h.db, "link_id", req.LinkID)
		if err != nil {
			return err // id tidak dikenal → update di-drop
		}
		LinkDTO.ApplyLinkUpdate(m, req)
		if err := store.SaveOne(h.db, m); err != nil {
			return err
		}
		h.BroadcastContent(TypeLinks, ActionUpdate, LinkDTO.ToLinkDTO(*m))

	case ActionDelete:
		var ref contentRef
		if err := sonic.Unmarshal(upd.Content, &ref); err != nil {
			return err
		}
		if _, err := store.DeleteByID[LinkModel.LinkModel](h.db, "link_id", ref.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		h.BroadcastContent(TypeLinks, ActionDelete, ref)

	default:
		return store.NewValidationError("action", "action tidak dikenal")
	}
	return nil
}

func (h *Hub) applyPdf(upd ContentUpdate) error {
	switch upd.Action {
	case ActionAdd:
		// file-bearing write wajib lewat Mutation API (multipart upload)
		return store.NewValidationError("action", "pdf hanya bisa ditambah lewat upload")

	case ActionUpdate:
		var req PdfDTO.UpdatePdfRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		m, err := store.FindByID[PdfModel.PdfModel](h.db, "pdf_id", req.PdfID)
		if err != nil {
			return err
		}
		PdfDTO.ApplyPdfUpdate(m, req)
		if err := store.SaveOne(h.db, m); err != nil {
			return err
		}
		h.BroadcastContent(TypePdfs, ActionUpdate, PdfDTO.ToPdfDTO(*m))

	case ActionDelete:
		var ref contentRef
		if err := sonic.Unmarshal(upd.Content, &ref); err != nil {
			return err
		}
		deleted, err := store.DeleteByID[PdfModel.PdfModel](h.db, "pdf_id", ref.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if deleted != nil {
			if err := h.storage.Delete(deleted.PdfFilename); err != nil {
				log.Printf("[WARN] gagal hapus blob %s: %v", deleted.PdfFilename, err)
			}
		}
		h.BroadcastContent(TypePdfs, ActionDelete, ref)

	default:
		return store.NewValidationError("action", "action tidak dikenal")
	}
	return nil
}

func (h *Hub) applyNews(upd ContentUpdate) error {
	switch upd.Action {
	case ActionAdd:
		var req NewsDTO.CreateNewsRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		if err := validate.Struct(req); err != nil {
			return err
		}
		m := NewsDTO.ToNewsModel(req)
		if err := store.CreateOne(h.db, &m); err != nil {
			return err
		}
		h.BroadcastContent(TypeNews, ActionAdd, NewsDTO.ToNewsDTO(m))

	case ActionUpdate:
		var req NewsDTO.UpdateNewsRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		m, err := store.FindByID[NewsModel.NewsModel](h.db, "news_id", req.NewsID)
		if err != nil {
			return err
		}
		NewsDTO.ApplyNewsUpdate(m, req)
		if err := store.SaveOne(h.db, m); err != nil {
			return err
		}
		h.BroadcastContent(TypeNews, ActionUpdate, NewsDTO.ToNewsDTO(*m))

	case ActionDelete:
		var ref contentRef
		if err := sonic.Unmarshal(upd.Content, &ref); err != nil {
			return err
		}
		if _, err := store.DeleteByID[NewsModel.NewsModel](h.db, "news_id", ref.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		h.BroadcastContent(TypeNews, ActionDelete, ref)

	default:
		return store.NewValidationError("action", "action tidak dikenal")
	}
	return nil
}

func (h *Hub) applyAlert(upd ContentUpdate) error {
	switch upd.Action {
	case ActionAdd:
		var req AlertDTO.CreateAlertRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		if err := validate.Struct(req); err != nil {
			return err
		}
		m := AlertDTO.ToAlertModel(req)
		if err := store.CreateOne(h.db, &m); err != nil {
			return err
		}
		h.BroadcastContent(TypeAlerts, ActionAdd, AlertDTO.ToAlertDTO(m))

	case ActionUpdate:
		var req AlertDTO.UpdateAlertRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		if err := validate.Struct(req); err != nil {
			return err
		}
		m, err := store.FindByID[AlertModel.AlertModel](h.db, "alert_id", req.AlertID)
		if err != nil {
			return err
		}
		AlertDTO.ApplyAlertUpdate(m, req)
		if err := store.SaveOne(h.db, m); err != nil {
			return err
		}
		h.BroadcastContent(TypeAlerts, ActionUpdate, AlertDTO.ToAlertDTO(*m))

	case ActionDelete:
		var ref contentRef
		if err := sonic.Unmarshal(upd.Content, &ref); err != nil {
			return err
		}
		if _, err := store.DeleteByID[AlertModel.AlertModel](h.db, "alert_id", ref.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		h.BroadcastContent(TypeAlerts, ActionDelete, ref)

	default:
		return store.NewValidationError("action", "action tidak dikenal")
	}
	return nil
}

func (h *Hub) applyGroup(upd ContentUpdate) error {
	switch upd.Action {
	case ActionAdd:
		var req GroupDTO.CreateGroupRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		if err := validate.Struct(req); err != nil {
			return err
		}
		m := GroupDTO.ToGroupModel(req)
		if err := store.CreateOne(h.db, &m); err != nil {
			return err
		}
		h.BroadcastContent(TypeGroups, ActionAdd, GroupDTO.ToGroupDTO(m))

	case ActionUpdate:
		var req GroupDTO.UpdateGroupRequest
		if err := sonic.Unmarshal(upd.Content, &req); err != nil {
			return err
		}
		if err := validate.Struct(req); err != nil {
			return err
		}
		m, err := store.FindByID[GroupModel.GroupModel](h.db, "group_id", req.GroupID)
		if err != nil {
			return err
		}
		GroupDTO.ApplyGroupUpdate(m, req)
		if err := store.SaveOne(h.db, m); err != nil {
			return err
		}
		h.BroadcastContent(TypeGroups, ActionUpdate, GroupDTO.ToGroupDTO(*m))

	case ActionDelete:
		var ref contentRef
		if err := sonic.Unmarshal(upd.Content, &ref); err != nil {
			return err
		}
		if _, err := store.DeleteByID[GroupModel.GroupModel](h.db, "group_id", ref.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		h.BroadcastContent(TypeGroups, ActionDelete, ref)

	default:
		return store.NewValidationError("action", "action tidak dikenal")
	}
	return nil
}
