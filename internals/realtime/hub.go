package realtime

import (
	"log"

	"github.com/bytedance/sonic"
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
	SettingDTO "linksphere_backend/internals/features/settings/dto"
	settingService "linksphere_backend/internals/features/settings/service"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/store"
)

// Hub adalah Broadcast Channel: satu goroutine Run memegang daftar
// subscriber, mendorong snapshot saat connect, dan fan-out setiap event
// mutasi ke semua subscriber (termasuk originator).
type Hub struct {
	db      *gorm.DB
	storage *storage.LocalStorage

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	clients map[*Client]struct{}
	quit    chan struct{}
	done    chan struct{}
}

func NewHub(db *gorm.DB, blobStorage *storage.LocalStorage) *Hub {
	return &Hub{
		db:         db,
		storage:    blobStorage,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*Client]struct{}),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			// snapshot hanya ke subscriber baru
			if msg, err := h.snapshotMessage(); err == nil {
				client.enqueue(msg)
			} else {
				log.Printf("[ERROR] gagal membangun snapshot: %v", err)
			}
			log.Printf("[INFO] Subscriber terhubung (total %d)", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("[INFO] Subscriber terputus (total %d)", len(h.clients))
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.enqueue(msg) {
					// queue penuh → drop subscriber; reconnect akan re-snapshot
					delete(h.clients, client)
					close(client.send)
				}
			}

		case <-h.quit:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Stop menghentikan loop hub dan memutus semua subscriber.
func (h *Hub) Stop() {
	close(h.quit)
	<-h.done
}

// BroadcastEvent mengirim {event, data} ke semua subscriber.
func (h *Hub) BroadcastEvent(event string, data interface{}) {
	raw, err := sonic.Marshal(data)
	if err != nil {
		log.Printf("[ERROR] gagal marshal event %s: %v", event, err)
		return
	}
	msg, err := sonic.Marshal(Envelope{Event: event, Data: raw})
	if err != nil {
		log.Printf("[ERROR] gagal marshal envelope %s: %v", event, err)
		return
	}
	select {
	case h.broadcast <- msg:
	case <-h.quit:
	}
}

// BroadcastContent mengirim content-updated {type, action, content}.
func (h *Hub) BroadcastContent(contentType, action string, content interface{}) {
	h.BroadcastEvent(EventContentUpdated, ContentEvent{
		Type:    contentType,
		Action:  action,
		Content: content,
	})
}

// BuildSnapshot membaca list() semua koleksi + settings + analytics.
func (h *Hub) BuildSnapshot() (*Snapshot, error) {
	links, err := store.ListAll[LinkModel.LinkModel](h.db, "link_created_at DESC")
	if err != nil {
		return nil, err
	}
	pdfs, err := store.ListAll[PdfModel.PdfModel](h.db, "pdf_created_at DESC")
	if err != nil {
		return nil, err
	}
	news, err := store.ListAll[NewsModel.NewsModel](h.db, "news_created_at DESC")
	if err != nil {
		return nil, err
	}
	alerts, err := store.ListAll[AlertModel.AlertModel](h.db, "alert_created_at DESC")
	if err != nil {
		return nil, err
	}
	groups, err := store.ListAll[GroupModel.GroupModel](h.db, "group_created_at DESC")
	if err != nil {
		return nil, err
	}
	setting, err := settingService.GetOrCreateSettings(h.db)
	if err != nil {
		return nil, err
	}
	analytics, err := settingService.GetOrCreateAnalytics(h.db)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Links:     LinkDTO.ToLinkDTOs(links),
		Pdfs:      PdfDTO.ToPdfDTOs(pdfs),
		News:      NewsDTO.ToNewsDTOs(news),
		Alerts:    AlertDTO.ToAlertDTOs(alerts),
		Groups:    GroupDTO.ToGroupDTOs(groups),
		Settings:  SettingDTO.ToSettingDTO(*setting),
		Analytics: SettingDTO.ToAnalyticsDTO(*analytics),
	}, nil
}

func (h *Hub) snapshotMessage() ([]byte, error) {
	snapshot, err := h.BuildSnapshot()
	if err != nil {
		return nil, err
	}
	raw, err := sonic.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	return sonic.Marshal(Envelope{Event: EventInitialData, Data: raw})
}
