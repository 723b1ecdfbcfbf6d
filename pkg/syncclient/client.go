// Package syncclient adalah Client Synchronization Layer: cache lokal semua
// koleksi + koneksi ke Broadcast Channel + akses Mutation API via REST.
//
// Alur: saat start, LoadSnapshot (REST /api/data) mengisi cache kalau belum
// terhubung; begitu Connect berhasil, snapshot initial-data dari channel
// menggantikan baseline, dan setiap content-updated di-apply ke cache.
// Event hasil write sendiri tidak diperlakukan khusus — idempotensi cache
// yang membuatnya aman.
package syncclient

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	AlertDTO "linksphere_backend/internals/features/alerts/dto"
	GroupDTO "linksphere_backend/internals/features/groups/dto"
	LinkDTO "linksphere_backend/internals/features/links/dto"
	NewsDTO "linksphere_backend/internals/features/news/dto"
	PdfDTO "linksphere_backend/internals/features/pdfs/dto"
	SettingDTO "linksphere_backend/internals/features/settings/dto"
	"linksphere_backend/internals/realtime"
)

const (
	dialTimeout    = 10 * time.Second
	requestTimeout = 10 * time.Second
	pongWait       = 60 * time.Second
)

type Client struct {
	baseURL string
	httpc   *http.Client

	Links  *Cache[LinkDTO.LinkDTO]
	Pdfs   *Cache[PdfDTO.PdfDTO]
	News   *Cache[NewsDTO.NewsDTO]
	Alerts *Cache[AlertDTO.AlertDTO]
	Groups *Cache[GroupDTO.GroupDTO]

	mu        sync.RWMutex
	settings  SettingDTO.SettingDTO
	analytics SettingDTO.AnalyticsDTO

	connMu    sync.Mutex
	conn      *websocket.Conn
	connected atomic.Bool
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
		Links:   NewCache(func(d LinkDTO.LinkDTO) string { return d.LinkID }),
		Pdfs:    NewCache(func(d PdfDTO.PdfDTO) string { return d.PdfID }),
		News:    NewCache(func(d NewsDTO.NewsDTO) string { return d.NewsID }),
		Alerts:  NewCache(func(d AlertDTO.AlertDTO) string { return d.AlertID }),
		Groups:  NewCache(func(d GroupDTO.GroupDTO) string { return d.GroupID }),
	}
}

// Connected: state koneksi channel, diekspos ke layer presentasi.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

func (c *Client) wsURL() string {
	url := c.baseURL
	url = strings.Replace(url, "https://", "wss://", 1)
	url = strings.Replace(url, "http://", "ws://", 1)
	return url + "/ws"
}

// Connect dial ke Broadcast Channel dan mulai menerima event di goroutine
// terpisah. Snapshot initial-data dari server menjadi baseline cache.
func (c *Client) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	conn, _, err := dialer.DialContext(ctx, c.wsURL(), nil)
	if err != nil {
		return err
	}

	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()
	c.connected.Store(true)

	go c.readLoop(conn)
	return nil
}

func (c *Client) Close() error {
	c.connected.Store(false)
	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer func() {
		c.connected.Store(false)
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			// reconnect harus re-fetch snapshot penuh, bukan mengandalkan
			// kontinuitas event
			return
		}
		c.applyMessage(raw)
	}
}

func (c *Client) applyMessage(raw []byte) {
	var env realtime.Envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		log.Printf("[WARN] frame tidak valid dari server: %v", err)
		return
	}

	switch env.Event {
	case realtime.EventInitialData:
		var snapshot realtime.Snapshot
		if err := sonic.Unmarshal(env.Data, &snapshot); err != nil {
			log.Printf("[WARN] snapshot tidak valid: %v", err)
			return
		}
		c.Links.Replace(snapshot.Links)
		c.Pdfs.Replace(snapshot.Pdfs)
		c.News.Replace(snapshot.News)
		c.Alerts.Replace(snapshot.Alerts)
		c.Groups.Replace(snapshot.Groups)
		c.mu.Lock()
		c.settings = snapshot.Settings
		c.analytics = snapshot.Analytics
		c.mu.Unlock()

	case realtime.EventContentUpdated:
		var evt struct {
			Type    string          `json:"type"`
			Action  string          `json:"action"`
			Content json.RawMessage `json:"content"`
		}
		if err := sonic.Unmarshal(env.Data, &evt); err != nil {
			log.Printf("[WARN] event content-updated tidak valid: %v", err)
			return
		}
		c.applyContent(evt.Type, evt.Action, evt.Content)

	case realtime.EventSettingsUpdated:
		var settings SettingDTO.SettingDTO
		if err := sonic.Unmarshal(env.Data, &settings); err != nil {
			return
		}
		c.mu.Lock()
		c.settings = settings
		c.mu.Unlock()

	case realtime.EventAnalyticsUpdated:
		var analytics SettingDTO.AnalyticsDTO
		if err := sonic.Unmarshal(env.Data, &analytics); err != nil {
			return
		}
		c.mu.Lock()
		c.analytics = analytics
		c.mu.Unlock()
	}
}

func applyToCache[T any](cache *Cache[T], action string, content json.RawMessage) {
	switch action {
	case realtime.ActionAdd, realtime.ActionUpdate:
		var item T
		if err := sonic.Unmarshal(content, &item); err != nil {
			log.Printf("[WARN] content event tidak valid: %v", err)
			return
		}
		if action == realtime.ActionAdd {
			cache.Add(item)
		} else {
			cache.Update(item)
		}
	case realtime.ActionDelete:
		var ref struct {
			ID string `json:"id"`
		}
		if err := sonic.Unmarshal(content, &ref); err != nil {
			return
		}
		cache.Remove(ref.ID)
	}
}

func (c *Client) applyContent(contentType, action string, content json.RawMessage) {
	switch contentType {
	case realtime.TypeLinks:
		applyToCache(c.Links, action, content)
	case realtime.TypePdfs:
		applyToCache(c.Pdfs, action, content)
	case realtime.TypeNews:
		applyToCache(c.News, action, content)
	case realtime.TypeAlerts:
		applyToCache(c.Alerts, action, content)
	case realtime.TypeGroups:
		applyToCache(c.Groups, action, content)
	}
}

func (c *Client) Settings() SettingDTO.SettingDTO {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

func (c *Client) Analytics() SettingDTO.AnalyticsDTO {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.analytics
}

// ============================
// Direct channel-originated writes (atribut saja, tanpa file)
// ============================

func (c *Client) emit(event string, data interface{}) error {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return err
	}
	msg, err := sonic.Marshal(realtime.Envelope{Event: event, Data: raw})
	if err != nil {
		return err
	}

	c.connMu.Lock()
	defer c.connMu.Unlock()
	if c.conn == nil || !c.connected.Load() {
		return ErrNotConnected
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// EmitContentUpdate mengirim mutasi langsung lewat channel; hasilnya
// kembali sebagai event content-updated ke semua subscriber (termasuk kita).
func (c *Client) EmitContentUpdate(contentType, action string, content interface{}) error {
	raw, err := sonic.Marshal(content)
	if err != nil {
		return err
	}
	return c.emit(realtime.EventUpdateContent, realtime.ContentUpdate{
		Type:    contentType,
		Action:  action,
		Content: raw,
	})
}

func (c *Client) EmitSettingsUpdate(req SettingDTO.UpdateSettingRequest) error {
	return c.emit(realtime.EventUpdateSettings, req)
}

func (c *Client) EmitAnalyticsUpdate(req SettingDTO.UpdateAnalyticsRequest) error {
	return c.emit(realtime.EventUpdateAnalytics, req)
}
