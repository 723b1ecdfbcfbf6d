package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"

	AlertDTO "linksphere_backend/internals/features/alerts/dto"
	GroupDTO "linksphere_backend/internals/features/groups/dto"
	LinkDTO "linksphere_backend/internals/features/links/dto"
	NewsDTO "linksphere_backend/internals/features/news/dto"
	PdfDTO "linksphere_backend/internals/features/pdfs/dto"
	SettingDTO "linksphere_backend/internals/features/settings/dto"
	"linksphere_backend/internals/realtime"
)

var ErrNotConnected = errors.New("belum terhubung ke broadcast channel")

// APIError: response error terstruktur dari Mutation API ({error, details?}).
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

type apiEnvelope struct {
	Code    int             `json:"code"`
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Timeout di httpc; kalau kena timeout, outcome operasi tidak diketahui —
	// caller harus reconcile via LoadSnapshot, jangan retry create buta.
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env apiEnvelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("response tidak valid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return &APIError{Code: resp.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		return sonic.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, "application/json", reader, out)
}

// ============================
// Aggregate snapshot (fallback sebelum channel terhubung)
// ============================

// LoadSnapshot mengisi cache dari GET /api/data. Dipakai saat start atau
// untuk reconcile setelah koneksi putus; snapshot channel akan
// menggantikannya begitu terhubung.
func (c *Client) LoadSnapshot(ctx context.Context) error {
	var snapshot realtime.Snapshot
	if err := c.doJSON(ctx, http.MethodGet, "/api/data", nil, &snapshot); err != nil {
		return err
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
	return nil
}

// ============================
// Links
// ============================

func (c *Client) CreateLink(ctx context.Context, req LinkDTO.CreateLinkRequest) (*LinkDTO.LinkDTO, error) {
	var out LinkDTO.LinkDTO
	if err := c.doJSON(ctx, http.MethodPost, "/api/links", req, &out); err != nil {
		return nil, err
	}
	// Saat disconnected tidak ada broadcast yang akan datang; response REST
	// adalah otoritatif, apply langsung ke cache (idempotent thd broadcast).
	if !c.Connected() {
		c.Links.Add(out)
	}
	return &out, nil
}

func (c *Client) UpdateLink(ctx context.Context, id string, req LinkDTO.UpdateLinkRequest) (*LinkDTO.LinkDTO, error) {
	var out LinkDTO.LinkDTO
	if err := c.doJSON(ctx, http.MethodPut, "/api/links/"+id, req, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Links.Update(out)
	}
	return &out, nil
}

func (c *Client) DeleteLink(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/links/"+id, nil, nil); err != nil {
		return err
	}
	if !c.Connected() {
		c.Links.Remove(id)
	}
	return nil
}

// ============================
// Pdfs (file-bearing: selalu lewat REST, bukan channel)
// ============================

func (c *Client) UploadPdf(ctx context.Context, filename, title, description string, file io.Reader) (*PdfDTO.PdfDTO, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("pdf", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if title != "" {
		_ = form.WriteField("title", title)
	}
	if description != "" {
		_ = form.WriteField("description", description)
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	var out PdfDTO.PdfDTO
	if err := c.do(ctx, http.MethodPost, "/api/pdfs", form.FormDataContentType(), &buf, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Pdfs.Add(out)
	}
	return &out, nil
}

func (c *Client) UpdatePdf(ctx context.Context, id string, req PdfDTO.UpdatePdfRequest) (*PdfDTO.PdfDTO, error) {
	var out PdfDTO.PdfDTO
	if err := c.doJSON(ctx, http.MethodPut, "/api/pdfs/"+id, req, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Pdfs.Update(out)
	}
	return &out, nil
}

func (c *Client) DeletePdf(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/pdfs/"+id, nil, nil); err != nil {
		return err
	}
	if !c.Connected() {
		c.Pdfs.Remove(id)
	}
	return nil
}

// ============================
// News (multipart: field teks + optional image)
// ============================

func newsForm(fields map[string]string, imageName string, image io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for key, value := range fields {
		if value != "" {
			_ = form.WriteField(key, value)
		}
	}
	if image != nil {
		part, err := form.CreateFormFile("image", imageName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, image); err != nil {
			return nil, "", err
		}
	}
	if err := form.Close(); err != nil {
		return nil, "", err
	}
	return &buf, form.FormDataContentType(), nil
}

func (c *Client) CreateNews(ctx context.Context, fields map[string]string, imageName string, image io.Reader) (*NewsDTO.NewsDTO, error) {
	buf, contentType, err := newsForm(fields, imageName, image)
	if err != nil {
		return nil, err
	}
	var out NewsDTO.NewsDTO
	if err := c.do(ctx, http.MethodPost, "/api/news", contentType, buf, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.News.Add(out)
	}
	return &out, nil
}

func (c *Client) UpdateNews(ctx context.Context, id string, fields map[string]string, imageName string, image io.Reader) (*NewsDTO.NewsDTO, error) {
	buf, contentType, err := newsForm(fields, imageName, image)
	if err != nil {
		return nil, err
	}
	var out NewsDTO.NewsDTO
	if err := c.do(ctx, http.MethodPut, "/api/news/"+id, contentType, buf, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.News.Update(out)
	}
	return &out, nil
}

func (c *Client) DeleteNews(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/news/"+id, nil, nil); err != nil {
		return err
	}
	if !c.Connected() {
		c.News.Remove(id)
	}
	return nil
}

// ============================
// Alerts
// ============================

func (c *Client) CreateAlert(ctx context.Context, req AlertDTO.CreateAlertRequest) (*AlertDTO.AlertDTO, error) {
	var out AlertDTO.AlertDTO
	if err := c.doJSON(ctx, http.MethodPost, "/api/alerts", req, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Alerts.Add(out)
	}
	return &out, nil
}

func (c *Client) UpdateAlert(ctx context.Context, id string, req AlertDTO.UpdateAlertRequest) (*AlertDTO.AlertDTO, error) {
	var out AlertDTO.AlertDTO
	if err := c.doJSON(ctx, http.MethodPut, "/api/alerts/"+id, req, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Alerts.Update(out)
	}
	return &out, nil
}

func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/alerts/"+id, nil, nil); err != nil {
		return err
	}
	if !c.Connected() {
		c.Alerts.Remove(id)
	}
	return nil
}

// ============================
// Groups
// ============================

func (c *Client) CreateGroup(ctx context.Context, req GroupDTO.CreateGroupRequest) (*GroupDTO.GroupDTO, error) {
	var out GroupDTO.GroupDTO
	if err := c.doJSON(ctx, http.MethodPost, "/api/groups", req, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Groups.Add(out)
	}
	return &out, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id string, req GroupDTO.UpdateGroupRequest) (*GroupDTO.GroupDTO, error) {
	var out GroupDTO.GroupDTO
	if err := c.doJSON(ctx, http.MethodPut, "/api/groups/"+id, req, &out); err != nil {
		return nil, err
	}
	if !c.Connected() {
		c.Groups.Update(out)
	}
	return &out, nil
}

func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/groups/"+id, nil, nil); err != nil {
		return err
	}
	if !c.Connected() {
		c.Groups.Remove(id)
	}
	return nil
}

// ============================
// Settings / Analytics / Search
// ============================

func (c *Client) GetSettings(ctx context.Context) (*SettingDTO.SettingDTO, error) {
	var out SettingDTO.SettingDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSettings(ctx context.Context, req SettingDTO.UpdateSettingRequest) (*SettingDTO.SettingDTO, error) {
	var out SettingDTO.SettingDTO
	if err := c.doJSON(ctx, http.MethodPut, "/api/settings", req, &out); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.settings = out
	c.mu.Unlock()
	return &out, nil
}

func (c *Client) GetAnalytics(ctx context.Context) (*SettingDTO.AnalyticsDTO, error) {
	var out SettingDTO.AnalyticsDTO
	if err := c.doJSON(ctx, http.MethodGet, "/api/analytics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Search(ctx context.Context, query, typeFilter string) ([]map[string]interface{}, error) {
	if typeFilter == "" {
		typeFilter = "all"
	}
	path := "/api/search?q=" + url.QueryEscape(query) + "&type=" + url.QueryEscape(typeFilter)
	var out []map[string]interface{}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
