package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/repositories"
	"github.com/blogem/auditlog-viewer/services"
	"github.com/blogem/auditlog-viewer/userctx"
)

// pollInterval is how often the page checks whether the refresh timer moved its window
const pollInterval = 30000

// AuditLogController handles the audit log page and its actions
type AuditLogController struct {
	services *services.Services
}

// NewAuditLogController creates a new audit log controller
func NewAuditLogController(services *services.Services) *AuditLogController {
	return &AuditLogController{
		services: services,
	}
}

type auditLogPageData struct {
	layoutData
	Page       *services.AuditLogPage
	From       string
	To         string
	PollMillis int
}

func (c *AuditLogController) view(r *http.Request) *services.AuditView {
	return c.services.Views.Get(userctx.GetUserID(r.Context()))
}

func (c *AuditLogController) sources(r *http.Request) repositories.Sources {
	return c.services.Sources.ForUser(userctx.GetAccessToken(r.Context()))
}

func (c *AuditLogController) render(w http.ResponseWriter, r *http.Request, status int, page *services.AuditLogPage, form *models.DateRangeForm, formErr string) {
	data := auditLogPageData{
		layoutData: newLayoutData(r, c.services.LocalMode, "Audit logs", "audit"),
		Page:       page,
		From:       models.FormatDate(page.Range.From),
		To:         models.FormatDate(page.Range.To),
		PollMillis: pollInterval,
	}
	data.Error = formErr
	if form != nil {
		data.From, data.To = form.From, form.To
	}

	renderTemplateWithStatus(w, status, "audit_logs", "audit_logs.html", data)
}

// Index handles GET /audit. ?log=<key> opens the detail panel, an empty value closes it.
func (c *AuditLogController) Index(w http.ResponseWriter, r *http.Request) {
	view := c.view(r)
	if query := r.URL.Query(); query.Has("log") {
		view.Select(query.Get("log"))
	}

	page := c.services.AuditLogs.GetAuditLogs(r.Context(), c.sources(r), view, false)
	c.render(w, r, http.StatusOK, page, nil, "")
}

// SetFilters handles POST /audit/filters
func (c *AuditLogController) SetFilters(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	c.view(r).SetFilter(models.NewFilterState(r.PostForm["projects"]...))
	http.Redirect(w, r, "/audit", http.StatusSeeOther)
}

// ResetFilters handles POST /audit/filters/reset
func (c *AuditLogController) ResetFilters(w http.ResponseWriter, r *http.Request) {
	c.view(r).ResetFilter()
	http.Redirect(w, r, "/audit", http.StatusSeeOther)
}

// SetRange handles POST /audit/range
func (c *AuditLogController) SetRange(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.DateRangeForm{
		From: r.PostForm.Get("from"),
		To:   r.PostForm.Get("to"),
	}

	view := c.view(r)
	sources := c.sources(r)
	if err := c.services.AuditLogs.SetDateRange(r.Context(), sources, view, form); err != nil {
		status := http.StatusBadRequest
		var validationErr *services.ValidationFailedError
		if !errors.As(err, &validationErr) {
			status = http.StatusBadGateway
		}

		page := c.services.AuditLogs.GetAuditLogs(r.Context(), sources, view, false)
		c.render(w, r, status, page, form, err.Error())
		return
	}

	http.Redirect(w, r, "/audit", http.StatusSeeOther)
}

// ToggleSort handles POST /audit/sort
func (c *AuditLogController) ToggleSort(w http.ResponseWriter, r *http.Request) {
	c.view(r).ToggleSort()
	http.Redirect(w, r, "/audit", http.StatusSeeOther)
}

// Refresh handles POST /audit/refresh: refetches the current window, skipping the cache.
// A failed fetch is rendered in place so the redirect does not fetch a second time.
func (c *AuditLogController) Refresh(w http.ResponseWriter, r *http.Request) {
	page := c.services.AuditLogs.GetAuditLogs(r.Context(), c.sources(r), c.view(r), true)
	if !page.Loaded() {
		c.render(w, r, http.StatusBadGateway, page, nil, "")
		return
	}

	http.Redirect(w, r, "/audit", http.StatusSeeOther)
}

// LogsJSON handles GET /audit/logs.json
func (c *AuditLogController) LogsJSON(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "true"
	page := c.services.AuditLogs.GetAuditLogs(r.Context(), c.sources(r), c.view(r), force)

	status := http.StatusOK
	if !page.Loaded() {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, page)
}

// RangeJSON handles GET /audit/range.json
func (c *AuditLogController) RangeJSON(w http.ResponseWriter, r *http.Request) {
	view := c.view(r)
	rng := view.Range()

	writeJSON(w, http.StatusOK, struct {
		ViewID string    `json:"view_id"`
		From   time.Time `json:"from"`
		To     time.Time `json:"to"`
	}{view.ID, rng.From, rng.To})
}
