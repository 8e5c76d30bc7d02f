package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/authenticator"
	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/services"
	"github.com/blogem/auditlog-viewer/templates"
	"github.com/blogem/auditlog-viewer/userctx"
)

var templateFuncs = template.FuncMap{
	"formatDate":        func(t time.Time) string { return models.FormatDate(t) },
	"formatDateTime":    func(t time.Time) string { return models.FormatDateTime(t.UTC()) },
	"formatDisplayDate": func(t time.Time) string { return models.FormatDisplayDate(t.UTC()) },
	"toJSON": func(v interface{}) string {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err.Error()
		}
		return string(b)
	},
}

// layoutData is what layout.html needs on every page
type layoutData struct {
	Title       string
	CurrentPage string
	Error       string
	Success     string
	UserEmail   string
	LocalMode   bool
}

func newLayoutData(r *http.Request, localMode bool, title, currentPage string) layoutData {
	data := layoutData{Title: title, CurrentPage: currentPage, LocalMode: localMode}
	if userctx.GetUserID(r.Context()) != "" {
		data.UserEmail = userctx.GetUserEmail(r.Context())
	}
	return data
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl, err := template.New(templateName).Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Landing   *LandingController
	AuditLogs *AuditLogController
	Directory *DirectoryController
}

// NewControllers creates and initializes all controller instances.
// provider may be nil when sign-in is handled by the development middleware.
func NewControllers(services *services.Services, provider authenticator.Provider, logger *zap.Logger) *Controllers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controllers{
		Auth:      NewAuthController(services, provider, logger.Named("auth")),
		Landing:   NewLandingController(services, provider == nil),
		AuditLogs: NewAuditLogController(services),
		Directory: NewDirectoryController(services),
	}
}
