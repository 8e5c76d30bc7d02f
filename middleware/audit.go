package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/repositories"
	"github.com/blogem/auditlog-viewer/userctx"
)

const auditWriteTimeout = 5 * time.Second

// statusRecorder remembers the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// AuditLogger middleware records all POST/PUT/DELETE requests in the local audit log
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			// Parse before the handler so the target survives even if it reads the body
			_ = r.ParseForm()
			projectRef := strings.TrimSpace(r.PostForm.Get("ref"))
			orgSlug := strings.TrimSpace(r.PostForm.Get("organization_slug"))
			if orgSlug == "" {
				orgSlug = strings.TrimSpace(r.PostForm.Get("slug"))
			}

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			entry := buildAuditLog(r, status, projectRef, orgSlug)

			// Log asynchronously to avoid blocking request
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
				defer cancel()
				if err := auditRepo.Create(ctx, entry); err != nil {
					logger.Error("failed to create audit log",
						zap.String("action", entry.Action.Name),
						zap.Error(err),
					)
				}
			}()
		})
	}
}

func buildAuditLog(r *http.Request, status int, projectRef, orgSlug string) *models.AuditLog {
	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			route = pattern
		}
	}

	description := route
	switch {
	case projectRef != "":
		description = "project " + projectRef
	case orgSlug != "":
		description = "organization " + orgSlug
	}

	return &models.AuditLog{
		Action: models.AuditAction{
			Name: r.Method + " " + route,
			Metadata: []models.ActionMetadata{{
				Method: r.Method,
				Route:  route,
				Status: models.IntPtr(status),
			}},
		},
		Actor: models.AuditActor{
			ID:       userctx.GetUserID(r.Context()),
			Type:     "user",
			Metadata: []models.ActorMetadata{{Email: userctx.GetUserEmail(r.Context())}},
		},
		Target: models.AuditTarget{
			Description: description,
			Metadata: models.TargetMetadata{
				ProjectRef: projectRef,
				OrgSlug:    orgSlug,
			},
		},
	}
}
