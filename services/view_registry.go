package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/models"
)

// ViewRegistry keeps one AuditView per signed-in user and tears views down
// on logout, on idle expiry and on shutdown so no refresh timer outlives its viewer.
type ViewRegistry struct {
	opts   ViewOptions
	logger *zap.Logger

	mu    sync.Mutex
	views map[string]*AuditView
}

// NewViewRegistry creates an empty registry
func NewViewRegistry(opts ViewOptions, logger *zap.Logger) *ViewRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ViewRegistry{
		logger: logger,
		views:  make(map[string]*AuditView),
	}

	onShift := opts.OnShift
	opts.OnShift = func(view *AuditView, from, to models.DateRange) {
		fromStart, fromEnd := from.ISOStrings()
		toStart, toEnd := to.ISOStrings()
		r.logger.Debug("audit log window shifted",
			zap.String("view_id", view.ID),
			zap.String("user_id", view.UserID),
			zap.String("previous_start", fromStart),
			zap.String("previous_end", fromEnd),
			zap.String("start", toStart),
			zap.String("end", toEnd),
		)
		if onShift != nil {
			onShift(view, from, to)
		}
	}
	r.opts = opts

	return r
}

// Get returns the user's view, creating it on first use
func (r *ViewRegistry) Get(userID string) *AuditView {
	r.mu.Lock()
	defer r.mu.Unlock()

	if view, ok := r.views[userID]; ok {
		view.Touch()
		return view
	}

	view := NewAuditView(userID, r.opts)
	r.views[userID] = view
	r.logger.Info("audit log view opened", zap.String("view_id", view.ID), zap.String("user_id", userID))
	return view
}

// Lookup returns the user's view without creating one
func (r *ViewRegistry) Lookup(userID string) (*AuditView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	view, ok := r.views[userID]
	return view, ok
}

// Close tears down the user's view. It reports whether a view existed.
func (r *ViewRegistry) Close(userID string) bool {
	r.mu.Lock()
	view, ok := r.views[userID]
	delete(r.views, userID)
	r.mu.Unlock()

	if !ok {
		return false
	}

	view.Close()
	r.logger.Info("audit log view closed", zap.String("view_id", view.ID), zap.String("user_id", userID))
	return true
}

// Sweep closes views that have been idle for longer than maxIdle and returns how many were closed
func (r *ViewRegistry) Sweep(maxIdle time.Duration) int {
	cutoff := timeNow().Add(-maxIdle)

	r.mu.Lock()
	var idle []*AuditView
	for userID, view := range r.views {
		if view.LastAccess().Before(cutoff) {
			idle = append(idle, view)
			delete(r.views, userID)
		}
	}
	r.mu.Unlock()

	for _, view := range idle {
		view.Close()
		r.logger.Info("idle audit log view closed", zap.String("view_id", view.ID), zap.String("user_id", view.UserID))
	}
	return len(idle)
}

// RunJanitor sweeps idle views every interval until ctx is done
func (r *ViewRegistry) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(maxIdle)
		}
	}
}

// CloseAll tears down every view
func (r *ViewRegistry) CloseAll() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[string]*AuditView)
	r.mu.Unlock()

	for _, view := range views {
		view.Close()
	}
}

// Len returns the number of open views
func (r *ViewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
