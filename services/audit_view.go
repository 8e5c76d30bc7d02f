package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/auditlog-viewer/models"
)

// AuditView holds the state of one viewer's audit log page: the query window,
// the project filter, the sort order, the selected log and the last response.
// The refresh timer and request handlers both write to it.
type AuditView struct {
	ID     string
	UserID string

	mu          sync.Mutex
	dateRange   models.DateRange
	filter      models.FilterState
	sortOrder   models.SortOrder
	selectedKey string
	lastAccess  time.Time
	closed      bool

	cachedRange    models.DateRange
	cachedResponse *models.AuditLogsResponse
	retentionDays  int
	retentionKnown bool

	refresher *Refresher
}

// ViewOptions configures new views
type ViewOptions struct {
	DefaultWindow   time.Duration
	RefreshInterval time.Duration
	NewTicker       TickerFactory
	// OnShift is called after the refresh timer moved the window
	OnShift func(view *AuditView, from, to models.DateRange)
}

// NewAuditView creates a view covering DefaultWindow up to now and starts its refresh timer
func NewAuditView(userID string, opts ViewOptions) *AuditView {
	window := opts.DefaultWindow
	if window <= 0 {
		window = 24 * time.Hour
	}

	now := timeNow()
	v := &AuditView{
		ID:         uuid.NewString(),
		UserID:     userID,
		dateRange:  models.DefaultDateRange(now, window),
		filter:     models.NewFilterState(),
		sortOrder:  models.SortDescending,
		lastAccess: now,
	}

	v.refresher = NewRefresher(opts.RefreshInterval, opts.NewTicker, func(tick time.Time) {
		before, after, ok := v.shiftRange(tick)
		if ok && opts.OnShift != nil {
			opts.OnShift(v, before, after)
		}
	})

	return v
}

// shiftRange moves the window to end at now, keeping its length. The timer always wins over
// an edit made just before the tick.
func (v *AuditView) shiftRange(now time.Time) (models.DateRange, models.DateRange, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return models.DateRange{}, models.DateRange{}, false
	}
	before := v.dateRange
	v.dateRange = before.ShiftTo(now)
	return before, v.dateRange, true
}

// Range returns the current query window
func (v *AuditView) Range() models.DateRange {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.dateRange
}

// SetRange replaces the query window and restarts the refresh countdown
func (v *AuditView) SetRange(rng models.DateRange) error {
	if err := rng.Validate(); err != nil {
		return err
	}

	v.mu.Lock()
	v.dateRange = rng
	v.lastAccess = timeNow()
	v.mu.Unlock()

	v.refresher.Reset()
	return nil
}

// Filter returns the current project filter
func (v *AuditView) Filter() models.FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetFilter replaces the project filter
func (v *AuditView) SetFilter(filter models.FilterState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = filter
	v.lastAccess = timeNow()
}

// ResetFilter clears the project filter
func (v *AuditView) ResetFilter() {
	v.SetFilter(models.NewFilterState())
}

// SortOrder returns the current sort order
func (v *AuditView) SortOrder() models.SortOrder {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sortOrder
}

// ToggleSort flips between latest first and earliest first
func (v *AuditView) ToggleSort() models.SortOrder {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sortOrder = v.sortOrder.Toggle()
	v.lastAccess = timeNow()
	return v.sortOrder
}

// Select marks a log as open in the detail panel; an empty key closes the panel
func (v *AuditView) Select(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selectedKey = key
}

// SelectedKey returns the key of the log open in the detail panel
func (v *AuditView) SelectedKey() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectedKey
}

// Touch records viewer activity
func (v *AuditView) Touch() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastAccess = timeNow()
}

// LastAccess returns the time of the last viewer activity
func (v *AuditView) LastAccess() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastAccess
}

// cached returns the stored response if it was fetched for rng
func (v *AuditView) cached(rng models.DateRange) *models.AuditLogsResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cachedResponse == nil || !v.cachedRange.Equal(rng) {
		return nil
	}
	return v.cachedResponse
}

func (v *AuditView) storeResponse(rng models.DateRange, response *models.AuditLogsResponse) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cachedRange = rng
	v.cachedResponse = response
	v.retentionDays = response.RetentionPeriod
	v.retentionKnown = true
}

// RetentionPeriod returns the retention period reported by the last successful fetch
func (v *AuditView) RetentionPeriod() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.retentionDays, v.retentionKnown
}

// Close stops the refresh timer. The view must not be used afterwards.
func (v *AuditView) Close() {
	v.mu.Lock()
	v.closed = true
	v.cachedResponse = nil
	v.mu.Unlock()

	v.refresher.Stop()
}

// Closed reports whether Close has been called
func (v *AuditView) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}
