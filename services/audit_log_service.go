package services

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

const (
	// RetrievalFailedSubject is shown above the error when audit logs cannot be loaded
	RetrievalFailedSubject = "Failed to retrieve audit logs"

	NoLogsMessage         = "You do not have any audit logs available yet"
	NoFilteredLogsMessage = "No audit logs found based on the filters applied"
)

// RetrievalError is the only failure the audit log page distinguishes: the source could not be read.
// Nothing retries it; the viewer refreshes manually.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return RetrievalFailedSubject + ": " + e.Err.Error()
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Subject returns the alert title
func (e *RetrievalError) Subject() string {
	return RetrievalFailedSubject
}

// AuditLogRow is one rendered table row
type AuditLogRow struct {
	Key        string          `json:"key"`
	ActionName string          `json:"action_name"`
	Status     int             `json:"status,omitempty"`
	HasStatus  bool            `json:"has_status"`
	TargetName string          `json:"target_name"`
	TargetRef  string          `json:"target_ref"`
	OccurredAt time.Time       `json:"occurred_at"`
	ActorEmail string          `json:"actor_email,omitempty"`
	Log        models.AuditLog `json:"log"`
}

// FilterOption is a project the viewer can narrow the list to
type FilterOption struct {
	Ref      string `json:"ref"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// AuditLogPage is everything the audit log page renders
type AuditLogPage struct {
	ViewID          string           `json:"view_id"`
	Range           models.DateRange `json:"range"`
	SortOrder       string           `json:"sort_order"`
	Filters         []string         `json:"filters"`
	FilterOptions   []FilterOption   `json:"filter_options"`
	Rows            []AuditLogRow    `json:"rows"`
	TotalCount      int              `json:"total_count"`
	ShownCount      int              `json:"shown_count"`
	RetentionPeriod int              `json:"retention_period"`
	MinDate         time.Time        `json:"min_date"`
	MaxDate         time.Time        `json:"max_date"`
	EmptyMessage    string           `json:"empty_message,omitempty"`
	Error           *RetrievalError  `json:"-"`
	ErrorMessage    string           `json:"error,omitempty"`
	Selected        *AuditLogRow     `json:"selected,omitempty"`
	RefreshInterval time.Duration    `json:"-"`
}

// Loaded reports whether the logs were retrieved
func (p *AuditLogPage) Loaded() bool {
	return p.Error == nil
}

// AuditLogService interface defines audit log viewing logic
type AuditLogService interface {
	// GetAuditLogs builds the page for the view. force skips the cached response.
	GetAuditLogs(ctx context.Context, sources repositories.Sources, view *AuditView, force bool) *AuditLogPage
	// SetDateRange applies a date picker submission, bounded by the retention period
	SetDateRange(ctx context.Context, sources repositories.Sources, view *AuditView, form *models.DateRangeForm) error
}

type auditLogService struct {
	refreshInterval time.Duration
	logger          *zap.Logger
}

// NewAuditLogService creates a new audit log service
func NewAuditLogService(refreshInterval time.Duration, logger *zap.Logger) AuditLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &auditLogService{refreshInterval: refreshInterval, logger: logger}
}

// GetAuditLogs retrieves, sorts and filters the logs for the view's current window
func (s *auditLogService) GetAuditLogs(ctx context.Context, sources repositories.Sources, view *AuditView, force bool) *AuditLogPage {
	rng := view.Range()
	filter := view.Filter()
	order := view.SortOrder()
	now := timeNow()

	page := &AuditLogPage{
		ViewID:          view.ID,
		Range:           rng,
		SortOrder:       order.String(),
		Filters:         filter.Projects(),
		Rows:            []AuditLogRow{},
		MinDate:         MinSelectableDate(now, 0),
		MaxDate:         MaxSelectableDate(now),
		RefreshInterval: s.refreshInterval,
	}

	projects, err := sources.ListProjects(ctx)
	if err != nil {
		s.logger.Warn("failed to list projects", zap.String("user_id", view.UserID), zap.Error(err))
	}
	orgs, err := sources.ListOrganizations(ctx)
	if err != nil {
		s.logger.Warn("failed to list organizations", zap.String("user_id", view.UserID), zap.Error(err))
	}
	page.FilterOptions = buildFilterOptions(projects, filter)

	var response *models.AuditLogsResponse
	if !force {
		response = view.cached(rng)
	}
	if response == nil {
		response, err = sources.FetchAuditLogs(ctx, rng)
		if err != nil {
			s.logger.Error("failed to retrieve audit logs",
				zap.String("user_id", view.UserID),
				zap.Time("from", rng.From),
				zap.Time("to", rng.To),
				zap.Error(err),
			)
			page.Error = &RetrievalError{Err: err}
			page.ErrorMessage = page.Error.Error()
			return page
		}
		view.storeResponse(rng, response)
	}

	sorted := SortAuditLogs(response.Result, order)
	shown := FilterAuditLogs(sorted, filter)

	labels := newTargetLabeler(projects, orgs)
	for _, log := range shown {
		page.Rows = append(page.Rows, labels.row(log))
	}

	page.TotalCount = len(response.Result)
	page.ShownCount = len(shown)
	page.RetentionPeriod = response.RetentionPeriod
	page.MinDate = MinSelectableDate(now, response.RetentionPeriod)

	switch {
	case page.TotalCount == 0:
		page.EmptyMessage = NoLogsMessage
	case page.ShownCount == 0:
		page.EmptyMessage = NoFilteredLogsMessage
	}

	if key := view.SelectedKey(); key != "" {
		for _, log := range sorted {
			if log.Key() == key {
				row := labels.row(log)
				page.Selected = &row
				break
			}
		}
	}

	return page
}

// SetDateRange validates the picked days against the retention period and applies them
func (s *auditLogService) SetDateRange(ctx context.Context, sources repositories.Sources, view *AuditView, form *models.DateRangeForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return &ValidationFailedError{Messages: errs}
	}

	now := timeNow()
	rng := form.ToDateRange(now)

	retention, known := view.RetentionPeriod()
	if !known {
		// Nothing fetched yet; learn the retention period from a minimal query
		response, err := sources.FetchAuditLogs(ctx, models.DefaultDateRange(now, time.Minute))
		if err != nil {
			return &RetrievalError{Err: err}
		}
		retention = response.RetentionPeriod
	}

	if rng.From.Before(MinSelectableDate(now, retention)) {
		return &ValidationFailedError{Messages: []string{
			"You may only view logs from " + models.FormatDisplayDate(MinSelectableDate(now, retention)) + " as the earliest date",
		}}
	}

	return view.SetRange(rng)
}

// SortAuditLogs returns a copy of logs ordered by occurrence time. Logs that occurred at
// the same time keep their fetch order.
func SortAuditLogs(logs []models.AuditLog, order models.SortOrder) []models.AuditLog {
	sorted := make([]models.AuditLog, len(logs))
	copy(sorted, logs)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].OccurredTime(), sorted[j].OccurredTime()
		if order == models.SortAscending {
			return a.Before(b)
		}
		return a.After(b)
	})

	return sorted
}

// FilterAuditLogs keeps logs whose target project is selected. An empty filter keeps everything.
func FilterAuditLogs(logs []models.AuditLog, filter models.FilterState) []models.AuditLog {
	if filter.IsEmpty() {
		return logs
	}

	filtered := make([]models.AuditLog, 0, len(logs))
	for _, log := range logs {
		if filter.Contains(log.Target.Metadata.ProjectRef) {
			filtered = append(filtered, log)
		}
	}
	return filtered
}

// MinSelectableDate is the earliest day the date picker offers: retentionDays before today
func MinSelectableDate(now time.Time, retentionDays int) time.Time {
	return models.StartOfDay(now.AddDate(0, 0, -retentionDays))
}

// MaxSelectableDate is the latest moment the date picker offers
func MaxSelectableDate(now time.Time) time.Time {
	return models.TruncateToSecond(now)
}

func buildFilterOptions(projects []models.Project, filter models.FilterState) []FilterOption {
	options := make([]FilterOption, 0, len(projects))
	for _, p := range projects {
		options = append(options, FilterOption{Ref: p.Ref, Name: p.Name, Selected: filter.Contains(p.Ref)})
	}
	return options
}

// targetLabeler resolves target refs and slugs to display names
type targetLabeler struct {
	projects map[string]string
	orgs     map[string]string
}

func newTargetLabeler(projects []models.Project, orgs []models.Organization) targetLabeler {
	l := targetLabeler{
		projects: make(map[string]string, len(projects)),
		orgs:     make(map[string]string, len(orgs)),
	}
	for _, p := range projects {
		l.projects[p.Ref] = p.Name
	}
	for _, o := range orgs {
		l.orgs[o.Slug] = o.Name
	}
	return l
}

func (l targetLabeler) row(log models.AuditLog) AuditLogRow {
	row := AuditLogRow{
		Key:        log.Key(),
		ActionName: log.Action.Name,
		OccurredAt: log.OccurredTime(),
		ActorEmail: log.ActorEmail(),
		Log:        log,
	}
	row.Status, row.HasStatus = log.StatusCode()

	meta := log.Target.Metadata
	projectName := l.projects[meta.ProjectRef]
	orgName := l.orgs[meta.OrgSlug]

	switch {
	case meta.ProjectRef != "" && projectName != "":
		row.TargetName = "Project: " + projectName
	case meta.OrgSlug != "" && orgName != "":
		row.TargetName = "Organization: " + orgName
	default:
		row.TargetName = "-"
	}

	switch {
	case meta.ProjectRef != "":
		row.TargetRef = "Ref: " + meta.ProjectRef
	case meta.OrgSlug != "":
		row.TargetRef = "Slug: " + meta.OrgSlug
	}

	return row
}
