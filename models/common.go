package models

import (
	"errors"
	"sort"
	"time"
)

// ErrInvalidRange is returned when a date range ends before it starts
var ErrInvalidRange = errors.New("date range must not end before it starts")

// DateRange represents the query window of an audit log request
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// DefaultDateRange returns a window of the given length ending at now
func DefaultDateRange(now time.Time, window time.Duration) DateRange {
	to := TruncateToSecond(now)
	return DateRange{From: to.Add(-window), To: to}
}

// TruncateToSecond returns t in UTC with sub-second precision dropped
func TruncateToSecond(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Validate checks that From is not after To
func (r DateRange) Validate() error {
	if r.From.After(r.To) {
		return ErrInvalidRange
	}
	return nil
}

// Duration returns the length of the window
func (r DateRange) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// ShiftTo moves the window so it ends at now while keeping its length
func (r DateRange) ShiftTo(now time.Time) DateRange {
	offset := r.From.Sub(r.To)
	to := TruncateToSecond(now)
	return DateRange{From: to.Add(offset), To: to}
}

// ISOStrings returns both bounds formatted as ISO-8601 timestamps
func (r DateRange) ISOStrings() (string, string) {
	return FormatISO(r.From), FormatISO(r.To)
}

// Equal reports whether both bounds match
func (r DateRange) Equal(other DateRange) bool {
	return r.From.Equal(other.From) && r.To.Equal(other.To)
}

// SortOrder controls the ordering of audit logs by occurrence time
type SortOrder int

const (
	SortDescending SortOrder = iota // latest first
	SortAscending
)

// Toggle flips the sort order
func (o SortOrder) Toggle() SortOrder {
	if o == SortDescending {
		return SortAscending
	}
	return SortDescending
}

func (o SortOrder) String() string {
	if o == SortAscending {
		return "asc"
	}
	return "desc"
}

// FilterState holds the project refs the view is narrowed to
type FilterState struct {
	projects map[string]struct{}
}

// NewFilterState builds a filter from a list of project refs, ignoring blanks
func NewFilterState(projectRefs ...string) FilterState {
	f := FilterState{projects: make(map[string]struct{}, len(projectRefs))}
	for _, ref := range projectRefs {
		if ref == "" {
			continue
		}
		f.projects[ref] = struct{}{}
	}
	return f
}

// IsEmpty reports whether no project is selected
func (f FilterState) IsEmpty() bool {
	return len(f.projects) == 0
}

// Contains reports whether the project ref is selected
func (f FilterState) Contains(projectRef string) bool {
	_, ok := f.projects[projectRef]
	return ok
}

// Projects returns the selected project refs in sorted order
func (f FilterState) Projects() []string {
	refs := make([]string, 0, len(f.projects))
	for ref := range f.projects {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// FormatISO formats a time as an ISO-8601 UTC timestamp with millisecond precision
func FormatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDisplayDate formats a time as "02 Jan 2006"
func FormatDisplayDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM:SS
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ParseDate parses a YYYY-MM-DD string into a UTC time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, time.UTC)
}

// StartOfDay returns midnight UTC of the day t falls on
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
