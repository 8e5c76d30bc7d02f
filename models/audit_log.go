package models

import (
	"time"
)

// AuditLog represents a single account audit event as returned by the platform API
type AuditLog struct {
	OccurredAt string      `json:"occurred_at"`
	Action     AuditAction `json:"action"`
	Actor      AuditActor  `json:"actor"`
	Target     AuditTarget `json:"target"`
}

// AuditAction describes what happened
type AuditAction struct {
	Name     string           `json:"name"`
	Metadata []ActionMetadata `json:"metadata"`
}

// ActionMetadata carries request details for an action
type ActionMetadata struct {
	Method string `json:"method,omitempty"`
	Route  string `json:"route,omitempty"`
	Status *int   `json:"status,omitempty"`
}

// AuditActor describes who performed the action
type AuditActor struct {
	ID       string          `json:"id"`
	Type     string          `json:"type,omitempty"`
	Metadata []ActorMetadata `json:"metadata,omitempty"`
}

// ActorMetadata carries identifying details for an actor
type ActorMetadata struct {
	Email string `json:"email,omitempty"`
}

// AuditTarget describes what the action was performed on
type AuditTarget struct {
	Description string         `json:"description,omitempty"`
	Metadata    TargetMetadata `json:"metadata"`
}

// TargetMetadata holds the optional project and organization references of a target
type TargetMetadata struct {
	ProjectRef string `json:"project_ref,omitempty"`
	OrgSlug    string `json:"org_slug,omitempty"`
}

// AuditLogsResponse is the payload of an audit log query
type AuditLogsResponse struct {
	Result          []AuditLog `json:"result"`
	RetentionPeriod int        `json:"retention_period"` // days
}

// OccurredTime parses OccurredAt. Unparseable timestamps yield the zero time.
func (l *AuditLog) OccurredTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, l.OccurredAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// StatusCode returns the status recorded on the first action metadata entry, if any
func (l *AuditLog) StatusCode() (int, bool) {
	if len(l.Action.Metadata) == 0 || l.Action.Metadata[0].Status == nil {
		return 0, false
	}
	return *l.Action.Metadata[0].Status, true
}

// Key identifies the log within a result set
func (l *AuditLog) Key() string {
	return l.OccurredAt
}

// ActorEmail returns the first email recorded for the actor
func (l *AuditLog) ActorEmail() string {
	for _, m := range l.Actor.Metadata {
		if m.Email != "" {
			return m.Email
		}
	}
	return ""
}

// IntPtr is a small helper for building optional status codes
func IntPtr(v int) *int {
	return &v
}
