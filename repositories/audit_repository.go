package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blogem/auditlog-viewer/models"
)

// lookbackGrace is how far before the first retained day a query may still reach
const lookbackGrace = 5 * time.Minute

// AuditRepository handles audit log persistence in the local store
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	FetchAuditLogs(ctx context.Context, rng models.DateRange) (*models.AuditLogsResponse, error)
	Count(ctx context.Context) (int, error)
}

type sqliteAuditRepository struct {
	db            *sql.DB
	retentionDays int
	now           func() time.Time
}

// NewAuditRepository creates a new audit repository that serves retentionDays of history
func NewAuditRepository(db *sql.DB, retentionDays int) AuditRepository {
	return &sqliteAuditRepository{db: db, retentionDays: retentionDays, now: time.Now}
}

// Create inserts a new audit log entry. A missing OccurredAt is set to now.
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	if entry.OccurredAt == "" {
		entry.OccurredAt = models.FormatISO(r.now())
	}

	occurredAt, err := time.Parse(time.RFC3339Nano, entry.OccurredAt)
	if err != nil {
		return fmt.Errorf("invalid occurred_at %q: %w", entry.OccurredAt, err)
	}

	var method, route string
	var status sql.NullInt64
	if len(entry.Action.Metadata) > 0 {
		meta := entry.Action.Metadata[0]
		method, route = meta.Method, meta.Route
		if meta.Status != nil {
			status = sql.NullInt64{Int64: int64(*meta.Status), Valid: true}
		}
	}

	query := `
		INSERT INTO audit_log (request_id, occurred_at, action_name, method, route, status,
			actor_id, actor_email, target_description, project_ref, org_slug)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		uuid.NewString(),
		models.FormatISO(occurredAt),
		entry.Action.Name,
		method,
		route,
		status,
		entry.Actor.ID,
		entry.ActorEmail(),
		entry.Target.Description,
		entry.Target.Metadata.ProjectRef,
		entry.Target.Metadata.OrgSlug,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	return nil
}

// FetchAuditLogs returns the entries that occurred within the range, in insertion order
func (r *sqliteAuditRepository) FetchAuditLogs(ctx context.Context, rng models.DateRange) (*models.AuditLogsResponse, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	earliest := models.StartOfDay(r.now().AddDate(0, 0, -r.retentionDays)).Add(-lookbackGrace)
	if rng.From.Before(earliest) {
		return nil, fmt.Errorf("%w: %d day(s)", ErrOutsideRetention, r.retentionDays)
	}

	query := `
		SELECT occurred_at, action_name, method, route, status,
			actor_id, actor_email, target_description, project_ref, org_slug
		FROM audit_log
		WHERE occurred_at >= ? AND occurred_at <= ?
		ORDER BY id ASC
	`

	from, to := rng.ISOStrings()
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var (
			entry      models.AuditLog
			meta       models.ActionMetadata
			status     sql.NullInt64
			actorEmail string
		)
		err := rows.Scan(
			&entry.OccurredAt,
			&entry.Action.Name,
			&meta.Method,
			&meta.Route,
			&status,
			&entry.Actor.ID,
			&actorEmail,
			&entry.Target.Description,
			&entry.Target.Metadata.ProjectRef,
			&entry.Target.Metadata.OrgSlug,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}

		if status.Valid {
			meta.Status = models.IntPtr(int(status.Int64))
		}
		entry.Action.Metadata = []models.ActionMetadata{meta}
		entry.Actor.Type = "user"
		if actorEmail != "" {
			entry.Actor.Metadata = []models.ActorMetadata{{Email: actorEmail}}
		}

		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit logs: %w", err)
	}

	return &models.AuditLogsResponse{Result: logs, RetentionPeriod: r.retentionDays}, nil
}

// Count returns the total number of stored audit logs
func (r *sqliteAuditRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM audit_log").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count audit logs: %w", err)
	}
	return count, nil
}
