package repositories

import (
	"context"
	"errors"

	"github.com/blogem/auditlog-viewer/models"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")

	// ErrOutsideRetention is returned when a query reaches further back than the retention period allows
	ErrOutsideRetention = errors.New("requested range is outside the log retention period")
)

// AuditLogSource retrieves audit logs for a query window
type AuditLogSource interface {
	FetchAuditLogs(ctx context.Context, rng models.DateRange) (*models.AuditLogsResponse, error)
}

// ProjectSource lists the projects visible to the viewer
type ProjectSource interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// OrganizationSource lists the organizations visible to the viewer
type OrganizationSource interface {
	ListOrganizations(ctx context.Context) ([]models.Organization, error)
}

// Sources bundles everything the audit log page reads
type Sources interface {
	AuditLogSource
	ProjectSource
	OrganizationSource
}

// SourceProvider hands out the sources for a signed-in user
type SourceProvider interface {
	ForUser(accessToken string) Sources
}

// localSources serves every user from the SQLite store
type localSources struct {
	audit         AuditRepository
	projects      ProjectRepository
	organizations OrganizationRepository
}

// NewLocalSourceProvider serves all users from the local repositories
func NewLocalSourceProvider(repos *Repositories) SourceProvider {
	return &localSources{
		audit:         repos.Audit,
		projects:      repos.Projects,
		organizations: repos.Organizations,
	}
}

// ForUser returns the shared local store; the token is not needed locally
func (s *localSources) ForUser(string) Sources {
	return s
}

func (s *localSources) FetchAuditLogs(ctx context.Context, rng models.DateRange) (*models.AuditLogsResponse, error) {
	return s.audit.FetchAuditLogs(ctx, rng)
}

func (s *localSources) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.GetAll(ctx)
}

func (s *localSources) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return s.organizations.GetAll(ctx)
}
