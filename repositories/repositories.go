package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Audit         AuditRepository
	Projects      ProjectRepository
	Organizations OrganizationRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, retentionDays int) *Repositories {
	return &Repositories{
		Audit:         NewAuditRepository(db, retentionDays),
		Projects:      NewProjectRepository(db),
		Organizations: NewOrganizationRepository(db),
	}
}
