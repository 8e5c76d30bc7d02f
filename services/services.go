package services

import (
	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/repositories"
)

// Services holds all service instances
type Services struct {
	AuditLogs AuditLogService
	Directory DirectoryService
	Views     *ViewRegistry
	Sources   repositories.SourceProvider
	// LocalMode is true when audit logs come from the local store
	LocalMode bool
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, sources repositories.SourceProvider, localMode bool, opts ViewOptions, logger *zap.Logger) *Services {
	return &Services{
		AuditLogs: NewAuditLogService(opts.RefreshInterval, logger.Named("audit_logs")),
		Directory: NewDirectoryService(repos.Projects, repos.Organizations),
		Views:     NewViewRegistry(opts, logger.Named("views")),
		Sources:   sources,
		LocalMode: localMode,
	}
}
