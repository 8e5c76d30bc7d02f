package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/repositories"
)

// ValidationFailedError carries the messages of a rejected form
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// DirectoryService manages the projects and organizations of the local store,
// which label audit log targets in local mode
type DirectoryService interface {
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetAllOrganizations(ctx context.Context) ([]models.Organization, error)
	CreateProject(ctx context.Context, form *models.ProjectForm) (*models.Project, error)
	CreateOrganization(ctx context.Context, form *models.OrganizationForm) (*models.Organization, error)
}

type directoryService struct {
	projectRepo repositories.ProjectRepository
	orgRepo     repositories.OrganizationRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(projectRepo repositories.ProjectRepository, orgRepo repositories.OrganizationRepository) DirectoryService {
	return &directoryService{projectRepo: projectRepo, orgRepo: orgRepo}
}

// GetAllProjects retrieves all projects
func (s *directoryService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

// GetAllOrganizations retrieves all organizations
func (s *directoryService) GetAllOrganizations(ctx context.Context) ([]models.Organization, error) {
	return s.orgRepo.GetAll(ctx)
}

// CreateProject registers a project. Its organization, when given, must exist.
func (s *directoryService) CreateProject(ctx context.Context, form *models.ProjectForm) (*models.Project, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationFailedError{Messages: errs}
	}

	ref := strings.TrimSpace(form.Ref)
	if _, err := s.projectRepo.GetByRef(ctx, ref); err == nil {
		return nil, &ValidationFailedError{Messages: []string{fmt.Sprintf("Project %s already exists", ref)}}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}

	orgSlug := strings.TrimSpace(form.OrganizationSlug)
	if orgSlug != "" {
		if _, err := s.orgRepo.GetBySlug(ctx, orgSlug); errors.Is(err, repositories.ErrNotFound) {
			return nil, &ValidationFailedError{Messages: []string{fmt.Sprintf("Organization %s does not exist", orgSlug)}}
		} else if err != nil {
			return nil, fmt.Errorf("failed to check organization: %w", err)
		}
	}

	project := &models.Project{
		Ref:              ref,
		Name:             strings.TrimSpace(form.Name),
		OrganizationSlug: orgSlug,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// CreateOrganization registers an organization
func (s *directoryService) CreateOrganization(ctx context.Context, form *models.OrganizationForm) (*models.Organization, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationFailedError{Messages: errs}
	}

	slug := strings.TrimSpace(form.Slug)
	if _, err := s.orgRepo.GetBySlug(ctx, slug); err == nil {
		return nil, &ValidationFailedError{Messages: []string{fmt.Sprintf("Organization %s already exists", slug)}}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	org := &models.Organization{Slug: slug, Name: strings.TrimSpace(form.Name)}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return org, nil
}
