package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/auditlog-viewer/models"
)

// ProjectRepository interface defines project database operations
type ProjectRepository interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByRef(ctx context.Context, ref string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
}

// projectRepository implements ProjectRepository interface
type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// GetAll retrieves all projects ordered by name
func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `
		SELECT id, ref, name, COALESCE(organization_slug, ''), inserted_at
		FROM projects
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.Ref,
			&project.Name,
			&project.OrganizationSlug,
			&project.InsertedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// GetByRef retrieves a project by its ref
func (r *projectRepository) GetByRef(ctx context.Context, ref string) (*models.Project, error) {
	query := `
		SELECT id, ref, name, COALESCE(organization_slug, ''), inserted_at
		FROM projects
		WHERE ref = ?
	`

	var project models.Project
	err := r.db.QueryRowContext(ctx, query, ref).Scan(
		&project.ID,
		&project.Ref,
		&project.Name,
		&project.OrganizationSlug,
		&project.InsertedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

// Create creates a new project
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (ref, name, organization_slug)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, project.Ref, project.Name, project.OrganizationSlug)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project ID: %w", err)
	}

	project.ID = int(id)
	return nil
}
