package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/auditlog-viewer/models"
)

// OrganizationRepository interface defines organization database operations
type OrganizationRepository interface {
	GetAll(ctx context.Context) ([]models.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
}

type organizationRepository struct {
	db *sql.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *sql.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// GetAll retrieves all organizations ordered by name
func (r *organizationRepository) GetAll(ctx context.Context) ([]models.Organization, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, slug, name, inserted_at FROM organizations ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	orgs := []models.Organization{}
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Slug, &org.Name, &org.InsertedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organizations: %w", err)
	}

	return orgs, nil
}

// GetBySlug retrieves an organization by its slug
func (r *organizationRepository) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.QueryRowContext(ctx, `SELECT id, slug, name, inserted_at FROM organizations WHERE slug = ?`, slug).
		Scan(&org.ID, &org.Slug, &org.Name, &org.InsertedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("organization %s: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

// Create creates a new organization
func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	result, err := r.db.ExecContext(ctx, `INSERT INTO organizations (slug, name) VALUES (?, ?)`, org.Slug, org.Name)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get organization ID: %w", err)
	}

	org.ID = int(id)
	return nil
}
