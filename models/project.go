package models

import "time"

// Project is a project an audit log target may refer to
type Project struct {
	ID               int       `json:"id,omitempty" db:"id"`
	Ref              string    `json:"ref" db:"ref"`
	Name             string    `json:"name" db:"name"`
	OrganizationSlug string    `json:"organization_slug,omitempty" db:"organization_slug"`
	InsertedAt       time.Time `json:"inserted_at,omitempty" db:"inserted_at"`
}

// Organization is an organization an audit log target may refer to
type Organization struct {
	ID         int       `json:"id,omitempty" db:"id"`
	Slug       string    `json:"slug" db:"slug"`
	Name       string    `json:"name" db:"name"`
	InsertedAt time.Time `json:"inserted_at,omitempty" db:"inserted_at"`
}
