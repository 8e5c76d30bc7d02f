package models

import (
	"strings"
	"time"
)

// DateRangeForm represents a date picker submission
type DateRangeForm struct {
	From string `json:"from"` // "2025-10-01" format
	To   string `json:"to"`
}

// Validate validates the date range form data
func (f *DateRangeForm) Validate() []string {
	var errors []string

	from, fromErr := ParseDate(f.From)
	if f.From == "" {
		errors = append(errors, "Start date is required")
	} else if fromErr != nil {
		errors = append(errors, "Start date must be in YYYY-MM-DD format")
	}

	to, toErr := ParseDate(f.To)
	if f.To == "" {
		errors = append(errors, "End date is required")
	} else if toErr != nil {
		errors = append(errors, "End date must be in YYYY-MM-DD format")
	}

	if f.From != "" && f.To != "" && fromErr == nil && toErr == nil && from.After(to) {
		errors = append(errors, "Start date must not be after end date")
	}

	return errors
}

// ToDateRange converts the picked days into a query window. The window starts at
// midnight of the first day and ends at the last second of the final day, clamped to now.
// Call Validate first.
func (f *DateRangeForm) ToDateRange(now time.Time) DateRange {
	from, _ := ParseDate(f.From)
	to, _ := ParseDate(f.To)

	end := to.Add(24*time.Hour - time.Second)
	if nowUTC := TruncateToSecond(now); end.After(nowUTC) {
		end = nowUTC
	}
	if from.After(end) {
		from = end
	}

	return DateRange{From: from, To: end}
}

// ProjectForm represents form data for registering a project in the local store
type ProjectForm struct {
	Ref              string `json:"ref"`
	Name             string `json:"name"`
	OrganizationSlug string `json:"organization_slug"`
}

// Validate validates the project form data. Surrounding whitespace is ignored.
func (f *ProjectForm) Validate() []string {
	var errors []string
	ref := strings.TrimSpace(f.Ref)
	orgSlug := strings.TrimSpace(f.OrganizationSlug)

	if ref == "" {
		errors = append(errors, "Project ref is required")
	} else if !isValidIdentifier(ref) {
		errors = append(errors, "Project ref may only contain lowercase letters, digits and dashes")
	}

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if orgSlug != "" && !isValidIdentifier(orgSlug) {
		errors = append(errors, "Organization slug may only contain lowercase letters, digits and dashes")
	}

	return errors
}

// OrganizationForm represents form data for registering an organization in the local store
type OrganizationForm struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Validate validates the organization form data. Surrounding whitespace is ignored.
func (f *OrganizationForm) Validate() []string {
	var errors []string
	slug := strings.TrimSpace(f.Slug)

	if slug == "" {
		errors = append(errors, "Slug is required")
	} else if !isValidIdentifier(slug) {
		errors = append(errors, "Slug may only contain lowercase letters, digits and dashes")
	}

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	return errors
}

// isValidIdentifier checks for refs and slugs such as "abcd-1234"
func isValidIdentifier(s string) bool {
	if len(s) == 0 || len(s) > 64 {
		return false
	}
	for _, char := range s {
		isLower := char >= 'a' && char <= 'z'
		isDigit := char >= '0' && char <= '9'
		if !isLower && !isDigit && char != '-' {
			return false
		}
	}
	return true
}
