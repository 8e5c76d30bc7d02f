package models

import (
	"testing"
	"time"
)

// Test DateRangeForm validation
func TestDateRangeFormValidation(t *testing.T) {
	// Test valid form
	validForm := DateRangeForm{From: "2025-10-01", To: "2025-10-02"}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test same-day form
	sameDay := DateRangeForm{From: "2025-10-01", To: "2025-10-01"}
	if errors := sameDay.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for same-day form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := DateRangeForm{From: "", To: "10/02/2025"}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	// Test reversed form
	reversed := DateRangeForm{From: "2025-10-05", To: "2025-10-01"}
	errors = reversed.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for reversed form, got: %v", errors)
	}
}

func TestDateRangeFormToDateRange(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 30, 15, 500, time.UTC)

	// Past days span whole days
	form := DateRangeForm{From: "2025-10-01", To: "2025-10-02"}
	rng := form.ToDateRange(now)
	if !rng.From.Equal(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected from: %v", rng.From)
	}
	if !rng.To.Equal(time.Date(2025, 10, 2, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("Unexpected to: %v", rng.To)
	}

	// Today is clamped to now
	form = DateRangeForm{From: "2025-10-05", To: "2025-10-06"}
	rng = form.ToDateRange(now)
	if !rng.To.Equal(time.Date(2025, 10, 6, 12, 30, 15, 0, time.UTC)) {
		t.Errorf("Expected to to be clamped to now, got %v", rng.To)
	}
	if err := rng.Validate(); err != nil {
		t.Errorf("Expected valid range, got %v", err)
	}
}

func TestDateRangeShiftPreservesDuration(t *testing.T) {
	start := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	rng := DefaultDateRange(start, 24*time.Hour)

	shifted := rng.ShiftTo(start.Add(5 * time.Minute))
	if shifted.Duration() != rng.Duration() {
		t.Errorf("Expected duration %v, got %v", rng.Duration(), shifted.Duration())
	}
	if !shifted.To.Equal(start.Add(5 * time.Minute)) {
		t.Errorf("Expected window to end at the tick, got %v", shifted.To)
	}

	// Sub-second precision is dropped
	shifted = rng.ShiftTo(start.Add(1500 * time.Millisecond))
	if shifted.To.Nanosecond() != 0 {
		t.Errorf("Expected second precision, got %v", shifted.To)
	}
}

func TestDateRangeValidate(t *testing.T) {
	now := time.Now()
	if err := (DateRange{From: now, To: now}).Validate(); err != nil {
		t.Errorf("Expected empty window to be valid, got %v", err)
	}
	if err := (DateRange{From: now.Add(time.Hour), To: now}).Validate(); err != ErrInvalidRange {
		t.Errorf("Expected ErrInvalidRange, got %v", err)
	}
}

func TestFilterState(t *testing.T) {
	empty := NewFilterState()
	if !empty.IsEmpty() {
		t.Error("Expected new filter to be empty")
	}

	f := NewFilterState("b-ref", "a-ref", "", "a-ref")
	if f.IsEmpty() {
		t.Error("Expected filter to have projects")
	}
	if !f.Contains("a-ref") || f.Contains("c-ref") {
		t.Error("Unexpected membership result")
	}
	projects := f.Projects()
	if len(projects) != 2 || projects[0] != "a-ref" || projects[1] != "b-ref" {
		t.Errorf("Expected sorted unique projects, got %v", projects)
	}
}

func TestAuditLogHelpers(t *testing.T) {
	log := AuditLog{
		OccurredAt: "2025-10-06T09:15:00.000Z",
		Action: AuditAction{
			Name:     "project.create",
			Metadata: []ActionMetadata{{Method: "POST", Status: IntPtr(201)}},
		},
		Actor: AuditActor{ID: "u1", Metadata: []ActorMetadata{{Email: "jane@example.com"}}},
	}

	if status, ok := log.StatusCode(); !ok || status != 201 {
		t.Errorf("Expected status 201, got %d (%v)", status, ok)
	}
	if !log.OccurredTime().Equal(time.Date(2025, 10, 6, 9, 15, 0, 0, time.UTC)) {
		t.Errorf("Unexpected occurred time %v", log.OccurredTime())
	}
	if log.ActorEmail() != "jane@example.com" {
		t.Errorf("Unexpected actor email %q", log.ActorEmail())
	}

	noStatus := AuditLog{OccurredAt: "not a time"}
	if _, ok := noStatus.StatusCode(); ok {
		t.Error("Expected no status code")
	}
	if !noStatus.OccurredTime().IsZero() {
		t.Error("Expected zero time for unparseable timestamp")
	}
}

// Test identifier validation
func TestProjectFormValidation(t *testing.T) {
	valid := ProjectForm{Ref: "abcd-1234", Name: "Shop", OrganizationSlug: "acme"}
	if errors := valid.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalid := ProjectForm{Ref: "Bad Ref", Name: "", OrganizationSlug: "Acme!"}
	if errors := invalid.Validate(); len(errors) != 3 {
		t.Errorf("Expected 3 errors for invalid form, got: %v", errors)
	}

	org := OrganizationForm{Slug: "", Name: "Acme"}
	if errors := org.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for organization form, got: %v", errors)
	}
}

// Padding around refs and slugs is not an identifier error
func TestFormValidationIgnoresSurroundingWhitespace(t *testing.T) {
	project := ProjectForm{Ref: " abcd ", Name: "Shop", OrganizationSlug: " acme\t"}
	if errors := project.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for padded project form, got: %v", errors)
	}

	org := OrganizationForm{Slug: " acme ", Name: "Acme"}
	if errors := org.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for padded organization form, got: %v", errors)
	}

	blank := OrganizationForm{Slug: "   ", Name: "Acme"}
	if errors := blank.Validate(); len(errors) != 1 || errors[0] != "Slug is required" {
		t.Errorf("Expected a required error for a blank slug, got: %v", errors)
	}
}

func TestSortOrderToggle(t *testing.T) {
	if SortDescending.Toggle() != SortAscending || SortAscending.Toggle() != SortDescending {
		t.Error("Expected toggle to flip the order")
	}
	if SortDescending.String() != "desc" || SortAscending.String() != "asc" {
		t.Error("Unexpected sort order names")
	}
}
