package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/repositories/mocks"
)

var fixedNow = time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)

func logAt(occurredAt time.Time, name, projectRef, orgSlug string) models.AuditLog {
	return models.AuditLog{
		OccurredAt: models.FormatISO(occurredAt),
		Action:     models.AuditAction{Name: name, Metadata: []models.ActionMetadata{{Status: models.IntPtr(200)}}},
		Target:     models.AuditTarget{Metadata: models.TargetMetadata{ProjectRef: projectRef, OrgSlug: orgSlug}},
	}
}

func sampleLogs() []models.AuditLog {
	return []models.AuditLog{
		logAt(fixedNow.Add(-3*time.Hour), "project.create", "ref-a", ""),
		logAt(fixedNow.Add(-1*time.Hour), "project.pause", "ref-b", ""),
		logAt(fixedNow.Add(-2*time.Hour), "org.update", "", "acme"),
		logAt(fixedNow.Add(-30*time.Minute), "project.restore", "ref-a", ""),
	}
}

func actionNames(logs []models.AuditLog) []string {
	names := make([]string, len(logs))
	for i, l := range logs {
		names[i] = l.Action.Name
	}
	return names
}

func TestSortAuditLogs_DescendingIsReverseOfAscending(t *testing.T) {
	logs := sampleLogs()

	desc := SortAuditLogs(logs, models.SortDescending)
	asc := SortAuditLogs(logs, models.SortAscending)

	assert.Equal(t, []string{"project.restore", "project.pause", "org.update", "project.create"}, actionNames(desc))
	for i := range desc {
		assert.Equal(t, desc[i], asc[len(asc)-1-i])
	}

	// Input is left untouched
	assert.Equal(t, "project.create", logs[0].Action.Name)
}

func TestSortAuditLogs_TiesKeepFetchOrder(t *testing.T) {
	same := fixedNow.Add(-time.Hour)
	logs := []models.AuditLog{
		logAt(same, "first", "", ""),
		logAt(same, "second", "", ""),
		logAt(fixedNow, "latest", "", ""),
	}

	assert.Equal(t, []string{"latest", "first", "second"}, actionNames(SortAuditLogs(logs, models.SortDescending)))
	assert.Equal(t, []string{"first", "second", "latest"}, actionNames(SortAuditLogs(logs, models.SortAscending)))
}

func TestFilterAuditLogs(t *testing.T) {
	sorted := SortAuditLogs(sampleLogs(), models.SortDescending)

	// Empty filter returns the sorted list unchanged
	assert.Equal(t, sorted, FilterAuditLogs(sorted, models.NewFilterState()))

	// A single project keeps only its logs
	filtered := FilterAuditLogs(sorted, models.NewFilterState("ref-a"))
	assert.Len(t, filtered, 2)
	for _, l := range filtered {
		assert.Equal(t, "ref-a", l.Target.Metadata.ProjectRef)
	}

	// Unknown projects match nothing
	assert.Empty(t, FilterAuditLogs(sorted, models.NewFilterState("ref-z")))
}

func TestMinSelectableDate(t *testing.T) {
	now := time.Date(2025, 10, 6, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), MinSelectableDate(now, 7))
	assert.Equal(t, time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), MinSelectableDate(now, 0))
	assert.Equal(t, now, MaxSelectableDate(now))
}

// AuditLogServiceTestSuite is a test suite for the audit log service
type AuditLogServiceTestSuite struct {
	suite.Suite
	service     AuditLogService
	mockSources *mocks.MockSources
	view        *AuditView
	ticker      *fakeTicker
	restoreNow  func()
}

// SetupTest sets up the test suite before each test
func (suite *AuditLogServiceTestSuite) SetupTest() {
	suite.restoreNow = freezeTime(fixedNow)
	suite.mockSources = mocks.NewMockSources(suite.T())
	suite.service = NewAuditLogService(DefaultRefreshInterval, nil)
	suite.ticker = newFakeTicker()
	suite.view = NewAuditView("user-1", ViewOptions{NewTicker: suite.ticker.factory})
}

// TearDownTest closes the view and restores the clock
func (suite *AuditLogServiceTestSuite) TearDownTest() {
	suite.view.Close()
	suite.restoreNow()
}

func (suite *AuditLogServiceTestSuite) expectDirectory() {
	suite.mockSources.EXPECT().ListProjects(mock.Anything).Return([]models.Project{
		{Ref: "ref-a", Name: "Webshop"},
		{Ref: "ref-b", Name: "Analytics"},
	}, nil)
	suite.mockSources.EXPECT().ListOrganizations(mock.Anything).Return([]models.Organization{
		{Slug: "acme", Name: "Acme Inc"},
	}, nil)
}

// TestGetAuditLogs_SortsFiltersAndLabels tests the happy path
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_SortsFiltersAndLabels() {
	suite.expectDirectory()
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, suite.view.Range()).
		Return(&models.AuditLogsResponse{Result: sampleLogs(), RetentionPeriod: 7}, nil).Once()

	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	assert.True(suite.T(), page.Loaded())
	assert.Equal(suite.T(), 4, page.TotalCount)
	assert.Equal(suite.T(), 4, page.ShownCount)
	assert.Equal(suite.T(), 7, page.RetentionPeriod)
	assert.Equal(suite.T(), time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), page.MinDate)
	assert.Equal(suite.T(), "desc", page.SortOrder)
	assert.Empty(suite.T(), page.EmptyMessage)

	assert.Equal(suite.T(), "project.restore", page.Rows[0].ActionName)
	assert.Equal(suite.T(), "Project: Webshop", page.Rows[0].TargetName)
	assert.Equal(suite.T(), "Ref: ref-a", page.Rows[0].TargetRef)
	assert.True(suite.T(), page.Rows[0].HasStatus)
	assert.Equal(suite.T(), 200, page.Rows[0].Status)

	assert.Equal(suite.T(), "Organization: Acme Inc", page.Rows[2].TargetName)
	assert.Equal(suite.T(), "Slug: acme", page.Rows[2].TargetRef)

	assert.Len(suite.T(), page.FilterOptions, 2)
	assert.False(suite.T(), page.FilterOptions[0].Selected)
}

// TestGetAuditLogs_UsesCachedResponse tests that sort and filter changes do not refetch
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_UsesCachedResponse() {
	suite.expectDirectory()
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, suite.view.Range()).
		Return(&models.AuditLogsResponse{Result: sampleLogs(), RetentionPeriod: 1}, nil).Once()

	suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	suite.view.ToggleSort()
	suite.view.SetFilter(models.NewFilterState("ref-b"))
	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	assert.Equal(suite.T(), "asc", page.SortOrder)
	assert.Equal(suite.T(), 4, page.TotalCount)
	assert.Equal(suite.T(), 1, page.ShownCount)
	assert.Equal(suite.T(), "project.pause", page.Rows[0].ActionName)
	assert.Equal(suite.T(), []string{"ref-b"}, page.Filters)
}

// TestGetAuditLogs_ForceRefetches tests the manual refresh
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_ForceRefetches() {
	suite.expectDirectory()
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, suite.view.Range()).
		Return(&models.AuditLogsResponse{Result: []models.AuditLog{}, RetentionPeriod: 1}, nil).Twice()

	suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)
	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, true)

	assert.Equal(suite.T(), NoLogsMessage, page.EmptyMessage)
}

// TestGetAuditLogs_FilterMatchesNothing tests the filtered empty state
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_FilterMatchesNothing() {
	suite.expectDirectory()
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, mock.Anything).
		Return(&models.AuditLogsResponse{Result: sampleLogs(), RetentionPeriod: 1}, nil)

	suite.view.SetFilter(models.NewFilterState("ref-z"))
	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	assert.Equal(suite.T(), 4, page.TotalCount)
	assert.Equal(suite.T(), 0, page.ShownCount)
	assert.Empty(suite.T(), page.Rows)
	assert.Equal(suite.T(), NoFilteredLogsMessage, page.EmptyMessage)
}

// TestGetAuditLogs_RetrievalFailure tests the inline error state
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_RetrievalFailure() {
	suite.expectDirectory()
	apiErr := errors.New("connection refused")
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, mock.Anything).Return(nil, apiErr).Once()

	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	assert.False(suite.T(), page.Loaded())
	assert.ErrorIs(suite.T(), page.Error, apiErr)
	assert.Equal(suite.T(), RetrievalFailedSubject, page.Error.Subject())
	assert.Contains(suite.T(), page.ErrorMessage, "connection refused")
	assert.Empty(suite.T(), page.Rows)
}

// TestGetAuditLogs_DirectoryFailureIsNotFatal tests that missing labels do not hide logs
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_DirectoryFailureIsNotFatal() {
	suite.mockSources.EXPECT().ListProjects(mock.Anything).Return(nil, errors.New("boom"))
	suite.mockSources.EXPECT().ListOrganizations(mock.Anything).Return(nil, errors.New("boom"))
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, mock.Anything).
		Return(&models.AuditLogsResponse{Result: sampleLogs(), RetentionPeriod: 1}, nil)

	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	assert.True(suite.T(), page.Loaded())
	assert.Equal(suite.T(), "-", page.Rows[0].TargetName)
	assert.Equal(suite.T(), "Ref: ref-a", page.Rows[0].TargetRef)
}

// TestGetAuditLogs_SelectedLog tests the detail panel lookup
func (suite *AuditLogServiceTestSuite) TestGetAuditLogs_SelectedLog() {
	suite.expectDirectory()
	logs := sampleLogs()
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, mock.Anything).
		Return(&models.AuditLogsResponse{Result: logs, RetentionPeriod: 1}, nil)

	suite.view.Select(logs[2].Key())
	page := suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)

	if assert.NotNil(suite.T(), page.Selected) {
		assert.Equal(suite.T(), "org.update", page.Selected.ActionName)
	}

	suite.view.Select("missing")
	page = suite.service.GetAuditLogs(context.Background(), suite.mockSources, suite.view, false)
	assert.Nil(suite.T(), page.Selected)
}

// TestSetDateRange_WithinRetention tests applying a picked range
func (suite *AuditLogServiceTestSuite) TestSetDateRange_WithinRetention() {
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, mock.Anything).
		Return(&models.AuditLogsResponse{Result: []models.AuditLog{}, RetentionPeriod: 7}, nil).Once()

	err := suite.service.SetDateRange(context.Background(), suite.mockSources, suite.view,
		&models.DateRangeForm{From: "2025-09-29", To: "2025-10-06"})

	assert.NoError(suite.T(), err)
	rng := suite.view.Range()
	assert.Equal(suite.T(), time.Date(2025, 9, 29, 0, 0, 0, 0, time.UTC), rng.From)
	assert.Equal(suite.T(), fixedNow, rng.To)
	assert.Equal(suite.T(), 1, suite.ticker.resetCount())
}

// TestSetDateRange_OutsideRetention tests that ranges older than the retention period are rejected
func (suite *AuditLogServiceTestSuite) TestSetDateRange_OutsideRetention() {
	suite.view.storeResponse(suite.view.Range(), &models.AuditLogsResponse{RetentionPeriod: 1})
	before := suite.view.Range()

	err := suite.service.SetDateRange(context.Background(), suite.mockSources, suite.view,
		&models.DateRangeForm{From: "2025-10-01", To: "2025-10-06"})

	var validationErr *ValidationFailedError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Contains(suite.T(), err.Error(), "05 Oct 2025")
	assert.Equal(suite.T(), before, suite.view.Range())
}

// TestSetDateRange_InvalidForm tests form validation
func (suite *AuditLogServiceTestSuite) TestSetDateRange_InvalidForm() {
	err := suite.service.SetDateRange(context.Background(), suite.mockSources, suite.view,
		&models.DateRangeForm{From: "2025-10-06", To: "2025-10-01"})

	var validationErr *ValidationFailedError
	assert.ErrorAs(suite.T(), err, &validationErr)
	assert.Len(suite.T(), validationErr.Messages, 1)
}

// TestSetDateRange_RetentionLookupFails tests that a failing source surfaces as a retrieval error
func (suite *AuditLogServiceTestSuite) TestSetDateRange_RetentionLookupFails() {
	suite.mockSources.EXPECT().FetchAuditLogs(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	err := suite.service.SetDateRange(context.Background(), suite.mockSources, suite.view,
		&models.DateRangeForm{From: "2025-10-06", To: "2025-10-06"})

	var retrievalErr *RetrievalError
	assert.ErrorAs(suite.T(), err, &retrievalErr)
}

func TestRunAuditLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogServiceTestSuite))
}
