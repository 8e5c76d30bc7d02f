package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/repositories"
	"github.com/blogem/auditlog-viewer/repositories/mocks"
	"github.com/blogem/auditlog-viewer/services"
	"github.com/blogem/auditlog-viewer/userctx"
)

func newDirectoryController(t *testing.T) (*DirectoryController, *mocks.MockProjectRepository, *mocks.MockOrganizationRepository) {
	projectRepo := mocks.NewMockProjectRepository(t)
	orgRepo := mocks.NewMockOrganizationRepository(t)
	srvs := &services.Services{
		Directory: services.NewDirectoryService(projectRepo, orgRepo),
		LocalMode: true,
	}
	return NewDirectoryController(srvs), projectRepo, orgRepo
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(userctx.WithUser(req.Context(), "user-1", "dev@example.com", ""))
}

func TestDirectoryController_ListsProjects(t *testing.T) {
	controller, projectRepo, orgRepo := newDirectoryController(t)
	projectRepo.EXPECT().GetAll(mock.Anything).Return([]models.Project{{Ref: "abcd", Name: "Webshop", OrganizationSlug: "acme"}}, nil)
	orgRepo.EXPECT().GetAll(mock.Anything).Return([]models.Organization{{Slug: "acme", Name: "Acme"}}, nil)

	rec := httptest.NewRecorder()
	controller.Projects(rec, httptest.NewRequest(http.MethodGet, "/projects", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Webshop")
	assert.Contains(t, rec.Body.String(), `<option value="acme"`)
}

func TestDirectoryController_CreateProject(t *testing.T) {
	controller, projectRepo, _ := newDirectoryController(t)
	projectRepo.EXPECT().GetByRef(mock.Anything, "abcd").Return(nil, repositories.ErrNotFound)
	projectRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	rec := httptest.NewRecorder()
	controller.CreateProject(rec, formRequest("/projects", url.Values{"ref": {"abcd"}, "name": {"Webshop"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/projects", rec.Header().Get("Location"))
}

func TestDirectoryController_CreateOrganizationValidationError(t *testing.T) {
	controller, projectRepo, orgRepo := newDirectoryController(t)
	projectRepo.EXPECT().GetAll(mock.Anything).Return(nil, nil)
	orgRepo.EXPECT().GetAll(mock.Anything).Return(nil, nil)

	rec := httptest.NewRecorder()
	controller.CreateOrganization(rec, formRequest("/organizations", url.Values{"slug": {"Not A Slug"}, "name": {"Acme"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
	assert.Contains(t, rec.Body.String(), `value="Not A Slug"`)
}
