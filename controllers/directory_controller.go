package controllers

import (
	"net/http"

	"github.com/blogem/auditlog-viewer/models"
	"github.com/blogem/auditlog-viewer/services"
)

// DirectoryController manages the local store's projects and organizations
type DirectoryController struct {
	services *services.Services
}

// NewDirectoryController creates a new directory controller
func NewDirectoryController(services *services.Services) *DirectoryController {
	return &DirectoryController{
		services: services,
	}
}

type directoryPageData struct {
	layoutData
	Projects         []models.Project
	Organizations    []models.Organization
	ProjectForm      *models.ProjectForm
	OrganizationForm *models.OrganizationForm
}

func (c *DirectoryController) render(w http.ResponseWriter, r *http.Request, status int, currentPage, title, formErr string, projectForm *models.ProjectForm, orgForm *models.OrganizationForm) {
	projects, err := c.services.Directory.GetAllProjects(r.Context())
	if err != nil {
		http.Error(w, "Failed to load projects: "+err.Error(), http.StatusInternalServerError)
		return
	}
	orgs, err := c.services.Directory.GetAllOrganizations(r.Context())
	if err != nil {
		http.Error(w, "Failed to load organizations: "+err.Error(), http.StatusInternalServerError)
		return
	}

	data := directoryPageData{
		layoutData:       newLayoutData(r, c.services.LocalMode, title, currentPage),
		Projects:         projects,
		Organizations:    orgs,
		ProjectForm:      projectForm,
		OrganizationForm: orgForm,
	}
	data.Error = formErr

	renderTemplateWithStatus(w, status, currentPage, "directory.html", data)
}

// Projects handles GET /projects
func (c *DirectoryController) Projects(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, "projects", "Projects", "", &models.ProjectForm{}, &models.OrganizationForm{})
}

// CreateProject handles POST /projects
func (c *DirectoryController) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.ProjectForm{
		Ref:              r.FormValue("ref"),
		Name:             r.FormValue("name"),
		OrganizationSlug: r.FormValue("organization_slug"),
	}

	if _, err := c.services.Directory.CreateProject(r.Context(), form); err != nil {
		c.render(w, r, http.StatusBadRequest, "projects", "Projects", err.Error(), form, &models.OrganizationForm{})
		return
	}

	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

// Organizations handles GET /organizations
func (c *DirectoryController) Organizations(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, "organizations", "Organizations", "", &models.ProjectForm{}, &models.OrganizationForm{})
}

// CreateOrganization handles POST /organizations
func (c *DirectoryController) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := &models.OrganizationForm{
		Slug: r.FormValue("slug"),
		Name: r.FormValue("name"),
	}

	if _, err := c.services.Directory.CreateOrganization(r.Context(), form); err != nil {
		c.render(w, r, http.StatusBadRequest, "organizations", "Organizations", err.Error(), &models.ProjectForm{}, form)
		return
	}

	http.Redirect(w, r, "/organizations", http.StatusSeeOther)
}
