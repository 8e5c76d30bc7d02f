package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/auditlog-viewer/middleware"
	"github.com/blogem/auditlog-viewer/services"
)

// LandingController serves the public home page
type LandingController struct {
	services *services.Services
	// autoSignIn is set when every visitor is signed in as the local user
	autoSignIn bool
}

// NewLandingController creates a new landing controller
func NewLandingController(services *services.Services, autoSignIn bool) *LandingController {
	return &LandingController{
		services:   services,
		autoSignIn: autoSignIn,
	}
}

// Index handles GET /: signed-in users go straight to their audit logs
func (c *LandingController) Index(w http.ResponseWriter, r *http.Request) {
	if c.autoSignIn {
		http.Redirect(w, r, "/audit", http.StatusSeeOther)
		return
	}
	if userID, _ := session.GetSession(r).Get(middleware.SessionUserID).(string); userID != "" {
		http.Redirect(w, r, "/audit", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "landing", "landing.html", newLayoutData(r, c.services.LocalMode, "Welcome", "landing"))
}
