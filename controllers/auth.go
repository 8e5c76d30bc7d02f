package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/authenticator"
	"github.com/blogem/auditlog-viewer/middleware"
	"github.com/blogem/auditlog-viewer/services"
)

const sessionState = "state"

// AuthController handles sign-in and sign-out
type AuthController struct {
	services *services.Services
	provider authenticator.Provider
	logger   *zap.Logger
}

// NewAuthController creates a new auth controller. provider is nil in development mode.
func NewAuthController(services *services.Services, provider authenticator.Provider, logger *zap.Logger) *AuthController {
	return &AuthController{
		services: services,
		provider: provider,
		logger:   logger,
	}
}

// Login initiates the authentication process
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if ac.provider == nil {
		http.Redirect(w, r, "/audit", http.StatusSeeOther)
		return
	}

	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set(sessionState, state)

	http.Redirect(w, r, ac.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the redirect back from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if ac.provider == nil {
		http.NotFound(w, r)
		return
	}

	sess := session.GetSession(r)

	storedState, _ := sess.Get(sessionState).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	token, err := ac.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		ac.logger.Warn("code exchange failed", zap.Error(err))
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	claims, err := ac.provider.GetClaims(r.Context(), token)
	if err != nil {
		ac.logger.Warn("id token verification failed", zap.Error(err))
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	identity, err := claims.Identity()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sess.Set(middleware.SessionUserID, identity.Subject)
	sess.Set(middleware.SessionUserEmail, identity.Email)
	sess.Set(middleware.SessionAccessToken, token.AccessToken)
	sess.Delete(sessionState)

	ac.logger.Info("user signed in", zap.String("user_id", identity.Subject), zap.String("email", identity.Email))

	destination := "/audit"
	if target, _ := sess.Get(middleware.SessionRedirect).(string); strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		destination = target
	}
	sess.Delete(middleware.SessionRedirect)

	http.Redirect(w, r, destination, http.StatusSeeOther)
}

// Logout clears the session and tears down the user's audit log view
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	userID, _ := sess.Get(middleware.SessionUserID).(string)
	if ac.provider == nil {
		userID = middleware.DevUserID
	}
	if userID != "" {
		ac.services.Views.Close(userID)
		ac.logger.Info("user signed out", zap.String("user_id", userID))
	}

	for _, key := range []string{middleware.SessionUserID, middleware.SessionUserEmail, middleware.SessionAccessToken, middleware.SessionRedirect} {
		sess.Delete(key)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
