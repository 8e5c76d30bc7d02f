package middleware

import (
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/auditlog-viewer/userctx"
)

// Session keys shared with the auth controller
const (
	SessionUserID      = "user_id"
	SessionUserEmail   = "user_email"
	SessionAccessToken = "access_token"
	SessionRedirect    = "redirect_after_login"
)

// Local user used when no identity provider is configured
const (
	DevUserID    = "local-dev-user"
	DevUserEmail = "dev@localhost"
)

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID, _ := sess.Get(SessionUserID).(string)

		if userID == "" {
			// Only remember pages, not form posts or background polls
			if r.Method == http.MethodGet && !strings.HasSuffix(r.URL.Path, ".json") {
				sess.Set(SessionRedirect, r.URL.RequestURI())
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		email, _ := sess.Get(SessionUserEmail).(string)
		token, _ := sess.Get(SessionAccessToken).(string)

		ctx := userctx.WithUser(r.Context(), userID, email, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DevAuth signs every request in as the fixed local user
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := userctx.WithUser(r.Context(), DevUserID, DevUserEmail, "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
