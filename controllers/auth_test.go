package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/auditlog-viewer/authenticator"
	"github.com/blogem/auditlog-viewer/middleware"
	"github.com/blogem/auditlog-viewer/services"
)

// fakeProvider issues tokens for a fixed user without talking to an identity provider
type fakeProvider struct {
	exchangeErr error
}

func (p *fakeProvider) GetAuthURL(state string) string {
	return "https://idp.example.com/authorize?state=" + url.QueryEscape(state)
}

func (p *fakeProvider) ExchangeCode(_ context.Context, code string) (*authenticator.Token, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return &authenticator.Token{AccessToken: "access-" + code, IDToken: "id-token"}, nil
}

func (p *fakeProvider) GetClaims(context.Context, *authenticator.Token) (authenticator.Claims, error) {
	return authenticator.Claims{"sub": "user-1", "email": "dev@example.com"}, nil
}

func newAuthRouter(t *testing.T, srvs *services.Services, provider authenticator.Provider) http.Handler {
	t.Helper()

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "test_session",
		Gclifetime:  3600,
		Maxlifetime: 3600,
	})
	require.NoError(t, err)

	ctrl := NewControllers(srvs, provider, nil)

	r := chi.NewRouter()
	r.Use(sessionHandler)
	r.Get("/", ctrl.Landing.Index)
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/whoami", func(w http.ResponseWriter, req *http.Request) {
		sess := session.GetSession(req)
		id, _ := sess.Get(middleware.SessionUserID).(string)
		token, _ := sess.Get(middleware.SessionAccessToken).(string)
		w.Write([]byte(id + "|" + token))
	})
	return r
}

func doGet(handler http.Handler, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func newTestServices() *services.Services {
	return &services.Services{
		Views:     services.NewViewRegistry(services.ViewOptions{}, nil),
		LocalMode: true,
	}
}

func TestAuthController_LoginCallbackLogout(t *testing.T) {
	srvs := newTestServices()
	defer srvs.Views.CloseAll()
	router := newAuthRouter(t, srvs, &fakeProvider{})

	rec := doGet(router, "/login", nil)
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	rec = doGet(router, "/callback?code=abc&state="+url.QueryEscape(state), cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/audit", rec.Header().Get("Location"))

	rec = doGet(router, "/whoami", cookies)
	assert.Equal(t, "user-1|access-abc", rec.Body.String())

	// Signed-in visitors skip the landing page
	rec = doGet(router, "/", cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/audit", rec.Header().Get("Location"))

	view := srvs.Views.Get("user-1")
	rec = doGet(router, "/logout", cookies)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, view.Closed())
	_, ok := srvs.Views.Lookup("user-1")
	assert.False(t, ok)

	rec = doGet(router, "/whoami", cookies)
	assert.Equal(t, "|", rec.Body.String())
}

func TestAuthController_CallbackRejectsBadState(t *testing.T) {
	srvs := newTestServices()
	router := newAuthRouter(t, srvs, &fakeProvider{})

	rec := doGet(router, "/callback?code=abc&state=forged", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cookies := doGet(router, "/login", nil).Result().Cookies()
	rec = doGet(router, "/callback?code=abc&state=forged", cookies)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid state parameter")
}

func TestAuthController_CallbackExchangeFailure(t *testing.T) {
	srvs := newTestServices()
	router := newAuthRouter(t, srvs, &fakeProvider{exchangeErr: errors.New("bad code")})

	rec := doGet(router, "/login", nil)
	cookies := rec.Result().Cookies()
	location, _ := url.Parse(rec.Header().Get("Location"))

	rec = doGet(router, "/callback?code=abc&state="+url.QueryEscape(location.Query().Get("state")), cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthController_DevelopmentMode(t *testing.T) {
	srvs := newTestServices()
	router := newAuthRouter(t, srvs, nil)

	rec := doGet(router, "/login", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/audit", rec.Header().Get("Location"))

	rec = doGet(router, "/", nil)
	assert.Equal(t, "/audit", rec.Header().Get("Location"))

	view := srvs.Views.Get(middleware.DevUserID)
	doGet(router, "/logout", nil)
	assert.True(t, view.Closed())
}

func TestLandingController_RendersForAnonymousVisitors(t *testing.T) {
	router := newAuthRouter(t, newTestServices(), &fakeProvider{})

	rec := doGet(router, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log in")
}
