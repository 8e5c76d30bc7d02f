package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/auditlog-viewer/authenticator"
	"github.com/blogem/auditlog-viewer/config"
	"github.com/blogem/auditlog-viewer/controllers"
	"github.com/blogem/auditlog-viewer/database"
	"github.com/blogem/auditlog-viewer/logger"
	authmiddleware "github.com/blogem/auditlog-viewer/middleware"
	"github.com/blogem/auditlog-viewer/repositories"
	"github.com/blogem/auditlog-viewer/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load the env vars: %v", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		log.Fatalf("Invalid configuration:\n  %s", strings.Join(errs, "\n  "))
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		zl.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	repos := repositories.NewRepositories(database.GetDB(), cfg.LocalRetentionDays)

	var sources repositories.SourceProvider
	if cfg.LocalMode() {
		sources = repositories.NewLocalSourceProvider(repos)
	} else {
		sources = repositories.NewPlatformSourceProvider(repositories.PlatformConfig{BaseURL: cfg.PlatformAPIURL})
	}

	srvs := services.NewServices(repos, sources, cfg.LocalMode(), services.ViewOptions{
		DefaultWindow:   cfg.DefaultWindow,
		RefreshInterval: cfg.RefreshInterval,
	}, zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without an identity provider everyone is signed in as the local user
	var provider authenticator.Provider
	if cfg.OIDCEnabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDCDomain,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			zl.Fatal("failed to initialize OpenID provider", zap.Error(err))
		}
	}

	ctrl := controllers.NewControllers(srvs, provider, zl)

	r, err := setupRouter(cfg, ctrl, repos, provider != nil, zl)
	if err != nil {
		zl.Fatal("failed to setup router", zap.Error(err))
	}

	go srvs.Views.RunJanitor(ctx, time.Minute, cfg.SessionLifetime)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("🚀 Audit Log Viewer starting on port %s\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DatabasePath)
	fmt.Printf("🔎 Audit logs from: %s (refresh every %s)\n", cfg.DataSource, cfg.RefreshInterval)
	if provider == nil {
		fmt.Printf("🔓 No OIDC_DOMAIN set, signing everyone in as %s\n", authmiddleware.DevUserEmail)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}

	srvs.Views.CloseAll()
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, repos *repositories.Repositories, oidcEnabled bool, zl *zap.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Session middleware
	lifetime := int64(cfg.SessionLifetime / time.Second)
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "auditlog_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     lifetime,
		Maxlifetime:    lifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Landing.Index)
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "auditlog-viewer", "source": %q}`, cfg.DataSource)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		if oidcEnabled {
			r.Use(authmiddleware.RequireAuth)
		} else {
			r.Use(authmiddleware.DevAuth)
		}
		// Mutations are recorded where the viewer can read them back
		if cfg.LocalMode() {
			r.Use(authmiddleware.AuditLogger(repos.Audit, zl.Named("audit")))
		}

		r.Route("/audit", func(r chi.Router) {
			r.Get("/", ctrl.AuditLogs.Index)
			r.Get("/logs.json", ctrl.AuditLogs.LogsJSON)
			r.Get("/range.json", ctrl.AuditLogs.RangeJSON)
			r.Post("/filters", ctrl.AuditLogs.SetFilters)
			r.Post("/filters/reset", ctrl.AuditLogs.ResetFilters)
			r.Post("/range", ctrl.AuditLogs.SetRange)
			r.Post("/sort", ctrl.AuditLogs.ToggleSort)
			r.Post("/refresh", ctrl.AuditLogs.Refresh)
		})

		// The local store's directory only exists when logs come from it
		if cfg.LocalMode() {
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", ctrl.Directory.Projects)
				r.Post("/", ctrl.Directory.CreateProject)
			})
			r.Route("/organizations", func(r chi.Router) {
				r.Get("/", ctrl.Directory.Organizations)
				r.Post("/", ctrl.Directory.CreateOrganization)
			})
		}
	})

	return r, nil
}
