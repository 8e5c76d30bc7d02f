package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data sources for audit logs
const (
	SourceLocal    = "local"
	SourcePlatform = "platform"
)

// Config holds the runtime configuration of the viewer
type Config struct {
	Port         string
	DatabasePath string
	DataSource   string

	PlatformAPIURL string

	OIDCDomain       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCCallbackURL  string
	UseHTTPS         bool

	RefreshInterval    time.Duration
	DefaultWindow      time.Duration
	LocalRetentionDays int
	SessionLifetime    time.Duration

	LogLevel    string
	LogEncoding string

	// problems collects values that could not be parsed
	problems []string
}

// Load reads .env (if present) and then the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from environment variables alone
func FromEnv() *Config {
	cfg := &Config{
		Port:             getenv("PORT", "8080"),
		DatabasePath:     getenv("DATABASE_PATH", "auditlog_viewer.db"),
		DataSource:       strings.ToLower(strings.TrimSpace(getenv("DATA_SOURCE", SourceLocal))),
		PlatformAPIURL:   strings.TrimRight(strings.TrimSpace(os.Getenv("PLATFORM_API_URL")), "/"),
		OIDCDomain:       strings.TrimSpace(os.Getenv("OIDC_DOMAIN")),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCCallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		UseHTTPS:         os.Getenv("USE_HTTPS") == "true",
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogEncoding:      strings.ToLower(getenv("LOG_ENCODING", "console")),
	}

	cfg.RefreshInterval = cfg.duration("AUDIT_REFRESH_INTERVAL", 5*time.Minute)
	cfg.DefaultWindow = cfg.duration("AUDIT_DEFAULT_WINDOW", 24*time.Hour)
	cfg.SessionLifetime = cfg.duration("SESSION_LIFETIME", time.Hour)
	cfg.LocalRetentionDays = cfg.integer("LOCAL_RETENTION_DAYS", 1)

	return cfg
}

// LocalMode reports whether audit logs are served from the local SQLite store
func (c *Config) LocalMode() bool {
	return c.DataSource == SourceLocal
}

// OIDCEnabled reports whether an OpenID Connect issuer is configured
func (c *Config) OIDCEnabled() bool {
	return c.OIDCDomain != ""
}

// Validate returns every configuration problem found
func (c *Config) Validate() []string {
	errs := append([]string(nil), c.problems...)

	switch c.DataSource {
	case SourceLocal:
	case SourcePlatform:
		if c.PlatformAPIURL == "" {
			errs = append(errs, "PLATFORM_API_URL is required when DATA_SOURCE is platform")
		}
		if !c.OIDCEnabled() {
			errs = append(errs, "OIDC_DOMAIN is required when DATA_SOURCE is platform")
		}
	default:
		errs = append(errs, fmt.Sprintf("DATA_SOURCE must be %q or %q, got %q", SourceLocal, SourcePlatform, c.DataSource))
	}

	if c.OIDCEnabled() {
		if c.OIDCClientID == "" {
			errs = append(errs, "OIDC_CLIENT_ID is required when OIDC_DOMAIN is set")
		}
		if c.OIDCClientSecret == "" {
			errs = append(errs, "OIDC_CLIENT_SECRET is required when OIDC_DOMAIN is set")
		}
		if c.OIDCCallbackURL == "" {
			errs = append(errs, "OIDC_CALLBACK_URL is required when OIDC_DOMAIN is set")
		}
	}

	if c.RefreshInterval <= 0 {
		errs = append(errs, "AUDIT_REFRESH_INTERVAL must be positive")
	}
	if c.DefaultWindow <= 0 {
		errs = append(errs, "AUDIT_DEFAULT_WINDOW must be positive")
	}
	if c.SessionLifetime < time.Minute {
		errs = append(errs, "SESSION_LIFETIME must be at least 1m")
	}
	if c.LogEncoding != "console" && c.LogEncoding != "json" {
		errs = append(errs, fmt.Sprintf("LOG_ENCODING must be console or json, got %q", c.LogEncoding))
	}
	if c.LocalRetentionDays < 1 {
		errs = append(errs, "LOCAL_RETENTION_DAYS must be at least 1")
	}

	return errs
}

func (c *Config) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("%s is not a valid duration: %q", key, v))
		return def
	}
	return d
}

func (c *Config) integer(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.problems = append(c.problems, fmt.Sprintf("%s is not a valid number: %q", key, v))
		return def
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
