package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/blogem/auditlog-viewer/models"
)

// APIError is returned when the platform API answers with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("platform API returned status %d: %s", e.StatusCode, e.Message)
}

// PlatformConfig configures the remote platform API client
type PlatformConfig struct {
	BaseURL string
	Timeout time.Duration
	// Transport is used for outgoing requests; nil means http.DefaultTransport
	Transport http.RoundTripper
}

type platformProvider struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

// NewPlatformSourceProvider creates a provider that reads from the remote platform API
// on behalf of each user
func NewPlatformSourceProvider(cfg PlatformConfig) SourceProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &platformProvider{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   timeout,
		transport: cfg.Transport,
	}
}

// ForUser returns a client that authenticates with the user's access token
func (p *platformProvider) ForUser(accessToken string) Sources {
	ctx := context.Background()
	if p.transport != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: p.transport})
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	client.Timeout = p.timeout

	return &platformClient{baseURL: p.baseURL, httpClient: client}
}

// platformClient implements Sources against the remote platform API
type platformClient struct {
	baseURL    string
	httpClient *http.Client
}

// FetchAuditLogs calls GET /platform/profile/audit for the window
func (c *platformClient) FetchAuditLogs(ctx context.Context, rng models.DateRange) (*models.AuditLogsResponse, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	start, end := rng.ISOStrings()
	params := url.Values{}
	params.Set("iso_timestamp_start", start)
	params.Set("iso_timestamp_end", end)

	var response models.AuditLogsResponse
	if err := c.get(ctx, "/platform/profile/audit", params, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	if response.Result == nil {
		response.Result = []models.AuditLog{}
	}
	return &response, nil
}

// ListProjects calls GET /platform/projects
func (c *platformClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := c.get(ctx, "/platform/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListOrganizations calls GET /platform/organizations
func (c *platformClient) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs := []models.Organization{}
	if err := c.get(ctx, "/platform/organizations", nil, &orgs); err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

func (c *platformClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads the {"message": "..."} body the platform sends on failure
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
