package gamesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed HTTP client for the Game Helper service. Unauthenticated
// operations hang off the client directly; Login returns a Session for the
// authenticated surface.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated client scope holding a session token.
type Session struct {
	client *Client
	token  string
}

// Token returns the raw session token.
func (s *Session) Token() string { return s.token }

// Register creates a user account with its preference profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login verifies credentials and returns an authenticated Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp SessionResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", "",
		LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token}, nil
}

// GetProfile fetches the joined user + preference record.
func (s *Session) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/profile", s.token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile applies a partial set of preference-field updates.
func (s *Session) UpdateProfile(ctx context.Context, fields map[string]any) error {
	return s.client.doJSON(ctx, http.MethodPatch, "/v1/profile", s.token,
		UpdateProfileRequest{Fields: fields}, nil)
}

// RecommendationFilters are the optional narrowing criteria for a
// recommendation query. Zero values mean "don't filter".
type RecommendationFilters struct {
	Difficulty     string
	Platform       string
	CognitiveFocus string

	// MatchDevices applies the stored preferred-device list as the platform
	// filter when Platform is not set.
	MatchDevices bool
}

// GetRecommendations fetches the filtered game catalog.
func (s *Session) GetRecommendations(ctx context.Context, f RecommendationFilters) (*RecommendationsResponse, error) {
	q := url.Values{}
	if f.Difficulty != "" {
		q.Set("difficulty", f.Difficulty)
	}
	if f.Platform != "" {
		q.Set("platform", f.Platform)
	}
	if f.CognitiveFocus != "" {
		q.Set("focus", f.CognitiveFocus)
	}
	if f.MatchDevices {
		q.Set("match_devices", "true")
	}

	path := "/v1/recommendations"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp RecommendationsResponse
	if err := s.client.doJSON(ctx, http.MethodGet, path, s.token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListGames fetches the full game catalog.
func (c *Client) ListGames(ctx context.Context) (*RecommendationsResponse, error) {
	var resp RecommendationsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/games", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTip fetches the tip of the day.
func (c *Client) GetTip(ctx context.Context) (*TipResponse, error) {
	var resp TipResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/tip", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLiveness checks the /livez endpoint.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetReadiness checks the /readyz endpoint.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON performs a request with optional JSON body and bearer token,
// decoding either the success payload or the error envelope.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gamesdk: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("gamesdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("gamesdk: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var envelope ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
			return &APIError{
				StatusCode:  resp.StatusCode,
				Code:        ErrorCodeServerError,
				Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
			}
		}
		return ParseErrorResponse(resp.StatusCode, envelope)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gamesdk: decode response: %w", err)
	}
	return nil
}
