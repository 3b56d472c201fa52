// Package publish uploads built sites to a hosting endpoint.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lumenlabs/lumen/internal/models"
	"github.com/rs/zerolog"
)

// Client errors.
var (
	ErrNoEndpoint = errors.New("publish endpoint is not configured")
	ErrNoToken    = errors.New("publish token is not configured")
)

// APIError reports a rejected request.
type APIError struct {
	Status    int
	RequestID string
	Message   string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request %s rejected with status %d: %s", e.RequestID, e.Status, e.Message)
	}
	return fmt.Sprintf("request %s rejected with status %d", e.RequestID, e.Status)
}

// Client is the hosting API client. Every request carries the bearer token
// and a generated request ID; non-2xx responses are logged and rejected.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   zerolog.Logger
}

// NewClient creates a publish client for the given endpoint and token.
func NewClient(endpoint, token string, logger zerolog.Logger) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, ErrNoEndpoint
	}
	if strings.TrimSpace(token) == "" {
		return nil, ErrNoToken
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		http:     &http.Client{Timeout: 60 * time.Second},
		logger:   logger,
	}, nil
}

// WhoAmI returns the account the token belongs to.
func (c *Client) WhoAmI(ctx context.Context) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/me", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode account response: %w", err)
	}
	return &user, nil
}

// DeployResult is the hosting service's answer to an upload.
type DeployResult struct {
	DeployID string `json:"deploy_id"`
	URL      string `json:"url"`
}

// Deploy uploads a site archive.
func (c *Client) Deploy(ctx context.Context, site string, archive io.Reader) (*DeployResult, error) {
	if strings.TrimSpace(site) == "" {
		return nil, errors.New("site name is required")
	}

	path := fmt.Sprintf("/v1/sites/%s/deploys", site)
	resp, err := c.do(ctx, http.MethodPost, path, "application/gzip", archive)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result DeployResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode deploy response: %w", err)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	requestID := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("publish request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := readErrorMessage(resp.Body)
		resp.Body.Close()
		c.logger.Error().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("publish request rejected")
		return nil, &APIError{Status: resp.StatusCode, RequestID: requestID, Message: message}
	}

	return resp, nil
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(data))
}
