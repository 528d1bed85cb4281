// Package dbservice implements the HTTP client for the sibling DB
// microservice that owns every record the portal reads or writes.
package dbservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
	"github.com/gurukulhq/portal-backend/internal/pkg/logger"
	"github.com/gurukulhq/portal-backend/internal/pkg/metrics"
)

// DefaultTimeout bounds every outbound call unless the config overrides it.
const DefaultTimeout = 60 * time.Second

// Config defines DB service connection settings
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client is a thin typed wrapper over net/http for DB service calls.
// All entity repositories share one Client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a new DB service client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: config.BaseURL,
		token:   config.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get issues a GET to path with query params and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build db service request: %w", err)
	}

	return c.do(req, out)
}

// Post issues a POST to path with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH to path with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.send(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode db service request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build db service request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, "transport_error").Inc()
		return classifyTransportError(req, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, "upstream_error").Inc()
		// Drain for connection reuse; the body content is not part of the
		// portal's error contract.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		logger.Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", resp.StatusCode).
			Msg("db service returned non-2xx status")
		return apperrors.NewCustomError(apperrors.ErrUpstreamFailed,
			fmt.Sprintf("db service returned status %d for %s", resp.StatusCode, req.URL.Path))
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(req.Method, "ok").Inc()

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error().Err(err).Str("path", req.URL.Path).Msg("failed to decode db service response")
		return apperrors.NewCustomError(apperrors.ErrMalformedResponse,
			fmt.Sprintf("could not decode db service response for %s", req.URL.Path))
	}

	return nil
}

func classifyTransportError(req *http.Request, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewCustomError(apperrors.ErrUpstreamTimeout, "db service request timed out")
	case errors.As(err, &netErr) && netErr.Timeout():
		return apperrors.NewCustomError(apperrors.ErrUpstreamTimeout, "db service request timed out")
	default:
		logger.Error().Err(err).Str("url", req.URL.String()).Msg("db service connection error")
		return apperrors.NewCustomError(apperrors.ErrUpstreamUnavailable, "db service unavailable")
	}
}
