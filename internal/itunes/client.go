// Package itunes provides a client and data model for the iTunes Search API.
package itunes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://itunes.apple.com"
	userAgent      = "storesearch/1.0 (https://github.com/llehouerou/storesearch)"

	defaultTimeout   = 15 * time.Second
	defaultPerMinute = 20 // documented fair-use limit
	rateBurst        = 3
	maxBodySize      = 10 << 20
)

// ErrBadStatus matches every *StatusError.
var ErrBadStatus = errors.New("unexpected status")

// StatusError reports a non-200 response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d %s", e.Code, http.StatusText(e.Code))
}

// Is makes errors.Is(err, ErrBadStatus) true for any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}

// Client is an iTunes Search API client. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host (tests, mirrors).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit caps outgoing requests per minute. Zero or less disables it.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), rateBurst)
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// New creates a new client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/defaultPerMinute), rateBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the host searches are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches rawURL and returns the body and status code. A non-200 status
// is not an error here; the caller decides. Errors are transport failures,
// including cancellation of ctx.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, fmt.Errorf("rate limit: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// Search runs q and returns the parsed results in server order.
func (c *Client) Search(ctx context.Context, q Query) ([]Result, error) {
	body, status, err := c.Get(ctx, SearchURL(c.baseURL, q))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Code: status}
	}
	return ParseResponse(body)
}
