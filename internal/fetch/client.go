package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pagepeek/pagepeek/internal/model"
)

// Default transport limits
const (
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
	RequestIDPrefix    = "req-"
)

// Default request headers. The User-Agent mirrors a desktop Firefox so
// servers return the same markup a real browser would get.
const (
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
	AcceptHeader     = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	AcceptLanguage   = "en-US,en;q=0.5"
)

// Client fetches pages over plain HTTP(S) using the standard library client.
// Redirect handling stays at the net/http default.
type Client struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// Option configures a Client.
type Option func(*Client)

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum number of response bytes to read.
func WithMaxBodySize(size int64) Option {
	return func(c *Client) {
		c.maxBodySize = size
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a new transport client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		client:      &http.Client{},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch performs one GET request and reads the full body, capped at the
// configured maximum size. The caller's context governs the deadline.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*model.FetchResponse, error) {
	reqID := generateRequestID()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", AcceptHeader)
	req.Header.Set("Accept-Language", AcceptLanguage)

	log.Printf("fetch %s: GET %s", reqID, pageURL)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Read body with limit
	bodyReader := io.LimitReader(resp.Body, c.maxBodySize)
	body, err := io.ReadAll(bodyReader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	log.Printf("fetch %s: %s, %d bytes", reqID, resp.Status, len(body))

	return &model.FetchResponse{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
	}, nil
}

// generateRequestID generates a unique request ID using UUID v7 for better uniqueness and time ordering
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
