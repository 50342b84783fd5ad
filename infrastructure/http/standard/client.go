// ABOUTME: Standard HTTP client implementation with timeout and client-wide headers
// ABOUTME: Every request carries the same header set, including the news API Authorization key

package standard

import (
	"context"
	"net/http"
	"time"

	"news-sentiment-dashboard/core/interfaces"
)

const userAgent = "NewsSentimentDashboard/1.0"

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithHeader adds a header sent on every request
func WithHeader(key, value string) Option {
	return func(c *StandardHTTPClient) {
		if value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = rt
	}
}

// StandardHTTPClient implements the HTTPClient interface using net/http.
// Requests are issued once; there is no retry.
type StandardHTTPClient struct {
	client  *http.Client
	headers http.Header
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		headers: http.Header{},
	}
	c.headers.Set("User-Agent", userAgent)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}
