package scraper

import (
	"context"
	"io"
	"strings"
	"sync"

	"news-sentiment-dashboard/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockExtractor returns the whole page body as text unless extractFunc is set
type mockExtractor struct {
	extractFunc func(pageURL string, body io.Reader) (string, error)
}

func (m *mockExtractor) Name() string {
	return "mock"
}

func (m *mockExtractor) Extract(pageURL string, body io.Reader) (string, error) {
	if m.extractFunc != nil {
		return m.extractFunc(pageURL, body)
	}
	data, err := io.ReadAll(body)
	return string(data), err
}

// mockLogger records debug messages
type mockLogger struct {
	mu     sync.Mutex
	debugs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debugs = append(m.debugs, msg)
}

func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// pagesClient serves a fixed body per URL, 404 for anything else
func pagesClient(pages map[string]string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			body, ok := pages[url]
			if !ok {
				return &mockResponse{statusCode: 404, body: "not found"}, nil
			}
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
}
