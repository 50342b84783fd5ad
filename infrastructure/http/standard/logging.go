// ABOUTME: Logging round tripper for outgoing requests made by the HTTP client
// ABOUTME: Logs method, URL, status and timing at debug level; headers are never logged

package standard

import (
	"net/http"
	"time"

	"news-sentiment-dashboard/core/interfaces"

	"github.com/google/uuid"
)

// LoggingTransport implements http.RoundTripper with logging
type LoggingTransport struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// NewLoggingTransport wraps next, or http.DefaultTransport when next is nil
func NewLoggingTransport(next http.RoundTripper, logger interfaces.Logger) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{Transport: next, Logger: logger}
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := uuid.New().String()

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
	})

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}
