// ABOUTME: Dashboard handler serves the rendered HTML report at the site root
// ABOUTME: Every page load re-runs the pipeline so refreshing the page refreshes the data

package handlers

import (
	"bytes"
	"net/http"

	"news-sentiment-dashboard/api/middleware"
	"news-sentiment-dashboard/core/interfaces"
)

const failurePage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Dashboard unavailable</title></head>
<body><h1>Dashboard unavailable</h1><p>The latest headlines could not be analyzed. Try refreshing in a moment.</p></body></html>
`

// DashboardHandler renders a fresh report per request
type DashboardHandler struct {
	reports  interfaces.ReportService
	renderer interfaces.ReportRenderer
	logger   interfaces.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reports interfaces.ReportService, renderer interfaces.ReportRenderer, logger interfaces.Logger) *DashboardHandler {
	return &DashboardHandler{
		reports:  reports,
		renderer: renderer,
		logger:   logger,
	}
}

// ServeHTTP implements http.Handler
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Run(r.Context())
	if err != nil {
		h.logger.Error("Pipeline run failed", map[string]interface{}{
			"request_id": middleware.RequestIDFromContext(r.Context()),
			"error":      err.Error(),
		})
		h.writeFailure(w, http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, report); err != nil {
		h.logger.Error("Dashboard render failed", map[string]interface{}{
			"request_id": middleware.RequestIDFromContext(r.Context()),
			"error":      err.Error(),
		})
		h.writeFailure(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		// headers are already sent, the client most likely went away
		h.logger.Warn("Dashboard write failed", map[string]interface{}{
			"request_id": middleware.RequestIDFromContext(r.Context()),
			"error":      err.Error(),
		})
	}
}

func (h *DashboardHandler) writeFailure(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(failurePage))
}
