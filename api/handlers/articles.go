// ABOUTME: Scored articles and health handlers for the Huma API
// ABOUTME: Each articles request runs the pipeline again and returns the fresh report

package handlers

import (
	"context"
	"net/http"

	"news-sentiment-dashboard/api/dto/mappers"
	"news-sentiment-dashboard/api/dto/responses"
	"news-sentiment-dashboard/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ArticlesHandler serves the JSON view of a report
type ArticlesHandler struct {
	reports interfaces.ReportService
	logger  interfaces.Logger
}

// NewArticlesHandler creates a new articles handler
func NewArticlesHandler(reports interfaces.ReportService, logger interfaces.Logger) *ArticlesHandler {
	return &ArticlesHandler{
		reports: reports,
		logger:  logger,
	}
}

// RegisterRoutes registers the articles and health routes
func (h *ArticlesHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listArticles",
		Method:      http.MethodGet,
		Path:        "/api/articles",
		Summary:     "Score the current top headlines",
		Description: "Fetches the top headlines, scrapes each article and returns subjectivity and sentiment scores with category counts",
		Tags:        []string{"Articles"},
	}, h.ListArticles)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// ListArticlesInput defines the input for the ListArticles operation
type ListArticlesInput struct {
	IncludeBody bool `query:"include_body" doc:"Include scraped body text for each article"`
}

// ListArticlesOutput defines the output for the ListArticles operation
type ListArticlesOutput struct {
	Body responses.ReportResponse
}

// ListArticles handles GET /api/articles
func (h *ArticlesHandler) ListArticles(ctx context.Context, input *ListArticlesInput) (*ListArticlesOutput, error) {
	report, err := h.reports.Run(ctx)
	if err != nil {
		h.logger.Error("Pipeline run failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, toHumaError(err)
	}

	return &ListArticlesOutput{
		Body: *mappers.ToReportResponse(report, input.IncludeBody),
	}, nil
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /healthz without touching upstream services
func (h *ArticlesHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
}
