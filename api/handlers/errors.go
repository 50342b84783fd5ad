// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline errors to appropriate HTTP responses

package handlers

import (
	"context"
	"errors"

	errs "news-sentiment-dashboard/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errs.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if apiErr, ok := errs.AsExternalAPI(err); ok {
		switch {
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by " + apiErr.API)
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Upstream service unavailable", err)
		default:
			// Upstream rejected the request (bad key, unknown source, missing page)
			return huma.Error502BadGateway("Upstream request failed", err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Upstream request timed out", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
