// Package api provides the HTTP layer of the news sentiment dashboard.
// It uses the Huma framework on a chi router for the JSON endpoints and
// mounts the rendered HTML dashboard at the site root.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and middleware setup
// - handlers/: dashboard, articles and health handlers
// - dto/: response DTOs and domain mappers
// - middleware/: request logging with request IDs and per-IP rate limiting
//
// # Routes
//
// - GET /: HTML dashboard, re-runs the pipeline on every load
// - GET /api/articles: the same report as JSON
// - GET /healthz: liveness
// - GET /openapi.json and GET /docs: generated by Huma
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:             logger,
//	    RateLimitPerMinute: 60,
//	})
//	handlers.NewArticlesHandler(reports, logger).RegisterRoutes(humaAPI)
//	api.MountDashboard(router, handlers.NewDashboardHandler(reports, renderer, logger))
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Pipeline errors on the JSON endpoint use the RFC 7807 format produced by
// Huma. Upstream rejections map to 502, upstream outages to 503, upstream
// rate limiting to 429 and timeouts to 504. The dashboard answers 502 with
// a plain failure page.
package api
