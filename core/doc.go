// Package core contains the business logic of the news sentiment dashboard.
// It has no web framework dependencies; everything external is injected
// through the contracts in core/interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: Article, ScoredArticle, the category enums and Report
// - headlines: NewsAPI and RSS headline sources
// - scraper: downloads article pages and attaches their body text
// - scoring: score-to-category mapping and the scoring service
// - pipeline: fetch, scrape and score in one run
// - errors: validation and upstream API error types
// - interfaces: contracts for HTTP, logging, analyzers, extractors and renderers
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	source := headlines.NewNewsAPISource(deps, headlines.NewsAPIOptions{
//	    Endpoint: "https://newsapi.org/v2/top-headlines",
//	    Source:   "bbc-news",
//	    Language: "en",
//	})
//	scrape := scraper.NewService(deps, myExtractor, 4)
//	score := scoring.NewService(mySentiment, mySubjectivity)
//
//	report, err := pipeline.NewService(source, scrape, score, myLogger).Run(ctx)
package core
