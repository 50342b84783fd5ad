// ABOUTME: Builds the pipeline and renderers from configuration
// ABOUTME: Chooses the headline source and text extractor named in the config

package main

import (
	"fmt"

	"news-sentiment-dashboard/core/headlines"
	"news-sentiment-dashboard/core/interfaces"
	"news-sentiment-dashboard/core/pipeline"
	"news-sentiment-dashboard/core/scoring"
	"news-sentiment-dashboard/core/scraper"
	"news-sentiment-dashboard/infrastructure/extractor/classpara"
	"news-sentiment-dashboard/infrastructure/extractor/readable"
	stdhttp "news-sentiment-dashboard/infrastructure/http/standard"
	"news-sentiment-dashboard/infrastructure/nlp/lexicon"
	"news-sentiment-dashboard/infrastructure/nlp/vader"
	"news-sentiment-dashboard/pkg/config"
)

// newDependencies creates the shared HTTP client. The API key rides on every
// request it makes, article pages included.
func newDependencies(cfg *config.Config, logger interfaces.Logger) interfaces.Dependencies {
	httpClient := stdhttp.NewStandardHTTPClient(cfg.HTTP.Timeout,
		stdhttp.WithHeader("Authorization", cfg.News.APIKey),
		stdhttp.WithTransport(stdhttp.NewLoggingTransport(nil, logger)),
	)

	return interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

func newHeadlineSource(cfg *config.Config, deps interfaces.Dependencies) (interfaces.HeadlineSource, error) {
	switch cfg.News.SourceKind {
	case config.SourceNewsAPI:
		return headlines.NewNewsAPISource(deps, headlines.NewsAPIOptions{
			Endpoint: cfg.News.Endpoint,
			Source:   cfg.News.Source,
			Language: cfg.News.Language,
			Limit:    cfg.News.PageSize,
		}), nil
	case config.SourceRSS:
		return headlines.NewRSSSource(deps, cfg.News.RSSFeedURL, cfg.News.PageSize), nil
	default:
		return nil, fmt.Errorf("unknown headline source %q", cfg.News.SourceKind)
	}
}

func newExtractor(cfg *config.Config) (interfaces.TextExtractor, error) {
	switch cfg.Scraper.Extractor {
	case config.ExtractorClass:
		return classpara.NewExtractor(cfg.Scraper.ParagraphClass), nil
	case config.ExtractorReadability:
		return readable.NewExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", cfg.Scraper.Extractor)
	}
}

// newPipeline wires fetch, scrape and score for one configuration
func newPipeline(cfg *config.Config, deps interfaces.Dependencies) (*pipeline.Service, error) {
	source, err := newHeadlineSource(cfg, deps)
	if err != nil {
		return nil, err
	}

	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, err
	}

	subjectivity, err := lexicon.NewAnalyzer()
	if err != nil {
		return nil, fmt.Errorf("load subjectivity lexicon: %w", err)
	}

	scraperService := scraper.NewService(deps, extractor, cfg.Scraper.Concurrency)
	scoringService := scoring.NewService(vader.NewAnalyzer(), subjectivity)

	return pipeline.NewService(source, scraperService, scoringService, deps.Logger), nil
}
