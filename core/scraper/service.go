// ABOUTME: Scraper service downloads article pages and attaches their extracted body text
// ABOUTME: Runs sequentially or through a bounded pool that keeps upstream order

package scraper

import (
	"context"
	"fmt"

	"news-sentiment-dashboard/core/domain"
	errs "news-sentiment-dashboard/core/errors"
	"news-sentiment-dashboard/core/interfaces"

	"golang.org/x/sync/errgroup"
)

const articleAPIName = "article"

// Service fetches article pages through the shared HTTP client
type Service struct {
	deps        interfaces.Dependencies
	extractor   interfaces.TextExtractor
	concurrency int
}

// NewService creates a new scraper service. A concurrency of 1 or less
// scrapes one article at a time.
func NewService(deps interfaces.Dependencies, extractor interfaces.TextExtractor, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		deps:        deps,
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// Scrape downloads one article and sets its body text. When the extractor
// finds nothing the headline stands in for the body.
func (s *Service) Scrape(ctx context.Context, article domain.Article) (domain.Article, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, article.URL)
	if err != nil {
		return article, fmt.Errorf("scrape %s: %w", article.URL, err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return article, &errs.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        articleAPIName,
			Message:    fmt.Sprintf("unexpected status fetching %s", article.URL),
		}
	}

	text, err := s.extractor.Extract(article.URL, resp.Body())
	if err != nil {
		return article, fmt.Errorf("extract %s: %w", article.URL, err)
	}

	if text == "" {
		s.deps.Logger.Debug("No body text extracted, using headline", map[string]interface{}{
			"url":       article.URL,
			"extractor": s.extractor.Name(),
		})
		text = article.Title
	}

	article.BodyText = text
	return article, nil
}

// ScrapeAll scrapes every article. The result has the same length and order
// as the input; the first failure aborts the run and no partial result is returned.
func (s *Service) ScrapeAll(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if s.concurrency <= 1 {
		return s.scrapeSequential(ctx, articles)
	}

	scraped := make([]domain.Article, len(articles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, article := range articles {
		i, article := i, article
		g.Go(func() error {
			result, err := s.Scrape(gctx, article)
			if err != nil {
				return err
			}
			scraped[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Scraped articles", map[string]interface{}{
		"count":       len(scraped),
		"concurrency": s.concurrency,
	})
	return scraped, nil
}

func (s *Service) scrapeSequential(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	scraped := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.Scrape(ctx, article)
		if err != nil {
			return nil, err
		}
		scraped = append(scraped, result)
	}

	s.deps.Logger.Info("Scraped articles", map[string]interface{}{
		"count":       len(scraped),
		"concurrency": 1,
	})
	return scraped, nil
}
