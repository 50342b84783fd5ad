// ABOUTME: Pipeline service runs fetch, scrape and score to produce one report
// ABOUTME: Any stage failure aborts the run without a partial report

package pipeline

import (
	"context"
	"fmt"
	"time"

	"news-sentiment-dashboard/core/domain"
	"news-sentiment-dashboard/core/interfaces"
)

// Service wires the pipeline stages together
type Service struct {
	source  interfaces.HeadlineSource
	scraper interfaces.ArticleScraper
	scorer  interfaces.ArticleScorer
	logger  interfaces.Logger
	now     func() time.Time
}

// NewService creates a new pipeline service
func NewService(source interfaces.HeadlineSource, scraper interfaces.ArticleScraper, scorer interfaces.ArticleScorer, logger interfaces.Logger) *Service {
	return &Service{
		source:  source,
		scraper: scraper,
		scorer:  scorer,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes one full pass and returns the report
func (s *Service) Run(ctx context.Context) (*domain.Report, error) {
	start := s.now()

	articles, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	scraped, err := s.scraper.ScrapeAll(ctx, articles)
	if err != nil {
		return nil, fmt.Errorf("scrape articles: %w", err)
	}

	scored := s.scorer.ScoreAll(scraped)
	report := domain.NewReport(s.sourceLabel(articles), scored, s.now())

	s.logger.Info("Pipeline run complete", map[string]interface{}{
		"source":   report.Source,
		"articles": len(scored),
		"duration": s.now().Sub(start).String(),
	})

	return report, nil
}

// sourceLabel prefers the outlet's display name reported with the articles
func (s *Service) sourceLabel(articles []domain.Article) string {
	for _, a := range articles {
		if a.Source != "" {
			return a.Source
		}
	}
	return s.source.Name()
}
