// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the pluggable seams of the fetch, scrape, score and render pipeline

package interfaces

import (
	"context"
	"io"

	"news-sentiment-dashboard/core/domain"
)

// HeadlineSource returns article stubs (title, url, publish time) in upstream order
type HeadlineSource interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Article, error)
}

// TextExtractor turns a fetched article page into plain text.
// An empty string with a nil error means nothing matched.
type TextExtractor interface {
	Name() string
	Extract(pageURL string, body io.Reader) (string, error)
}

// SentimentAnalyzer scores polarity in [-1,1]
type SentimentAnalyzer interface {
	Polarity(text string) float64
}

// SubjectivityAnalyzer scores subjectivity in [0,1]
type SubjectivityAnalyzer interface {
	Subjectivity(text string) float64
}

// ReportRenderer writes a finished report to an output
type ReportRenderer interface {
	Render(w io.Writer, report *domain.Report) error
}

// ArticleScraper fills in body text for fetched headlines
type ArticleScraper interface {
	ScrapeAll(ctx context.Context, articles []domain.Article) ([]domain.Article, error)
}

// ArticleScorer analyzes and categorizes articles, preserving order
type ArticleScorer interface {
	ScoreAll(articles []domain.Article) []domain.ScoredArticle
}

// ReportService produces a fresh report on every call
type ReportService interface {
	Run(ctx context.Context) (*domain.Report, error)
}
