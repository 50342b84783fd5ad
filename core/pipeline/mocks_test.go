package pipeline

import (
	"context"

	"news-sentiment-dashboard/core/domain"
)

// mockSource is a mock implementation of the HeadlineSource interface
type mockSource struct {
	name      string
	fetchFunc func(ctx context.Context) ([]domain.Article, error)
}

func (m *mockSource) Name() string {
	return m.name
}

func (m *mockSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return nil, nil
}

// mockScraper is a mock implementation of the ArticleScraper interface
type mockScraper struct {
	scrapeAllFunc func(ctx context.Context, articles []domain.Article) ([]domain.Article, error)
}

func (m *mockScraper) ScrapeAll(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if m.scrapeAllFunc != nil {
		return m.scrapeAllFunc(ctx, articles)
	}
	return articles, nil
}

// fixedAnalyzer returns the same scores for every text
type fixedAnalyzer struct {
	polarity     float64
	subjectivity float64
	seen         []string
}

func (f *fixedAnalyzer) Polarity(text string) float64 {
	f.seen = append(f.seen, text)
	return f.polarity
}

func (f *fixedAnalyzer) Subjectivity(text string) float64 {
	return f.subjectivity
}

// mockLogger discards everything
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
