package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"news-sentiment-dashboard/core/domain"
	"news-sentiment-dashboard/core/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenArticles() []domain.Article {
	articles := make([]domain.Article, 10)
	for i := range articles {
		articles[i] = domain.Article{
			Title:  fmt.Sprintf("Headline %d", i),
			URL:    fmt.Sprintf("https://www.bbc.co.uk/news/%d", i),
			Source: "BBC News",
		}
	}
	return articles
}

func TestService_Run(t *testing.T) {
	source := &mockSource{
		name: "bbc-news",
		fetchFunc: func(ctx context.Context) ([]domain.Article, error) {
			return tenArticles(), nil
		},
	}
	scraper := &mockScraper{
		scrapeAllFunc: func(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
			out := make([]domain.Article, len(articles))
			for i, a := range articles {
				a.BodyText = fmt.Sprintf("body %d", i)
				out[i] = a
			}
			return out, nil
		},
	}
	analyzer := &fixedAnalyzer{polarity: 0.5, subjectivity: 0.8}
	fixed := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	service := NewService(source, scraper, scoring.NewService(analyzer, analyzer), &mockLogger{})
	service.now = func() time.Time { return fixed }

	report, err := service.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Articles, 10)
	for i, a := range report.Articles {
		assert.Equal(t, fmt.Sprintf("Headline %d", i), a.Title)
		assert.Equal(t, domain.VeryFactual, a.SubjectivityCategory)
		assert.Equal(t, domain.Positive, a.SentimentCategory)
	}
	assert.Equal(t, "body 0", analyzer.seen[0])
	assert.Equal(t, "BBC News", report.Source)
	assert.Equal(t, fixed, report.GeneratedAt)

	assert.Equal(t, []domain.CategoryCount{
		{Label: "Very Factual", Count: 10},
		{Label: "Somewhat Factual", Count: 0},
		{Label: "Somewhat Subjective", Count: 0},
		{Label: "Very Subjective", Count: 0},
	}, report.SubjectivityCounts)
	assert.Equal(t, []domain.CategoryCount{
		{Label: "Negative", Count: 0},
		{Label: "Neutral", Count: 0},
		{Label: "Positive", Count: 10},
	}, report.SentimentCounts)
}

func TestService_Run_SourceNameFallback(t *testing.T) {
	source := &mockSource{
		name: "bbc-news",
		fetchFunc: func(ctx context.Context) ([]domain.Article, error) {
			return []domain.Article{{Title: "Only", URL: "https://example.com"}}, nil
		},
	}
	analyzer := &fixedAnalyzer{}

	report, err := NewService(source, &mockScraper{}, scoring.NewService(analyzer, analyzer), &mockLogger{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "bbc-news", report.Source)
	assert.Equal(t, []string{"Only"}, analyzer.seen)
}

func TestService_Run_FetchError(t *testing.T) {
	fetchErr := errors.New("401 apiKeyInvalid")
	source := &mockSource{
		fetchFunc: func(ctx context.Context) ([]domain.Article, error) {
			return nil, fetchErr
		},
	}
	scraper := &mockScraper{
		scrapeAllFunc: func(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
			t.Fatal("scraper must not run after a fetch failure")
			return nil, nil
		},
	}
	analyzer := &fixedAnalyzer{}

	report, err := NewService(source, scraper, scoring.NewService(analyzer, analyzer), &mockLogger{}).Run(context.Background())
	assert.ErrorIs(t, err, fetchErr)
	assert.Nil(t, report)
}

func TestService_Run_ScrapeError(t *testing.T) {
	scrapeErr := errors.New("timeout")
	source := &mockSource{
		fetchFunc: func(ctx context.Context) ([]domain.Article, error) {
			return tenArticles(), nil
		},
	}
	scraper := &mockScraper{
		scrapeAllFunc: func(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
			return nil, scrapeErr
		},
	}
	analyzer := &fixedAnalyzer{}

	report, err := NewService(source, scraper, scoring.NewService(analyzer, analyzer), &mockLogger{}).Run(context.Background())
	assert.ErrorIs(t, err, scrapeErr)
	assert.Nil(t, report)
	assert.Empty(t, analyzer.seen)
}

func TestService_Run_NoArticles(t *testing.T) {
	analyzer := &fixedAnalyzer{}
	report, err := NewService(&mockSource{name: "bbc-news"}, &mockScraper{}, scoring.NewService(analyzer, analyzer), &mockLogger{}).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Articles)
	for _, c := range report.SentimentCounts {
		assert.Zero(t, c.Count)
	}
}
