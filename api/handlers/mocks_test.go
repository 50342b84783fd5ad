package handlers

import (
	"context"
	"io"
	"time"

	"news-sentiment-dashboard/core/domain"
)

// mockReportService is a mock implementation of the ReportService interface
type mockReportService struct {
	runFunc func(ctx context.Context) (*domain.Report, error)
	calls   int
}

func (m *mockReportService) Run(ctx context.Context) (*domain.Report, error) {
	m.calls++
	if m.runFunc != nil {
		return m.runFunc(ctx)
	}
	return sampleReport(), nil
}

// mockRenderer is a mock implementation of the ReportRenderer interface
type mockRenderer struct {
	renderFunc func(w io.Writer, report *domain.Report) error
}

func (m *mockRenderer) Render(w io.Writer, report *domain.Report) error {
	if m.renderFunc != nil {
		return m.renderFunc(w, report)
	}
	_, err := io.WriteString(w, "<h1>"+report.Source+"</h1>")
	return err
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	errors     []string
	warns      []string
	warnFields []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warns = append(m.warns, msg)
	m.warnFields = append(m.warnFields, fields)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errors = append(m.errors, msg)
}

func sampleReport() *domain.Report {
	return domain.NewReport("BBC News", []domain.ScoredArticle{
		{
			Article: domain.Article{
				Title:       "Storm closes schools",
				URL:         "https://www.bbc.co.uk/news/1",
				PublishedAt: time.Date(2026, 10, 15, 7, 12, 0, 0, time.UTC),
				Source:      "BBC News",
				BodyText:    "Heavy rain has closed schools.",
			},
			SubjectivityScore:    0.2,
			SubjectivityCategory: domain.VerySubjective,
			SentimentScore:       -0.6,
			SentimentCategory:    domain.Negative,
		},
	}, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))
}
