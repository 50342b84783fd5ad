// ABOUTME: Scoring service runs the text analyzers and maps their scores to categories
// ABOUTME: Articles without body text are scored on their headline

package scoring

import (
	"news-sentiment-dashboard/core/domain"
	"news-sentiment-dashboard/core/interfaces"
)

// Service scores articles with injected analyzers
type Service struct {
	sentiment    interfaces.SentimentAnalyzer
	subjectivity interfaces.SubjectivityAnalyzer
}

// NewService creates a new scoring service
func NewService(sentiment interfaces.SentimentAnalyzer, subjectivity interfaces.SubjectivityAnalyzer) *Service {
	return &Service{
		sentiment:    sentiment,
		subjectivity: subjectivity,
	}
}

// Score analyzes a single article
func (s *Service) Score(article domain.Article) domain.ScoredArticle {
	text := article.ScoringText()

	subjectivity := s.subjectivity.Subjectivity(text)
	polarity := s.sentiment.Polarity(text)

	return domain.ScoredArticle{
		Article:              article,
		SubjectivityScore:    subjectivity,
		SubjectivityCategory: SubjectivityCategoryFor(subjectivity),
		SentimentScore:       polarity,
		SentimentCategory:    SentimentCategoryFor(polarity),
	}
}

// ScoreAll analyzes every article, preserving order
func (s *Service) ScoreAll(articles []domain.Article) []domain.ScoredArticle {
	scored := make([]domain.ScoredArticle, len(articles))
	for i, a := range articles {
		scored[i] = s.Score(a)
	}
	return scored
}
