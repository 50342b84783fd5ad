// ABOUTME: Article domain model represents a headline fetched from a news source
// ABOUTME: Carries the scraped body text and the scored sentiment/subjectivity view

package domain

import "time"

// Article represents a single headline and the text scraped from its page
type Article struct {
	// Title is the headline text
	Title string

	// URL is the link to the full article
	URL string

	// PublishedAt is when the article was published upstream
	PublishedAt time.Time

	// Source is the outlet name reported by the headline source
	Source string

	// BodyText is the plain text extracted from the article page.
	// Empty until the article has been scraped.
	BodyText string
}

// IsValid checks if the article has the fields required for scraping
func (a *Article) IsValid() bool {
	return a.Title != "" && a.URL != ""
}

// ScoringText returns the text that should be analyzed for this article.
// Falls back to the headline when no body text was extracted.
func (a *Article) ScoringText() string {
	if a.BodyText != "" {
		return a.BodyText
	}
	return a.Title
}

// ScoredArticle is an article plus its analysis scores and their categories
type ScoredArticle struct {
	Article

	// SubjectivityScore is in [0,1]
	SubjectivityScore    float64
	SubjectivityCategory SubjectivityCategory

	// SentimentScore is a compound polarity in [-1,1]
	SentimentScore    float64
	SentimentCategory SentimentCategory
}
