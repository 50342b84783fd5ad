// ABOUTME: Response DTOs for the scored articles endpoint
// ABOUTME: Mirrors the dashboard table plus the two category count series

package responses

import "time"

// ArticleResponse is one scored article row
type ArticleResponse struct {
	PublishedAt          *time.Time `json:"published_at,omitempty" doc:"Publication time reported by the source"`
	Title                string     `json:"title" doc:"Headline"`
	URL                  string     `json:"url" doc:"Link to the full article"`
	Source               string     `json:"source,omitempty" doc:"Outlet display name"`
	Body                 string     `json:"body,omitempty" doc:"Scraped body text, present when include_body is set"`
	SubjectivityScore    float64    `json:"subjectivity_score" doc:"Subjectivity in [0,1]"`
	SubjectivityCategory string     `json:"subjectivity_category" enum:"Very Factual,Somewhat Factual,Somewhat Subjective,Very Subjective" doc:"Subjectivity band"`
	SentimentScore       float64    `json:"sentiment_score" doc:"Polarity in [-1,1]"`
	SentimentCategory    string     `json:"sentiment_category" enum:"Negative,Neutral,Positive" doc:"Sentiment band"`
}

// CategoryCountResponse is one bar of a category chart
type CategoryCountResponse struct {
	Label string `json:"label" doc:"Category label"`
	Count int    `json:"count" doc:"Number of articles in the category"`
}

// ReportResponse is the full result of one pipeline run
type ReportResponse struct {
	GeneratedAt        time.Time               `json:"generated_at" doc:"When the report was produced"`
	Source             string                  `json:"source" doc:"Outlet the headlines came from"`
	TotalArticles      int                     `json:"total_articles" doc:"Number of scored articles"`
	Articles           []ArticleResponse       `json:"articles" doc:"Scored articles in source order"`
	SubjectivityCounts []CategoryCountResponse `json:"subjectivity_counts" doc:"Articles per subjectivity category"`
	SentimentCounts    []CategoryCountResponse `json:"sentiment_counts" doc:"Articles per sentiment category"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok" doc:"Service status"`
}
