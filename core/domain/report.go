// ABOUTME: Report domain model aggregates scored articles for rendering
// ABOUTME: Computes per-category frequency counts used by the bar charts

package domain

import "time"

// CategoryCount is the number of articles that fell into one label
type CategoryCount struct {
	Label string
	Count int
}

// Report is the result of one pipeline run
type Report struct {
	// GeneratedAt is when the run finished
	GeneratedAt time.Time

	// Source names the outlet the headlines came from
	Source string

	// Articles are in the order the headline source returned them
	Articles []ScoredArticle

	SubjectivityCounts []CategoryCount
	SentimentCounts    []CategoryCount
}

// NewReport builds a report and its category counts.
// Counts list every category in display order, including empty ones.
func NewReport(source string, articles []ScoredArticle, generatedAt time.Time) *Report {
	subjectivity := make(map[SubjectivityCategory]int)
	sentiment := make(map[SentimentCategory]int)
	for _, a := range articles {
		subjectivity[a.SubjectivityCategory]++
		sentiment[a.SentimentCategory]++
	}

	report := &Report{
		GeneratedAt:        generatedAt,
		Source:             source,
		Articles:           articles,
		SubjectivityCounts: make([]CategoryCount, 0, len(AllSubjectivityCategories())),
		SentimentCounts:    make([]CategoryCount, 0, len(AllSentimentCategories())),
	}

	for _, c := range AllSubjectivityCategories() {
		report.SubjectivityCounts = append(report.SubjectivityCounts, CategoryCount{Label: string(c), Count: subjectivity[c]})
	}
	for _, c := range AllSentimentCategories() {
		report.SentimentCounts = append(report.SentimentCounts, CategoryCount{Label: string(c), Count: sentiment[c]})
	}

	return report
}
