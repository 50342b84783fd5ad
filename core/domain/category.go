// ABOUTME: Category enums for subjectivity and sentiment labels
// ABOUTME: Declares the fixed label sets and their display order

package domain

// SubjectivityCategory is the human-readable bucket for a subjectivity score
type SubjectivityCategory string

const (
	VeryFactual        SubjectivityCategory = "Very Factual"
	SomewhatFactual    SubjectivityCategory = "Somewhat Factual"
	SomewhatSubjective SubjectivityCategory = "Somewhat Subjective"
	VerySubjective     SubjectivityCategory = "Very Subjective"
)

// AllSubjectivityCategories returns every subjectivity label in display order
func AllSubjectivityCategories() []SubjectivityCategory {
	return []SubjectivityCategory{VeryFactual, SomewhatFactual, SomewhatSubjective, VerySubjective}
}

// SentimentCategory is the human-readable bucket for a polarity score
type SentimentCategory string

const (
	Negative SentimentCategory = "Negative"
	Neutral  SentimentCategory = "Neutral"
	Positive SentimentCategory = "Positive"
)

// AllSentimentCategories returns every sentiment label in display order
func AllSentimentCategories() []SentimentCategory {
	return []SentimentCategory{Negative, Neutral, Positive}
}
