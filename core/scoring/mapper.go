// ABOUTME: Score mapper converts continuous analysis scores into display categories
// ABOUTME: Thresholds are fixed and boundary behavior is part of the contract

package scoring

import "news-sentiment-dashboard/core/domain"

// SubjectivityCategoryFor buckets a subjectivity score in [0,1].
// Lower bounds are inclusive. Anything that fails every check,
// including out-of-range input and NaN, is Very Subjective.
func SubjectivityCategoryFor(score float64) domain.SubjectivityCategory {
	if score >= 0.75 {
		return domain.VeryFactual
	} else if score >= 0.5 && score < 0.75 {
		return domain.SomewhatFactual
	} else if score >= 0.25 && score < 0.5 {
		return domain.SomewhatSubjective
	}
	return domain.VerySubjective
}

// SentimentCategoryFor buckets a polarity score in [-1,1].
// -0.33 itself is Negative and 0.33 itself is Positive; NaN fails
// both explicit checks and lands in Positive.
func SentimentCategoryFor(score float64) domain.SentimentCategory {
	if score > -0.33 && score < 0.33 {
		return domain.Neutral
	} else if score <= -0.33 {
		return domain.Negative
	}
	return domain.Positive
}
