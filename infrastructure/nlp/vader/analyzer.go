// ABOUTME: Sentiment analyzer backed by the govader port of VADER
// ABOUTME: Reports the compound polarity score in [-1,1]

package vader

import (
	"github.com/jonreiter/govader"
)

// Analyzer implements interfaces.SentimentAnalyzer
type Analyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer loads the VADER lexicon once; the result is safe for concurrent use
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Polarity returns the VADER compound score for text
func (a *Analyzer) Polarity(text string) float64 {
	return a.analyzer.PolarityScores(text).Compound
}
