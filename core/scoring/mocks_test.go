package scoring

// recordingAnalyzer returns fixed scores and remembers the text it was given
type recordingAnalyzer struct {
	polarity     float64
	subjectivity float64
	texts        []string
}

func (r *recordingAnalyzer) Polarity(text string) float64 {
	r.texts = append(r.texts, text)
	return r.polarity
}

func (r *recordingAnalyzer) Subjectivity(text string) float64 {
	r.texts = append(r.texts, text)
	return r.subjectivity
}
