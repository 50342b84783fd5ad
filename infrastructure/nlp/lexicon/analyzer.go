// ABOUTME: Lexicon-based subjectivity analyzer using an embedded adjective lexicon
// ABOUTME: Averages the subjectivity of matched words, with intensifiers boosting the next match

package lexicon

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// Lexicon holds per-word subjectivity and intensifier multipliers
type Lexicon struct {
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Words        map[string]float64 `yaml:"words"`
}

// Analyzer implements interfaces.SubjectivityAnalyzer
type Analyzer struct {
	lexicon Lexicon
}

// NewAnalyzer creates an analyzer from the embedded lexicon
func NewAnalyzer() (*Analyzer, error) {
	return NewAnalyzerFromYAML(defaultLexicon)
}

// NewAnalyzerFromYAML creates an analyzer from a YAML lexicon document
func NewAnalyzerFromYAML(data []byte) (*Analyzer, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parse subjectivity lexicon: %w", err)
	}
	if len(lex.Words) == 0 {
		return nil, fmt.Errorf("parse subjectivity lexicon: no words")
	}

	for w, s := range lex.Words {
		if s < 0 || s > 1 {
			return nil, fmt.Errorf("parse subjectivity lexicon: %q has score %v outside [0,1]", w, s)
		}
	}

	return &Analyzer{lexicon: lex}, nil
}

// Subjectivity returns a score in [0,1]; 0 when no lexicon word occurs
func (a *Analyzer) Subjectivity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var matched int
	boost := 1.0

	for _, tok := range tokens {
		if m, ok := a.lexicon.Intensifiers[tok]; ok {
			boost = m
			continue
		}

		score, ok := a.lexicon.Words[tok]
		if !ok {
			boost = 1.0
			continue
		}

		sum += min(score*boost, 1.0)
		matched++
		boost = 1.0
	}

	if matched == 0 {
		return 0
	}
	return sum / float64(matched)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '-'
	})
}
