// ABOUTME: Text extractor using go-readability to find the main article content
// ABOUTME: Site-agnostic alternative to the class signature extractor

package readable

import (
	"fmt"
	"io"
	"net/url"

	htmlutil "news-sentiment-dashboard/pkg/utils/html"

	readability "github.com/go-shiori/go-readability"
)

// Extractor implements interfaces.TextExtractor
type Extractor struct{}

// NewExtractor creates a readability extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies the extractor in logs
func (e *Extractor) Name() string {
	return "readability"
}

// Extract returns the readable text content with whitespace collapsed
func (e *Extractor) Extract(pageURL string, body io.Reader) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse article URL: %w", err)
	}

	article, err := readability.FromReader(body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("readability: %w", err)
	}

	return htmlutil.CollapseWhitespace(article.TextContent), nil
}
