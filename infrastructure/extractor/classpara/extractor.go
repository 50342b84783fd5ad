// ABOUTME: Text extractor that collects paragraphs carrying a fixed class signature
// ABOUTME: Tied to the target site's markup; swap the signature when the site changes

package classpara

import (
	"fmt"
	"io"
	"strings"

	htmlutil "news-sentiment-dashboard/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
)

// Extractor implements interfaces.TextExtractor
type Extractor struct {
	signature string
}

// NewExtractor creates an extractor matching elements whose class attribute
// equals signature (whitespace between class names is normalized)
func NewExtractor(signature string) *Extractor {
	return &Extractor{signature: normalizeClass(signature)}
}

// Name identifies the extractor in logs
func (e *Extractor) Name() string {
	return "class:" + e.signature
}

// Extract returns ". "-prefixed paragraph texts joined in document order,
// or "" when no element matches
func (e *Extractor) Extract(pageURL string, body io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse article HTML: %w", err)
	}

	var text strings.Builder
	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		if normalizeClass(sel.AttrOr("class", "")) != e.signature {
			return
		}
		text.WriteString(". ")
		text.WriteString(htmlutil.CollapseWhitespace(sel.Text()))
	})

	return text.String(), nil
}

func normalizeClass(class string) string {
	return strings.Join(strings.Fields(class), " ")
}
