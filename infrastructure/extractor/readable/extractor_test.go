package readable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html><head><title>Storm closes schools</title></head>
<body>
<nav><a href="/">Home</a> <a href="/news">News</a></nav>
<article>
<h1>Storm closes schools</h1>
<p>Heavy rain has closed more than two hundred schools across the region on Thursday morning, with councils warning parents to keep children at home until the flooding subsides.</p>
<p>Transport officials said several rail lines were suspended and major roads were blocked by fallen trees, adding that engineers were working to restore services as quickly as possible.</p>
<p>Forecasters expect the weather to improve by the weekend, although further warnings remain in place for coastal areas where high tides could cause additional damage.</p>
</article>
<footer>Copyright</footer>
</body></html>`

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor()

	text, err := e.Extract("https://www.bbc.co.uk/news/1", strings.NewReader(articlePage))
	require.NoError(t, err)

	assert.Contains(t, text, "Heavy rain has closed more than two hundred schools")
	assert.Contains(t, text, "Forecasters expect the weather to improve")
	assert.NotContains(t, text, "\n")
}

func TestExtractor_Extract_InvalidURL(t *testing.T) {
	_, err := NewExtractor().Extract("://bad", strings.NewReader(articlePage))
	assert.Error(t, err)
}

func TestExtractor_Name(t *testing.T) {
	assert.Equal(t, "readability", NewExtractor().Name())
}
