// ABOUTME: Terminal report renderer prints the scored article table and category bar charts
// ABOUTME: A numbered link list follows the table, as OSC-8 hyperlinks on supporting terminals

package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"news-sentiment-dashboard/core/domain"
	timeutil "news-sentiment-dashboard/pkg/utils/time"

	"github.com/olekukonko/tablewriter"
)

const defaultBarWidth = 40

// Options control terminal output
type Options struct {
	// Hyperlinks renders the link list as OSC-8 escape sequences instead of raw URLs
	Hyperlinks bool

	// BarWidth is the length of the longest bar; 0 uses the default
	BarWidth int
}

// Renderer implements interfaces.ReportRenderer for a terminal
type Renderer struct {
	opts Options
}

// NewRenderer creates a new terminal renderer
func NewRenderer(opts Options) *Renderer {
	if opts.BarWidth <= 0 {
		opts.BarWidth = defaultBarWidth
	}
	return &Renderer{opts: opts}
}

// Render writes the table, the article links and the two bar charts.
// Table cells stay plain text because tablewriter counts escape bytes as width.
func (r *Renderer) Render(w io.Writer, report *domain.Report) error {
	if _, err := fmt.Fprintf(w, "Sentiment & Subjectivity Analysis of %s Top Articles\n\n", report.Source); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"publishedAt", "Headline", "subjectivity_score", "subjectivity_category", "sentiment_score", "sentiment_category"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for _, a := range report.Articles {
		table.Append([]string{
			timeutil.FormatPublished(a.PublishedAt),
			a.Title,
			formatScore(a.SubjectivityScore),
			string(a.SubjectivityCategory),
			formatScore(a.SentimentScore),
			string(a.SentimentCategory),
		})
	}
	table.Render()

	if err := r.renderLinks(w, report.Articles); err != nil {
		return err
	}
	if err := r.renderBars(w, "Sentiment of articles", report.SentimentCounts); err != nil {
		return err
	}
	return r.renderBars(w, "Subjectivity of articles", report.SubjectivityCounts)
}

func (r *Renderer) renderLinks(w io.Writer, articles []domain.ScoredArticle) error {
	if len(articles) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\nLinks\n")
	for i, a := range articles {
		fmt.Fprintf(&b, "  [%d] %s\n", i+1, r.link(a.Article))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) link(a domain.Article) string {
	switch {
	case a.URL == "":
		return a.Title
	case r.opts.Hyperlinks:
		return Hyperlink(a.URL, a.Title)
	default:
		return a.Title + " " + a.URL
	}
}

// Hyperlink wraps text in an OSC-8 terminal hyperlink to url
func Hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

func (r *Renderer) renderBars(w io.Writer, title string, counts []domain.CategoryCount) error {
	labelWidth, maxCount := 0, 0
	for _, c := range counts {
		if len(c.Label) > labelWidth {
			labelWidth = len(c.Label)
		}
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", title)
	for _, c := range counts {
		bar := 0
		if maxCount > 0 {
			bar = c.Count * r.opts.BarWidth / maxCount
		}
		if c.Count > 0 && bar == 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "  %-*s | %s %d\n", labelWidth, c.Label, strings.Repeat("█", bar), c.Count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}
