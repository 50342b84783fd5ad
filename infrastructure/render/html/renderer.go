// ABOUTME: HTML report renderer builds the dashboard page served by the web server
// ABOUTME: Category bar charts are go-echarts pages embedded side by side through iframe srcdoc

package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"news-sentiment-dashboard/core/domain"
	timeutil "news-sentiment-dashboard/pkg/utils/time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed dashboard.tmpl about.md
var templateFS embed.FS

// Renderer implements interfaces.ReportRenderer for the web dashboard
type Renderer struct {
	tmpl  *template.Template
	about template.HTML
}

type row struct {
	PublishedAt          string
	URL                  string
	Title                string
	SubjectivityScore    string
	SubjectivityCategory string
	SentimentScore       string
	SentimentCategory    string
}

type page struct {
	Heading           string
	GeneratedAt       string
	Rows              []row
	SentimentChart    string
	SubjectivityChart string
	About             template.HTML
}

// NewRenderer parses the embedded dashboard template
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "dashboard.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}

	about, err := renderAbout()
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl, about: about}, nil
}

// renderAbout converts the embedded score legend from Markdown.
// The source is trusted and ships with the binary.
func renderAbout() (template.HTML, error) {
	md, err := templateFS.ReadFile("about.md")
	if err != nil {
		return "", fmt.Errorf("read score legend: %w", err)
	}

	var buf bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert(md, &buf); err != nil {
		return "", fmt.Errorf("convert score legend: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Render writes the complete dashboard page
func (r *Renderer) Render(w io.Writer, report *domain.Report) error {
	sentimentChart, err := barChart("Sentiment of articles", report.SentimentCounts)
	if err != nil {
		return err
	}
	subjectivityChart, err := barChart("Subjectivity of articles", report.SubjectivityCounts)
	if err != nil {
		return err
	}

	data := page{
		Heading:           fmt.Sprintf("Sentiment & Subjectivity Analysis of %s Top Articles", report.Source),
		GeneratedAt:       timeutil.FormatPublished(report.GeneratedAt),
		Rows:              make([]row, 0, len(report.Articles)),
		SentimentChart:    sentimentChart,
		SubjectivityChart: subjectivityChart,
		About:             r.about,
	}
	for _, a := range report.Articles {
		data.Rows = append(data.Rows, row{
			PublishedAt:          timeutil.FormatPublished(a.PublishedAt),
			URL:                  a.URL,
			Title:                a.Title,
			SubjectivityScore:    formatScore(a.SubjectivityScore),
			SubjectivityCategory: string(a.SubjectivityCategory),
			SentimentScore:       formatScore(a.SentimentScore),
			SentimentCategory:    string(a.SentimentCategory),
		})
	}

	// Buffer so a template failure never leaves a half-written page
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "dashboard", data); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// barChart renders a standalone echarts page for one set of category counts
func barChart(title string, counts []domain.CategoryCount) (string, error) {
	labels := make([]string, 0, len(counts))
	values := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		values = append(values, opts.BarData{Value: c.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "380px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)
	bar.SetXAxis(labels).AddSeries("Articles", values)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("render %s chart: %w", title, err)
	}
	return buf.String(), nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}
