// ABOUTME: NewsAPI headline source fetches top headlines for a single outlet
// ABOUTME: Decodes the top-headlines payload into article stubs in upstream order

package headlines

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"news-sentiment-dashboard/core/domain"
	errs "news-sentiment-dashboard/core/errors"
	"news-sentiment-dashboard/core/interfaces"
	timeutil "news-sentiment-dashboard/pkg/utils/time"
)

const newsAPIName = "newsapi"

// NewsAPIOptions selects what the top-headlines call asks for
type NewsAPIOptions struct {
	Endpoint string
	Source   string
	Language string

	// Limit truncates the result; 0 keeps every article
	Limit int
}

// NewsAPISource implements interfaces.HeadlineSource against newsapi.org.
// The API key travels in the Authorization header set on the HTTP client.
type NewsAPISource struct {
	deps interfaces.Dependencies
	opts NewsAPIOptions
}

// NewNewsAPISource creates a new NewsAPI headline source
func NewNewsAPISource(deps interfaces.Dependencies, opts NewsAPIOptions) *NewsAPISource {
	return &NewsAPISource{
		deps: deps,
		opts: opts,
	}
}

// Name returns the outlet id the headlines come from
func (s *NewsAPISource) Name() string {
	return s.opts.Source
}

// Fetch issues one GET to the top-headlines endpoint
func (s *NewsAPISource) Fetch(ctx context.Context) ([]domain.Article, error) {
	requestURL, err := s.requestURL()
	if err != nil {
		return nil, err
	}

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("newsapi read: %w", err)
	}

	var raw newsAPIResponse
	decodeErr := json.Unmarshal(body, &raw)

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		apiErr := &errs.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        newsAPIName,
			Message:    strings.TrimSpace(string(body)),
		}
		if decodeErr == nil && raw.Message != "" {
			apiErr.Code = raw.Code
			apiErr.Message = raw.Message
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("newsapi decode: %w", decodeErr)
	}

	if raw.Status != "" && raw.Status != "ok" {
		return nil, &errs.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Code:       raw.Code,
			Message:    raw.Message,
			API:        newsAPIName,
		}
	}

	if raw.Articles == nil {
		return nil, fmt.Errorf("newsapi decode: response has no articles")
	}

	items := *raw.Articles
	if s.opts.Limit > 0 && len(items) > s.opts.Limit {
		items = items[:s.opts.Limit]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, domain.Article{
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: timeutil.ParseFlexibleTime(item.PublishedAt),
			Source:      item.Source.Name,
		})
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Fetched headlines", map[string]interface{}{
			"source":   s.opts.Source,
			"articles": len(articles),
			"total":    raw.TotalResults,
		})
	}

	return articles, nil
}

func (s *NewsAPISource) requestURL() (string, error) {
	u, err := url.Parse(s.opts.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &errs.ValidationError{Field: "NEWS_API_ENDPOINT", Message: "invalid URL format"}
	}

	q := u.Query()
	q.Set("sources", s.opts.Source)
	q.Set("language", s.opts.Language)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

type newsAPIResponse struct {
	Status       string            `json:"status"`
	Code         string            `json:"code"`
	Message      string            `json:"message"`
	TotalResults int               `json:"totalResults"`
	Articles     *[]newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}
