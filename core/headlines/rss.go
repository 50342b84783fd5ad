// ABOUTME: RSS headline source reads article stubs from an outlet's RSS/Atom feed
// ABOUTME: Alternative to NewsAPI that needs no API key

package headlines

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"news-sentiment-dashboard/core/domain"
	errs "news-sentiment-dashboard/core/errors"
	"news-sentiment-dashboard/core/interfaces"
	timeutil "news-sentiment-dashboard/pkg/utils/time"

	"github.com/mmcdole/gofeed"
)

// RSSSource implements interfaces.HeadlineSource for a single feed URL
type RSSSource struct {
	deps    interfaces.Dependencies
	feedURL string
	limit   int
}

// NewRSSSource creates a new feed-backed headline source.
// limit truncates the item list; 0 keeps every item.
func NewRSSSource(deps interfaces.Dependencies, feedURL string, limit int) *RSSSource {
	return &RSSSource{
		deps:    deps,
		feedURL: feedURL,
		limit:   limit,
	}
}

// Name returns the feed URL
func (s *RSSSource) Name() string {
	return s.feedURL
}

// Fetch downloads and parses the feed
func (s *RSSSource) Fetch(ctx context.Context) ([]domain.Article, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, s.feedURL)
	if err != nil {
		return nil, fmt.Errorf("rss fetch: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &errs.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-2xx status code",
			API:        "rss",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("rss read: %w", err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("rss parse: %w", err)
	}

	items := feed.Items
	if s.limit > 0 && len(items) > s.limit {
		items = items[:s.limit]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		a := domain.Article{
			Title:  strings.TrimSpace(item.Title),
			URL:    item.Link,
			Source: feed.Title,
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		} else {
			a.PublishedAt = timeutil.ParseFlexibleTime(item.Published)
		}
		articles = append(articles, a)
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Fetched headlines", map[string]interface{}{
			"feed":     s.feedURL,
			"articles": len(articles),
		})
	}

	return articles, nil
}
