// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the news source, scraper, HTTP client, server and logging

package config

import (
	"os"
	"strconv"
	"time"

	errs "news-sentiment-dashboard/core/errors"
)

// Dashboard modes
const (
	ModeTerminal = "terminal"
	ModeServer   = "server"
)

// Headline source kinds
const (
	SourceNewsAPI = "newsapi"
	SourceRSS     = "rss"
)

// Text extractor kinds
const (
	ExtractorClass       = "class"
	ExtractorReadability = "readability"
)

// DefaultParagraphClass is the class attribute value of BBC article paragraphs
const DefaultParagraphClass = "ssrcss-1q0x1qg-Paragraph eq5iqo00"

// Config holds all application configuration
type Config struct {
	// Mode selects one-shot terminal output or the dashboard server
	Mode string

	Server  ServerConfig
	News    NewsConfig
	Scraper ScraperConfig
	HTTP    HTTPConfig
	Log     LogConfig
}

// ServerConfig holds dashboard server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimitPerMinute caps requests per client IP; 0 disables limiting
	RateLimitPerMinute int
}

// NewsConfig holds headline source configuration
type NewsConfig struct {
	// SourceKind is newsapi or rss
	SourceKind string

	// APIKey is sent verbatim in the Authorization header
	APIKey string

	Endpoint string

	// Source is the NewsAPI outlet id
	Source   string
	Language string

	// PageSize truncates the headline list; 0 keeps everything
	PageSize int

	RSSFeedURL string
}

// ScraperConfig holds article scraping configuration
type ScraperConfig struct {
	// Extractor is class or readability
	Extractor      string
	ParagraphClass string

	// Concurrency of 1 scrapes sequentially
	Concurrency int
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string

	// File is empty for stderr, otherwise a rotated log file path
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	apiKey := getEnvOrDefault("NEWS_API_KEY", os.Getenv("API_KEY"))

	cfg := &Config{
		Mode: getEnvOrDefault("DASHBOARD_MODE", ModeTerminal),
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			RateLimitPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 60),
		},
		News: NewsConfig{
			SourceKind: getEnvOrDefault("HEADLINE_SOURCE", SourceNewsAPI),
			APIKey:     apiKey,
			Endpoint:   getEnvOrDefault("NEWS_API_ENDPOINT", "https://newsapi.org/v2/top-headlines"),
			Source:     getEnvOrDefault("NEWS_SOURCE", "bbc-news"),
			Language:   getEnvOrDefault("NEWS_LANGUAGE", "en"),
			PageSize:   getEnvAsIntOrDefault("NEWS_PAGE_SIZE", 0),
			RSSFeedURL: getEnvOrDefault("RSS_FEED_URL", "https://feeds.bbci.co.uk/news/rss.xml"),
		},
		Scraper: ScraperConfig{
			Extractor:      getEnvOrDefault("SCRAPER_EXTRACTOR", ExtractorClass),
			ParagraphClass: getEnvOrDefault("SCRAPER_PARAGRAPH_CLASS", DefaultParagraphClass),
			Concurrency:    getEnvAsIntOrDefault("SCRAPER_CONCURRENCY", 1),
		},
		HTTP: HTTPConfig{
			Timeout: time.Duration(getEnvAsIntOrDefault("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   os.Getenv("LOG_FILE"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeTerminal && c.Mode != ModeServer {
		return &errs.ValidationError{Field: "DASHBOARD_MODE", Message: "must be 'terminal' or 'server'"}
	}

	if c.Mode == ModeServer && c.Server.Port == "" {
		return &errs.ValidationError{Field: "PORT", Message: "cannot be empty"}
	}

	switch c.News.SourceKind {
	case SourceNewsAPI:
		if c.News.APIKey == "" {
			return &errs.ValidationError{Field: "NEWS_API_KEY", Message: "is required"}
		}
		if c.News.Endpoint == "" {
			return &errs.ValidationError{Field: "NEWS_API_ENDPOINT", Message: "cannot be empty"}
		}
	case SourceRSS:
		if c.News.RSSFeedURL == "" {
			return &errs.ValidationError{Field: "RSS_FEED_URL", Message: "cannot be empty when using the rss source"}
		}
	default:
		return &errs.ValidationError{Field: "HEADLINE_SOURCE", Message: "must be 'newsapi' or 'rss'"}
	}

	if c.News.PageSize < 0 {
		return &errs.ValidationError{Field: "NEWS_PAGE_SIZE", Message: "cannot be negative"}
	}

	if c.Scraper.Extractor != ExtractorClass && c.Scraper.Extractor != ExtractorReadability {
		return &errs.ValidationError{Field: "SCRAPER_EXTRACTOR", Message: "must be 'class' or 'readability'"}
	}

	if c.Scraper.Extractor == ExtractorClass && c.Scraper.ParagraphClass == "" {
		return &errs.ValidationError{Field: "SCRAPER_PARAGRAPH_CLASS", Message: "cannot be empty"}
	}

	if c.Scraper.Concurrency < 1 {
		return &errs.ValidationError{Field: "SCRAPER_CONCURRENCY", Message: "must be at least 1"}
	}

	if c.HTTP.Timeout < time.Second {
		return &errs.ValidationError{Field: "HTTP_TIMEOUT_SECONDS", Message: "must be at least 1 second"}
	}

	return nil
}
