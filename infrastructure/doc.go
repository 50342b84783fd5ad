// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with client-wide headers and a logging transport
// - logger/structured: logrus logger with optional lumberjack file rotation
// - extractor/classpara: goquery extractor for paragraphs with a fixed class signature
// - extractor/readable: go-readability main-content extractor
// - nlp/vader: VADER compound polarity
// - nlp/lexicon: embedded YAML subjectivity lexicon
// - render/terminal: tablewriter table and text bar charts
// - render/html: dashboard page with go-echarts bar charts
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithHeader("Authorization", apiKey),
//	    standard.WithTransport(standard.NewLoggingTransport(nil, logger)),
//	)
//
// Requests are made once. There is no retry and no response cache.
package infrastructure
