package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps the core packages free of a concrete logging library.
//
// Example usage:
//
//	logger.Info("Scraped article", map[string]interface{}{
//		"url":   "https://www.bbc.co.uk/news/world-1",
//		"chars": 2048,
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
