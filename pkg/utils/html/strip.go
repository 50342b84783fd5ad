// ABOUTME: Text cleanup helpers for content extracted from HTML pages
// ABOUTME: Normalizes whitespace left behind by tag removal

package html

import (
	"strings"
)

// CollapseWhitespace trims s and replaces every run of whitespace
// (spaces, tabs, newlines, non-breaking spaces) with a single space
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
