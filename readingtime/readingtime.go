// Package readingtime estimates how long a post takes to read.
package readingtime

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultWordsPerMinute is the assumed average reading speed.
const DefaultWordsPerMinute = 200

var reTag = regexp.MustCompile(`<[^>]*>`)

// Estimate pairs a reading time in minutes with its display text.
type Estimate struct {
	Minutes int
	Text    string
}

// Calculate returns the reading time of text in whole minutes, rounded up.
// HTML tags are ignored. wpm <= 0 uses DefaultWordsPerMinute.
func Calculate(text string, wpm int) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	words := len(strings.Fields(reTag.ReplaceAllString(text, "")))
	return (words + wpm - 1) / wpm
}

// Format renders minutes as "N min read".
func Format(minutes int) string {
	if minutes < 1 {
		return "Less than 1 min read"
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Get estimates the reading time of a markdown body.
func Get(markdown string, wpm int) Estimate {
	minutes := Calculate(markdown, wpm)
	return Estimate{Minutes: minutes, Text: Format(minutes)}
}
