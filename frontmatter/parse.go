// Package frontmatter resolves per-document metadata (publish date, author,
// tags) from the front block at the head of a content file and memoizes the
// result for the lifetime of the process.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Metadata is the subset of a document's front block used by feeds and
// pages. Zero values mean the field was absent.
type Metadata struct {
	Date   time.Time
	Author string
	Tags   []string
}

// HasDate reports whether a publish date was present and parseable.
func (m Metadata) HasDate() bool {
	return !m.Date.IsZero()
}

// envelope receives the raw front block values. Fields are untyped so a bad
// value in one field never fails the others.
type envelope struct {
	Date   any `yaml:"date" json:"date" toml:"date"`
	Author any `yaml:"author" json:"author" toml:"author"`
	Tags   any `yaml:"tags" json:"tags" toml:"tags"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// Parse extracts Metadata from source. A file without a front block yields
// empty Metadata and no error; a front block that cannot be decoded is an
// error.
func Parse(source []byte) (Metadata, error) {
	var env envelope
	if _, err := frontmatter.Parse(bytes.NewReader(source), &env); err != nil {
		return Metadata{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return Metadata{
		Date:   parseDate(env.Date),
		Author: parseAuthor(env.Author),
		Tags:   parseTags(env.Tags),
	}, nil
}

// ParseDate parses a front block date string. Date-only values are midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseDate(v any) time.Time {
	switch d := v.(type) {
	case string:
		t, _ := ParseDate(d)
		return t
	case time.Time:
		return d.UTC()
	default:
		return time.Time{}
	}
}

func parseAuthor(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func parseTags(v any) []string {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case []string:
		return append([]string{}, t...)
	default:
		return nil
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		tags = append(tags, s)
	}
	return tags
}
