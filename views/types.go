package views

import (
	"time"

	"github.com/a-h/templ"
)

// Site carries site-wide values every page needs in its <head>.
type Site struct {
	Name        string
	URL         string
	Description string
	FeedURL     string
	ThemeColor  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      []string
}

// PostSummary is one entry of a post listing.
type PostSummary struct {
	Title       string
	Description string
	URL         string
	Published   time.Time
}

// HomePage is the data behind the landing page.
type HomePage struct {
	Meta  PageMeta
	Posts []PostSummary
}

// PostPage is the data behind a single post.
type PostPage struct {
	Meta        PageMeta
	Published   time.Time
	Author      string
	Tags        []string
	ReadingTime string
	Body        templ.Component
}
