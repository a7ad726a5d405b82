package blog

import (
	"github.com/a-h/templ"

	"github.com/0xdevcult/blog/views"
)

// ViewFuncs holds the templ components the app calls when rendering pages.
// Sites can swap any of them with WithViews.
type ViewFuncs struct {
	Home        func(site views.Site, page views.HomePage) templ.Component
	Post        func(site views.Site, page views.PostPage) templ.Component
	NotFound    func(site views.Site) templ.Component
	ServerError func(site views.Site) templ.Component
}

// DefaultViews returns the built-in templates.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Post:        views.Post,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// FeedMeta describes the channel of an RSS feed.
type FeedMeta struct {
	Title       string
	Description string
	Site        string // absolute base URL, no trailing slash
}
