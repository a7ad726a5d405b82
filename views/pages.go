// Package views holds the default page templates. Sites can replace any of
// them through blog.ViewFuncs.
//
// Pages are built from small components: Layout wraps a body, and the body is
// joined from pieces such as postList, article and tagList.
package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
)

const displayDate = "January 2, 2006"

// pageWriter accumulates the first write error so templates read top to bottom.
type pageWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component builds a templ.Component from a function writing through a pageWriter.
func component(fn func(p *pageWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &pageWriter{ctx: ctx, w: w}
		fn(p)
		return p.err
	})
}

func (p *pageWriter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *pageWriter) text(s string) {
	p.raw(templ.EscapeString(s))
}

// attr writes name="value" with value escaped.
func (p *pageWriter) attr(name, value string) {
	p.raw(" " + name + `="`)
	p.text(value)
	p.raw(`"`)
}

// el writes <tag class="...">text</tag>; class may be empty.
func (p *pageWriter) el(tag, class, text string) {
	p.raw("<" + tag)
	if class != "" {
		p.attr("class", class)
	}
	p.raw(">")
	p.text(text)
	p.raw("</" + tag + ">")
}

func (p *pageWriter) render(c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(p.ctx, p.w)
}

// Layout renders the HTML document around body.
func Layout(site Site, meta PageMeta, body templ.Component) templ.Component {
	return component(func(p *pageWriter) {
		p.raw(`<!DOCTYPE html><html lang="en">`)
		p.render(head(site, meta))
		p.raw(`<body><header><a class="site-title" href="/">`)
		p.text(site.Name)
		p.raw(`</a></header><main>`)
		p.render(body)
		p.raw(`</main></body></html>`)
	})
}

func head(site Site, meta PageMeta) templ.Component {
	title := site.Name
	if meta.Title != "" && meta.Title != site.Name {
		title = meta.Title + " | " + site.Name
	}
	description := meta.Description
	if description == "" {
		description = site.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	return component(func(p *pageWriter) {
		p.raw(`<head><meta charset="utf-8">`)
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw(`<link rel="stylesheet" href="/style.css"><link rel="icon" type="image/svg+xml" href="/favicon.svg">`)
		p.el("title", "", title)
		metaTag(p, "name", "description", description)
		if meta.URL != "" {
			p.raw(`<link rel="canonical"`)
			p.attr("href", meta.URL)
			p.raw(`>`)
			metaTag(p, "property", "og:url", meta.URL)
		}
		metaTag(p, "property", "og:title", title)
		metaTag(p, "property", "og:type", ogType)
		if site.ThemeColor != "" {
			metaTag(p, "name", "theme-color", site.ThemeColor)
		}
		if site.FeedURL != "" {
			p.raw(`<link rel="alternate" type="application/rss+xml"`)
			p.attr("title", site.Name+" RSS Feed")
			p.attr("href", site.FeedURL)
			p.raw(`>`)
		}
		for _, ld := range meta.JSONLD {
			// ld is produced by encoding/json, which escapes <, > and &.
			p.raw(`<script type="application/ld+json">` + ld + `</script>`)
		}
		p.raw(`</head>`)
	})
}

func metaTag(p *pageWriter, key, name, content string) {
	p.raw(`<meta`)
	p.attr(key, name)
	p.attr("content", content)
	p.raw(`>`)
}

// Home renders the landing page listing.
func Home(site Site, page HomePage) templ.Component {
	return Layout(site, page.Meta, templ.Join(
		component(func(p *pageWriter) { p.el("h1", "", site.Name) }),
		postList(page.Posts),
	))
}

func postList(posts []PostSummary) templ.Component {
	return component(func(p *pageWriter) {
		if len(posts) == 0 {
			p.el("p", "empty", "No posts yet.")
			return
		}
		p.raw(`<ul class="posts">`)
		for _, post := range posts {
			p.raw(`<li><a`)
			p.attr("href", post.URL)
			p.raw(`>`)
			p.text(post.Title)
			p.raw(`</a>`)
			p.render(timeTag(post.Published))
			if post.Description != "" {
				p.el("p", "", post.Description)
			}
			p.raw(`</li>`)
		}
		p.raw(`</ul>`)
	})
}

// Post renders a single post.
func Post(site Site, page PostPage) templ.Component {
	return Layout(site, page.Meta, article(page))
}

func article(page PostPage) templ.Component {
	return component(func(p *pageWriter) {
		p.raw(`<article>`)
		p.el("h1", "", page.Meta.Title)
		p.raw(`<div class="post-meta">`)
		p.render(timeTag(page.Published))
		if page.Author != "" {
			p.el("span", "author", page.Author)
		}
		if page.ReadingTime != "" {
			p.el("span", "reading-time", page.ReadingTime)
		}
		p.raw(`</div>`)
		p.render(tagList(page.Tags))
		p.raw(`<div class="content">`)
		p.render(page.Body)
		p.raw(`</div></article>`)
	})
}

func tagList(tags []string) templ.Component {
	return component(func(p *pageWriter) {
		if len(tags) == 0 {
			return
		}
		p.raw(`<ul class="tags">`)
		for _, tag := range tags {
			p.el("li", "", tag)
		}
		p.raw(`</ul>`)
	})
}

// timeTag renders nothing for the zero time.
func timeTag(t time.Time) templ.Component {
	return component(func(p *pageWriter) {
		if t.IsZero() {
			return
		}
		p.raw(`<time`)
		p.attr("datetime", t.UTC().Format(time.RFC3339))
		p.raw(`>`)
		p.text(t.UTC().Format(displayDate))
		p.raw(`</time>`)
	})
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	return errorPage(site, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	return errorPage(site, "Something went wrong", "Please try again later.")
}

func errorPage(site Site, title, message string) templ.Component {
	return Layout(site, PageMeta{Title: title}, component(func(p *pageWriter) {
		p.el("h1", "", title)
		p.el("p", "", message)
		p.raw(`<p><a href="/">Back to the blog</a></p>`)
	}))
}

// Redirect renders a static page that forwards to target. Static hosts
// cannot send a 302, so the build writes this in its place.
func Redirect(site Site, target string) templ.Component {
	return component(func(p *pageWriter) {
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.el("title", "", site.Name)
		p.raw(`<meta http-equiv="refresh"`)
		p.attr("content", "0;url="+target)
		p.raw(`><meta name="robots" content="noindex"><link rel="canonical"`)
		p.attr("href", target)
		p.raw(`></head><body><a`)
		p.attr("href", target)
		p.raw(`>Redirecting to the latest post</a></body></html>`)
	})
}
