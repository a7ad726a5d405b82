// Package blog serves and builds the DevCult blog: an RSS feed, sitemaps and
// post pages generated from a directory of Markdown documents.
//
// Documents come from a content.Provider (by default the docs collection on
// disk), their publish metadata from a frontmatter.Store, and pages are
// rendered through replaceable templ components (ViewFuncs).
package blog

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/frontmatter"
	"github.com/0xdevcult/blog/markdown"
	"github.com/0xdevcult/blog/views"
)

// App is the central application. It wires together the content provider,
// the frontmatter store, the post cache, handlers, middleware and templates.
type App struct {
	Config      SiteConfig
	Echo        *echo.Echo
	Content     content.Provider
	Frontmatter *frontmatter.Store
	Cache       *PostCache
	Views       ViewFuncs

	markdown     *markdown.Renderer
	now          func() time.Time
	customRoutes []func(*App)
}

// New creates an App with the given configuration. Routes and middleware are
// registered immediately so the app can be served or built.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Views:    DefaultViews(),
		markdown: markdown.New(),
		now:      time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Content == nil {
		collection, err := content.NewCollection(os.DirFS(cfg.ContentDir))
		if err != nil {
			return nil, fmt.Errorf("blog: init content: %w", err)
		}
		a.Content = collection
	}
	if a.Frontmatter == nil {
		a.Frontmatter = frontmatter.NewStore(
			frontmatter.FileReader(cfg.ContentDir, frontmatter.DefaultExtension),
			frontmatter.WithLogger(a.Echo.Logger),
		)
	}
	a.Cache = NewPostCache(a.loadPosts, cfg.FeedCacheTTL)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start serves the site on Config.Addr until the server is shut down.
func (a *App) Start() error {
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Reload drops the cached post list so the next request walks the content
// directory again. Metadata already in the frontmatter store is kept.
func (a *App) Reload() {
	a.Cache.Invalidate()
	a.Echo.Logger.Infof("blog: post list reloaded")
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	assetHandler := echo.WrapHandler(http.FileServer(http.FS(assets)))
	e.GET("/style.css", assetHandler)
	e.GET("/favicon.svg", assetHandler)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/rss.xml", a.handleFeed)
	e.GET("/sitemap-index.xml", a.handleSitemapIndex)
	e.GET("/sitemap-0.xml", a.handleSitemap)
	e.GET("/", a.handleHome)
	e.GET("/posts/", a.handlePostIndex)
	e.GET("/posts/*", a.handlePost)
}

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		FeedURL:     BuildURL(a.Config.URL) + "rss.xml",
		ThemeColor:  a.Config.ThemeColor,
	}
}

func (a *App) feedMeta() FeedMeta {
	return FeedMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		Site:        a.Config.URL,
	}
}
