package blog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/frontmatter"
)

// SiteConfig holds all configuration for the blog.
type SiteConfig struct {
	Name        string `validate:"required"`     // Site name (default "DevCult Blog")
	URL         string `validate:"required,url"` // Canonical URL (default "https://blog.devcult.io")
	Description string                           // Site description for RSS and meta tags

	TeamAuthor      string // Byline treated as the organization in JSON-LD (default "DevCult Team")
	Organization    string // Publisher name for JSON-LD (default "DevCult")
	OrganizationURL string `validate:"omitempty,url"`
	OGImage         string `validate:"omitempty,url"`
	ThemeColor      string

	Addr       string // Listen address (default ":4321")
	ContentDir string // Docs collection root (default "src/content/docs")
	OutputDir  string // Static build output (default "dist")

	FeedCacheTTL time.Duration `validate:"gte=0"` // Post list cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "DevCult Blog"
	}
	if c.URL == "" {
		c.URL = "https://blog.devcult.io"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Description == "" {
		c.Description = "Technical insights, developer experience, and DevRel best practices from the DevCult team."
	}
	if c.TeamAuthor == "" {
		c.TeamAuthor = "DevCult Team"
	}
	if c.Organization == "" {
		c.Organization = "DevCult"
	}
	if c.OrganizationURL == "" {
		c.OrganizationURL = "https://devcult.io"
	}
	if c.OGImage == "" {
		c.OGImage = c.URL + "/og-image.png"
	}
	if c.ThemeColor == "" {
		c.ThemeColor = "#ff6a00"
	}
	if c.Addr == "" {
		c.Addr = ":4321"
	}
	if c.ContentDir == "" {
		c.ContentDir = frontmatter.DefaultRoot
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.FeedCacheTTL == 0 {
		c.FeedCacheTTL = 5 * time.Minute
	}
}

var validate = validator.New()

// Validate checks the configuration after defaults are applied.
func (c SiteConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("blog: invalid config: %w", err)
	}
	return nil
}

// ConfigFromEnv builds a SiteConfig from environment variables. Unset
// variables fall back to the defaults applied by New.
func ConfigFromEnv() (SiteConfig, error) {
	cfg := SiteConfig{
		Name:        os.Getenv("SITE_NAME"),
		URL:         os.Getenv("SITE_URL"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		TeamAuthor:  os.Getenv("SITE_AUTHOR"),
		Addr:        os.Getenv("ADDR"),
		ContentDir:  os.Getenv("CONTENT_DIR"),
		OutputDir:   os.Getenv("OUTPUT_DIR"),
	}
	if v := os.Getenv("FEED_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("blog: FEED_CACHE_TTL: %w", err)
		}
		cfg.FeedCacheTTL = ttl
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithProvider replaces the filesystem docs collection.
func WithProvider(p content.Provider) Option {
	return func(a *App) {
		a.Content = p
	}
}

// WithFrontmatter sets the metadata store shared by feeds and pages.
func WithFrontmatter(s *frontmatter.Store) Option {
	return func(a *App) {
		a.Frontmatter = s
	}
}

// WithViews overrides the default page templates. Nil fields keep the defaults.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		if v.Home != nil {
			a.Views.Home = v.Home
		}
		if v.Post != nil {
			a.Views.Post = v.Post
		}
		if v.NotFound != nil {
			a.Views.NotFound = v.NotFound
		}
		if v.ServerError != nil {
			a.Views.ServerError = v.ServerError
		}
	}
}

// WithClock sets the time source used for undated feed items.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
