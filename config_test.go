package blog

import (
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xdevcult/blog/views"
)

func TestSetDefaults(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com/"}
	cfg.setDefaults()

	assert.Equal(t, "DevCult Blog", cfg.Name)
	assert.Equal(t, "https://example.com", cfg.URL)
	assert.Equal(t, "https://example.com/og-image.png", cfg.OGImage)
	assert.Equal(t, "DevCult Team", cfg.TeamAuthor)
	assert.Equal(t, "src/content/docs", cfg.ContentDir)
	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, ":4321", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.FeedCacheTTL)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadURL(t *testing.T) {
	cfg := SiteConfig{URL: "not a url"}
	cfg.setDefaults()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blog: invalid config")

	_, err = New(SiteConfig{URL: "not a url"})
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Other Blog")
	t.Setenv("SITE_URL", "https://other.example")
	t.Setenv("CONTENT_DIR", "docs")
	t.Setenv("FEED_CACHE_TTL", "30s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "Other Blog", cfg.Name)
	assert.Equal(t, "https://other.example", cfg.URL)
	assert.Equal(t, "docs", cfg.ContentDir)
	assert.Equal(t, 30*time.Second, cfg.FeedCacheTTL)
	assert.Empty(t, cfg.OutputDir)
}

func TestConfigFromEnvBadTTL(t *testing.T) {
	t.Setenv("FEED_CACHE_TTL", "soon")
	_, err := ConfigFromEnv()
	assert.ErrorContains(t, err, "FEED_CACHE_TTL")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BLOG_TEST_SET", "value")
	assert.Equal(t, "value", EnvOr("BLOG_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", EnvOr("BLOG_TEST_UNSET", "fallback"))
}

func TestWithViewsKeepsDefaults(t *testing.T) {
	called := false
	app := newTestApp(t, blogFS(), WithViews(ViewFuncs{
		NotFound: func(site views.Site) templ.Component {
			called = true
			return DefaultViews().NotFound(site)
		},
	}))
	require.NotNil(t, app.Views.Home)
	require.NotNil(t, app.Views.Post)

	get(app, "/missing/")
	assert.True(t, called)
}
