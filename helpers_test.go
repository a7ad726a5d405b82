package blog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/frontmatter"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Go 1.24: What's New?  ", "go-1-24-what-s-new"},
		{"already-slugged", "already-slugged"},
		{"!!!", ""},
		{"DevRel & DX", "devrel-dx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://blog.devcult.io", nil, "https://blog.devcult.io/"},
		{"https://blog.devcult.io/", nil, "https://blog.devcult.io/"},
		{"https://blog.devcult.io", []string{"posts", "foo"}, "https://blog.devcult.io/posts/foo/"},
		{"https://example.com/blog", []string{"posts"}, "https://example.com/blog/posts/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segs...))
	}
}

func TestAuthorType(t *testing.T) {
	assert.Equal(t, "Organization", AuthorType("DevCult Team", "DevCult Team"))
	assert.Equal(t, "Organization", AuthorType("", "DevCult Team"))
	assert.Equal(t, "Person", AuthorType("John Doe", "DevCult Team"))
}

func testConfig() SiteConfig {
	cfg := SiteConfig{}
	cfg.setDefaults()
	return cfg
}

func decodeLD(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestBlogPostingJSONLD(t *testing.T) {
	post := content.Document{
		ID:   "posts/test",
		Data: content.Data{Title: "Test Post", Description: "Test description"},
		Metadata: frontmatter.Metadata{
			Date:   date("2025-01-15"),
			Author: "Test Author",
			Tags:   []string{"javascript", "typescript", "testing"},
		},
	}
	ld := decodeLD(t, BlogPostingJSONLD(post, testConfig()))

	assert.Equal(t, "https://schema.org", ld["@context"])
	assert.Equal(t, "BlogPosting", ld["@type"])
	assert.Equal(t, "Test Post", ld["headline"])
	assert.Equal(t, "https://blog.devcult.io/posts/test/", ld["url"])
	assert.Equal(t, "2025-01-15T00:00:00.000Z", ld["datePublished"])
	assert.Equal(t, "javascript, typescript, testing", ld["keywords"])

	author := ld["author"].(map[string]any)
	assert.Equal(t, "Person", author["@type"])
	assert.Equal(t, "Test Author", author["name"])

	publisher := ld["publisher"].(map[string]any)
	assert.Equal(t, "Organization", publisher["@type"])
	assert.Equal(t, "DevCult", publisher["name"])
	assert.Equal(t, "https://blog.devcult.io/og-image.png", publisher["logo"].(map[string]any)["url"])

	main := ld["mainEntityOfPage"].(map[string]any)
	assert.Equal(t, "https://blog.devcult.io/posts/test/", main["@id"])
}

func TestBlogPostingJSONLDTeamAuthor(t *testing.T) {
	post := content.Document{ID: "posts/team", Data: content.Data{Title: "Team"}}
	ld := decodeLD(t, BlogPostingJSONLD(post, testConfig()))

	author := ld["author"].(map[string]any)
	assert.Equal(t, "Organization", author["@type"])
	assert.Equal(t, "DevCult Team", author["name"])
	assert.NotContains(t, ld, "datePublished")
	assert.NotContains(t, ld, "keywords")
}

func TestBreadcrumbJSONLD(t *testing.T) {
	ld := decodeLD(t, BreadcrumbJSONLD(testConfig(),
		Crumb{Name: "Home", Path: "/"},
		Crumb{Name: "Posts", Path: "/posts/"},
		Crumb{Name: "Article"},
	))
	assert.Equal(t, "BreadcrumbList", ld["@type"])

	items := ld["itemListElement"].([]any)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.EqualValues(t, i+1, it.(map[string]any)["position"])
	}
	assert.Equal(t, "https://blog.devcult.io/", items[0].(map[string]any)["item"])
	assert.Equal(t, "https://blog.devcult.io/posts/", items[1].(map[string]any)["item"])
	assert.NotContains(t, items[2].(map[string]any), "item")
}

func TestWebsiteJSONLD(t *testing.T) {
	ld := decodeLD(t, WebsiteJSONLD(testConfig()))
	assert.Equal(t, "WebSite", ld["@type"])
	assert.Equal(t, "DevCult Blog", ld["name"])
	assert.Equal(t, "https://blog.devcult.io/", ld["url"])
}
