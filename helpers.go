package blog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/0xdevcult/blog/content"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments. The result always ends in a
// slash, matching the site's trailing-slash routes.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AuthorType returns the schema.org type for a byline. The team byline and an
// empty author are the organization itself.
func AuthorType(author, teamAuthor string) string {
	if author == "" || author == teamAuthor {
		return "Organization"
	}
	return "Person"
}

func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

func marshalLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (c SiteConfig) imageObject() map[string]any {
	return map[string]any{
		"@type":  "ImageObject",
		"url":    c.OGImage,
		"width":  1200,
		"height": 630,
	}
}

// WebsiteJSONLD returns a JSON-LD string for a WebSite schema.
func WebsiteJSONLD(cfg SiteConfig) string {
	return marshalLD(map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  cfg.Organization,
			"url":   cfg.OrganizationURL,
		},
	})
}

// BlogPostingJSONLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJSONLD(post content.Document, cfg SiteConfig) string {
	postURL := strings.TrimSuffix(cfg.URL, "/") + content.Link(post.ID)
	author := post.Metadata.Author
	if author == "" {
		author = cfg.TeamAuthor
	}
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Data.Title,
		"description": post.Data.Description,
		"url":         postURL,
		"author": map[string]any{
			"@type": AuthorType(post.Metadata.Author, cfg.TeamAuthor),
			"name":  author,
			"url":   cfg.OrganizationURL,
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  cfg.Organization,
			"url":   cfg.OrganizationURL,
			"logo":  cfg.imageObject(),
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
		"image": cfg.imageObject(),
	}
	if post.Metadata.HasDate() {
		data["datePublished"] = isoDate(post.Metadata.Date)
		data["dateModified"] = isoDate(post.Metadata.Date)
	}
	if len(post.Metadata.Tags) > 0 {
		data["keywords"] = strings.Join(post.Metadata.Tags, ", ")
	}
	return marshalLD(data)
}

// Crumb is one step of a breadcrumb trail. The last crumb usually has no URL.
type Crumb struct {
	Name string
	Path string // site-relative, e.g. "/posts/"
}

// BreadcrumbJSONLD returns a JSON-LD string for a BreadcrumbList schema.
func BreadcrumbJSONLD(cfg SiteConfig, crumbs ...Crumb) string {
	site := strings.TrimSuffix(cfg.URL, "/")
	items := make([]map[string]any, 0, len(crumbs))
	for i, c := range crumbs {
		item := map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
		}
		if c.Path != "" {
			item["item"] = site + c.Path
		}
		items = append(items, item)
	}
	return marshalLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}
