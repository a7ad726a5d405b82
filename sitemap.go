package blog

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/0xdevcult/blog/content"
)

const (
	sitemapNS      = "http://www.sitemaps.org/schemas/sitemap/0.9"
	sitemapDateFmt = "2006-01-02"
)

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapLoc `xml:"sitemap"`
}

type sitemapLoc struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// RenderSitemapIndex returns the sitemap index pointing at the single page
// sitemap.
func RenderSitemapIndex(site string) ([]byte, error) {
	return encodeXML(sitemapIndex{
		XMLNS:    sitemapNS,
		Sitemaps: []sitemapLoc{{Loc: strings.TrimSuffix(site, "/") + "/sitemap-0.xml"}},
	})
}

// RenderSitemap returns the urlset for the home page and every post. posts
// are expected newest first; the home page takes the newest date.
func RenderSitemap(site string, posts []content.Document) ([]byte, error) {
	site = strings.TrimSuffix(site, "/")
	home := sitemapURL{Loc: site + "/"}
	if len(posts) > 0 && posts[0].Metadata.HasDate() {
		home.LastMod = posts[0].Metadata.Date.Format(sitemapDateFmt)
	}
	urls := []sitemapURL{home}
	for _, p := range posts {
		u := sitemapURL{Loc: site + content.Link(p.ID)}
		if p.Metadata.HasDate() {
			u.LastMod = p.Metadata.Date.Format(sitemapDateFmt)
		}
		urls = append(urls, u)
	}
	return encodeXML(sitemapURLSet{XMLNS: sitemapNS, URLs: urls})
}

// RenderRobots returns robots.txt content advertising the sitemap index.
func RenderRobots(site string) []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimSuffix(site, "/") + "/sitemap-index.xml\n")
}

func encodeXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("blog: encode xml: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (a *App) renderSitemap(ctx context.Context) ([]byte, error) {
	posts, err := a.Cache.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return RenderSitemap(a.Config.URL, posts)
}

func (a *App) handleSitemapIndex(c echo.Context) error {
	body, err := RenderSitemapIndex(a.Config.URL)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (a *App) handleSitemap(c echo.Context) error {
	body, err := a.renderSitemap(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, RenderRobots(a.Config.URL))
}
