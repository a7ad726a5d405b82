package blog

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/0xdevcult/blog/content"
)

// FeedLanguage is the fixed channel language.
const FeedLanguage = "en-us"

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RenderRSS serializes docs into an RSS 2.0 document. docs must already be in
// feed order; they are emitted as given. Items without a date are stamped
// with now.
func RenderRSS(docs []content.Document, meta FeedMeta, now time.Time) ([]byte, error) {
	site := strings.TrimSuffix(meta.Site, "/")
	items := make([]rssItem, 0, len(docs))
	for _, d := range docs {
		published := now
		if d.Metadata.HasDate() {
			published = d.Metadata.Date
		}
		link := site + content.Link(d.ID)
		categories := d.Metadata.Tags
		if categories == nil {
			categories = []string{}
		}
		items = append(items, rssItem{
			Title:       d.Data.Title,
			Link:        link,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			Description: d.Data.Description,
			PubDate:     published.Format(time.RFC1123Z),
			Author:      d.Metadata.Author,
			Categories:  categories,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       meta.Title,
			Link:        site + "/",
			Description: meta.Description,
			Language:    FeedLanguage,
			Items:       items,
		},
	}

	return encodeXML(feed)
}

func (a *App) renderFeed(ctx context.Context) ([]byte, error) {
	posts, err := a.Cache.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return RenderRSS(posts, a.feedMeta(), a.now())
}

func (a *App) handleFeed(c echo.Context) error {
	body, err := a.renderFeed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", body)
}
