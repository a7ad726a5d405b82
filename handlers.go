package blog

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/readingtime"
	"github.com/0xdevcult/blog/views"
)

// handleHome sends readers to the newest post. Without posts it renders the
// empty listing instead.
func (a *App) handleHome(c echo.Context) error {
	latest, ok, err := a.Cache.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	if ok {
		return c.Redirect(http.StatusFound, content.Link(latest.ID))
	}
	return a.handlePostIndex(c)
}

func (a *App) handlePostIndex(c echo.Context) error {
	cmp, err := a.listingPage(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, cmp)
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Request().Context(), c.Request().URL.Path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
		}
		return err
	}
	return Render(c, a.postPage(post))
}

func (a *App) listingPage(ctx context.Context) (templ.Component, error) {
	posts, err := a.Cache.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]views.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, views.PostSummary{
			Title:       p.Data.Title,
			Description: p.Data.Description,
			URL:         content.Link(p.ID),
			Published:   p.Metadata.Date,
		})
	}
	page := views.HomePage{
		Meta: views.PageMeta{
			Title:  a.Config.Name,
			URL:    BuildURL(a.Config.URL),
			JSONLD: []string{WebsiteJSONLD(a.Config)},
		},
		Posts: summaries,
	}
	return a.Views.Home(a.site(), page), nil
}

func (a *App) postPage(post content.Document) templ.Component {
	postURL := BuildURL(a.Config.URL) + content.Link(post.ID)[1:]
	author := post.Metadata.Author
	if author == "" {
		author = a.Config.TeamAuthor
	}
	page := views.PostPage{
		Meta: views.PageMeta{
			Title:       post.Data.Title,
			Description: post.Data.Description,
			URL:         postURL,
			OGType:      "article",
			JSONLD: []string{
				BlogPostingJSONLD(post, a.Config),
				BreadcrumbJSONLD(a.Config,
					Crumb{Name: "Home", Path: "/"},
					Crumb{Name: "Posts", Path: "/posts/"},
					Crumb{Name: post.Data.Title},
				),
			},
		},
		Published:   post.Metadata.Date,
		Author:      author,
		Tags:        post.Metadata.Tags,
		ReadingTime: readingtime.Get(string(post.Body), readingtime.DefaultWordsPerMinute).Text,
		Body:        a.markdown.Component(post.Body),
	}
	return a.Views.Post(a.site(), page)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
