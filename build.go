package blog

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/a-h/templ"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/views"
)

// BuildReport lists the files a Build wrote, relative to the output dir.
type BuildReport struct {
	Files []string
}

// Build renders the whole site into outDir as static files. It produces the
// same bytes the server sends for each route.
func (a *App) Build(ctx context.Context, outDir string) (BuildReport, error) {
	var report BuildReport
	write := func(name string, data []byte) error {
		dst := filepath.Join(outDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("blog: build: %w", err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("blog: build: %w", err)
		}
		report.Files = append(report.Files, name)
		return nil
	}

	posts, err := a.Cache.ListPosts(ctx)
	if err != nil {
		return report, err
	}

	feed, err := RenderRSS(posts, a.feedMeta(), a.now())
	if err != nil {
		return report, err
	}
	sitemap, err := RenderSitemap(a.Config.URL, posts)
	if err != nil {
		return report, err
	}
	index, err := RenderSitemapIndex(a.Config.URL)
	if err != nil {
		return report, err
	}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{"rss.xml", feed},
		{"sitemap-index.xml", index},
		{"sitemap-0.xml", sitemap},
		{"robots.txt", RenderRobots(a.Config.URL)},
	} {
		if err := write(f.name, f.data); err != nil {
			return report, err
		}
	}

	listing, err := a.listingPage(ctx)
	if err != nil {
		return report, err
	}
	home := listing
	if len(posts) > 0 {
		home = views.Redirect(a.site(), content.Link(posts[0].ID))
	}
	pages := map[string]templ.Component{
		"index.html":       home,
		"posts/index.html": listing,
		"404.html":         a.Views.NotFound(a.site()),
	}
	for _, p := range posts {
		pages[content.Link(p.ID)[1:]+"index.html"] = a.postPage(p)
	}
	for _, name := range slices.Sorted(maps.Keys(pages)) {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		html, err := renderHTML(ctx, pages[name])
		if err != nil {
			return report, fmt.Errorf("blog: build %s: %w", name, err)
		}
		if err := write(name, html); err != nil {
			return report, err
		}
	}

	err = fs.WalkDir(EmbeddedAssets, "embedded", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := EmbeddedAssets.ReadFile(p)
		if err != nil {
			return err
		}
		return write(d.Name(), data)
	})
	return report, err
}
