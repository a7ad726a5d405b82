package blog

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/require"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/frontmatter"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func blogFS() fstest.MapFS {
	return fstest.MapFS{
		"index.mdx": {Data: []byte("---\ntitle: DevCult Blog\n---\nWelcome\n")},
		"posts/oldest-post.md": {Data: []byte(`---
title: Oldest Post
description: Oldest description
date: 2025-12-05
author: DevCult Team
tags: [tag3]
---
Oldest body.
`)},
		"posts/newest-post.md": {Data: []byte(`---
title: Newest Post
description: Newest description
date: 2025-12-15
author: Test Author
tags: [go, rss]
---
## Intro

Some **bold** words.
`)},
		"posts/middle-post.md": {Data: []byte("---\ntitle: Middle Post\ndescription: Middle description\ndate: 2025-12-10\n---\nmiddle\n")},
		"posts/undated.mdx":    {Data: []byte("---\ntitle: Undated\ndescription: No metadata\n---\nimport X from './x';\n\nbody\n")},
		"posts/draft.md":       {Data: []byte("---\ntitle: Draft\ndate: 2026-01-01\ndraft: true\n---\n")},
	}
}

func newTestApp(t *testing.T, fsys fstest.MapFS, opts ...Option) *App {
	t.Helper()
	collection, err := content.NewCollection(fsys)
	require.NoError(t, err)

	logger := log.New("test")
	logger.SetLevel(log.OFF)
	store := frontmatter.NewStore(frontmatter.FSReader(fsys, frontmatter.DefaultExtension), frontmatter.WithLogger(logger))

	opts = append([]Option{
		WithProvider(collection),
		WithFrontmatter(store),
		WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	app, err := New(SiteConfig{URL: "https://blog.devcult.io"}, opts...)
	require.NoError(t, err)
	app.Echo.Logger.SetLevel(log.OFF)
	return app
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func record(app *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func serve(app *App, method, target string) *httptest.ResponseRecorder {
	return record(app, newRequest(method, target))
}

func get(app *App, target string) *httptest.ResponseRecorder {
	return serve(app, http.MethodGet, target)
}
