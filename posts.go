package blog

import (
	"context"
	"fmt"

	"github.com/0xdevcult/blog/content"
	"github.com/0xdevcult/blog/frontmatter"
)

// Enrich attaches the store's metadata to each document. Documents whose
// metadata cannot be read keep empty metadata; the store has already logged
// why. The input slice is not modified.
func Enrich(store *frontmatter.Store, docs []content.Document) []content.Document {
	out := make([]content.Document, len(docs))
	for i, d := range docs {
		d.Metadata = store.Lookup(d.ID)
		out[i] = d
	}
	return out
}

// loadPosts lists published posts, enriches them and orders them newest first.
func (a *App) loadPosts(ctx context.Context) ([]content.Document, error) {
	docs, err := a.Content.List(ctx, content.All(content.IsPost, content.Published))
	if err != nil {
		return nil, fmt.Errorf("blog: load posts: %w", err)
	}
	return content.SortByDate(Enrich(a.Frontmatter, docs)), nil
}
