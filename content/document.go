// Package content enumerates the docs collection, validates each entry's
// front block against the collection schema, and orders documents for feeds
// and listings.
package content

import (
	"context"
	"path"
	"strings"

	"github.com/0xdevcult/blog/frontmatter"
)

// Data holds the schema-validated fields of a document's front block.
type Data struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Draft       bool   `json:"draft"`
}

// Document is one entry of the docs collection. Metadata is empty until the
// document is enriched through a frontmatter.Store.
type Document struct {
	ID       string
	Ext      string
	Data     Data
	Body     []byte
	Metadata frontmatter.Metadata
}

// Predicate selects documents from a listing.
type Predicate func(Document) bool

// Provider enumerates collection documents.
type Provider interface {
	List(ctx context.Context, match Predicate) ([]Document, error)
}

// IsPost matches documents under posts/.
func IsPost(d Document) bool {
	return strings.HasPrefix(d.ID, "posts/")
}

// Published matches documents that are not drafts.
func Published(d Document) bool {
	return !d.Data.Draft
}

// All matches documents accepted by every predicate.
func All(preds ...Predicate) Predicate {
	return func(d Document) bool {
		for _, p := range preds {
			if p != nil && !p(d) {
				return false
			}
		}
		return true
	}
}

// Link derives a document's site path from its ID: one trailing .md or .mdx
// is stripped and the result is wrapped in slashes.
func Link(id string) string {
	return "/" + stripExt(id) + "/"
}

// Slug returns the last path segment of id without its extension.
func Slug(id string) string {
	return path.Base(stripExt(id))
}

func stripExt(id string) string {
	for _, ext := range []string{".mdx", ".md"} {
		if strings.HasSuffix(id, ext) {
			return strings.TrimSuffix(id, ext)
		}
	}
	return id
}
