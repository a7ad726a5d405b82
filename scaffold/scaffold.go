// Package scaffold writes new posts from embedded templates.
package scaffold

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/0xdevcult/blog/content"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// ErrExists is returned when the target post file already exists.
var ErrExists = errors.New("scaffold: post already exists")

// Post holds the template variables for a new post.
type Post struct {
	Title  string
	Slug   string
	Author string
	Date   string // YYYY-MM-DD
}

var postTemplate = template.Must(template.ParseFS(Templates, "templates/post.md.tmpl"))

// WritePost creates <dir>/posts/<slug>.md and returns its path. It refuses
// when posts/<slug> already exists as .md or .mdx, since both would claim
// the same link.
func WritePost(ctx context.Context, dir string, p Post) (string, error) {
	if p.Slug == "" {
		return "", fmt.Errorf("scaffold: empty slug for %q", p.Title)
	}
	id := "posts/" + p.Slug
	if err := checkFree(ctx, dir, id); err != nil {
		return "", err
	}
	out := filepath.Join(dir, filepath.FromSlash(id)+".md")
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrExists, out)
		}
		return "", fmt.Errorf("scaffold: create %s: %w", out, err)
	}
	defer f.Close()

	if err := postTemplate.Execute(f, p); err != nil {
		return "", fmt.Errorf("scaffold: execute template: %w", err)
	}
	return out, nil
}

func checkFree(ctx context.Context, dir, id string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	collection, err := content.NewCollection(os.DirFS(dir))
	if err != nil {
		return err
	}
	_, err = collection.Get(ctx, id)
	switch {
	case errors.Is(err, content.ErrNotFound):
		return nil
	case err == nil, errors.Is(err, content.ErrInvalidDocument):
		return fmt.Errorf("%w: %s", ErrExists, id)
	default:
		return fmt.Errorf("scaffold: check %s: %w", id, err)
	}
}
