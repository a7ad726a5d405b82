package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrInvalidDocument is returned when an entry fails the collection schema.
	ErrInvalidDocument = errors.New("content: invalid document")
	// ErrNotFound is returned when no document has the requested ID.
	ErrNotFound = errors.New("content: document not found")
)

// Collection is a Provider over a directory of .md and .mdx files.
type Collection struct {
	fsys   fs.FS
	schema *jsonschema.Schema
}

// NewCollection returns a Collection reading from fsys, typically
// os.DirFS("src/content/docs").
func NewCollection(fsys fs.FS) (*Collection, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("content: compile schema: %w", err)
	}
	return &Collection{fsys: fsys, schema: schema}, nil
}

// List returns the documents accepted by match in lexical path order. Every
// entry is validated, matched or not; invalid entries are reported together.
func (c *Collection) List(ctx context.Context, match Predicate) ([]Document, error) {
	var (
		docs    []Document
		invalid []error
	)
	err := fs.WalkDir(c.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		ext := path.Ext(p)
		if ext != ".md" && ext != ".mdx" {
			return nil
		}
		doc, err := c.load(p, ext)
		if err != nil {
			if errors.Is(err, ErrInvalidDocument) {
				invalid = append(invalid, err)
				return nil
			}
			return err
		}
		if match == nil || match(doc) {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: list: %w", err)
	}
	if len(invalid) > 0 {
		return nil, errors.Join(invalid...)
	}
	return docs, nil
}

// Get returns the document with the given ID (no extension).
func (c *Collection) Get(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if !fs.ValidPath(id) || id == "." {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	for _, ext := range []string{".md", ".mdx"} {
		doc, err := c.load(id+ext, ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return doc, err
	}
	return Document{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (c *Collection) load(p, ext string) (Document, error) {
	src, err := fs.ReadFile(c.fsys, p)
	if err != nil {
		return Document{}, err
	}
	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(src), &raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}
	encoded, value, err := normalize(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}
	if err := c.schema.Validate(value); err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}
	var data Data
	if err := json.Unmarshal(encoded, &data); err != nil {
		return Document{}, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, p, err)
	}
	return Document{
		ID:   strings.TrimSuffix(p, ext),
		Ext:  ext,
		Data: data,
		Body: body,
	}, nil
}
