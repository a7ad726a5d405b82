// Package markdown renders post bodies to HTML with goldmark and exposes the
// result as templ components.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GitHub Flavored Markdown, footnotes and heading
// IDs enabled. Raw HTML in posts is passed through.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

var defaultRenderer = New()

// HTML renders src as HTML. Leading MDX import/export lines are dropped.
func (r *Renderer) HTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(StripMDX(src), &buf); err != nil {
		return nil, fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.Bytes(), nil
}

// Component returns a templ.Component that renders src as HTML.
func (r *Renderer) Component(src []byte) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.HTML(src)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}

// Markdown returns a templ.Component that renders content with the default renderer.
func Markdown(content string) templ.Component {
	return defaultRenderer.Component([]byte(content))
}

// StripMDX removes the import and export statements MDX files carry before
// their first block of content.
func StripMDX(src []byte) []byte {
	lines := strings.SplitAfter(string(src), "\n")
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "export ") {
			continue
		}
		break
	}
	return []byte(strings.Join(lines[i:], ""))
}
