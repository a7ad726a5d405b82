package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	r := New()
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"heading with id", "## Getting Started", []string{`<h2 id="getting-started">Getting Started</h2>`}},
		{"bold and italic", "**bold** and *italic*", []string{"<strong>bold</strong>", "<em>italic</em>"}},
		{"inline code", "use `go test`", []string{"<code>go test</code>"}},
		{"link", "[site](https://blog.devcult.io)", []string{`<a href="https://blog.devcult.io">site</a>`}},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}},
		{"strikethrough", "~~gone~~", []string{"<del>gone</del>"}},
		{"fenced code", "```go\nfmt.Println(1)\n```", []string{`<code class="language-go">`}},
		{"raw html", "<div class=\"note\">hi</div>", []string{`<div class="note">hi</div>`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.HTML([]byte(tt.input))
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
		})
	}
}

func TestStripMDX(t *testing.T) {
	src := "import { Card } from '@astrojs/starlight/components';\nexport const x = 1;\n\n# Title\n\nimport is a word here.\n"
	got := string(StripMDX([]byte(src)))
	assert.True(t, strings.HasPrefix(got, "# Title"))
	assert.Contains(t, got, "import is a word here.")

	assert.Equal(t, "plain\n", string(StripMDX([]byte("plain\n"))))
	assert.Equal(t, "", string(StripMDX(nil)))
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown("# Hello").Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), `<h1 id="hello">Hello</h1>`)
}
