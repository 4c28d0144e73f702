// Package report renders a run summary as Markdown and HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-linkmap/internal/graph"
	"github.com/goliatone/go-linkmap/internal/index"
)

// Input carries everything the report needs from one extraction run.
type Input struct {
	Domain     string
	ExportPath string
	Index      *index.ArticleIndex
	Stats      graph.Stats
	Diagram    string
}

// Markdown renders the report: run summary, the Mermaid diagram inside a
// fenced block, and the per-article outbound link inventory in title order.
func Markdown(in Input) string {
	var b strings.Builder

	b.WriteString("# Internal Link Report\n\n")
	fmt.Fprintf(&b, "Domain: `%s`\n\n", in.Domain)
	if in.ExportPath != "" {
		fmt.Fprintf(&b, "Export: `%s`\n\n", in.ExportPath)
	}

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Articles: %d\n", in.Stats.Articles)
	fmt.Fprintf(&b, "- External targets: %d\n", in.Stats.URLs)
	fmt.Fprintf(&b, "- Nodes: %d\n", in.Stats.Nodes)
	fmt.Fprintf(&b, "- Edges: %d\n\n", in.Stats.Edges)

	if in.Diagram != "" {
		b.WriteString("## Diagram\n\n")
		b.WriteString("```mermaid\n")
		b.WriteString(in.Diagram)
		if !strings.HasSuffix(in.Diagram, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString("```\n\n")
	}

	if in.Index != nil {
		b.WriteString("## Articles\n\n")
		for _, title := range in.Index.Titles() {
			links := in.Index.Links(title)
			fmt.Fprintf(&b, "### %s\n\n", title)
			if link, ok := in.Index.CanonicalLink(title); ok {
				fmt.Fprintf(&b, "Canonical: `%s`\n\n", link)
			}
			if len(links) == 0 {
				b.WriteString("No internal links.\n\n")
				continue
			}
			for _, link := range links {
				fmt.Fprintf(&b, "- %s\n", link)
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// HTML renders the Markdown report through goldmark for the viewer page.
func HTML(in Input) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := engine.Convert([]byte(Markdown(in)), &buf); err != nil {
		return nil, fmt.Errorf("report render: %w", err)
	}
	return buf.Bytes(), nil
}
