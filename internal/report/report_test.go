package report

import (
	"strings"
	"testing"

	"github.com/goliatone/go-linkmap/internal/graph"
	"github.com/goliatone/go-linkmap/internal/index"
)

func reportInput() Input {
	idx := index.New()
	idx.Add("Post A", "https://helpedbyanerd.com/post-a", nil)
	idx.Add("Post B", "https://helpedbyanerd.com/post-b", []string{
		"https://helpedbyanerd.com/post-a",
	})
	return Input{
		Domain:     "helpedbyanerd.com",
		ExportPath: "export.xml",
		Index:      idx,
		Stats:      graph.Stats{Articles: 2, URLs: 0, Nodes: 2, Edges: 1},
		Diagram:    "graph TD;\n  A1[\"Post B\"] --> A0[\"Post A\"];\n",
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(reportInput())

	for _, want := range []string{
		"# Internal Link Report",
		"Domain: `helpedbyanerd.com`",
		"- Articles: 2",
		"```mermaid\ngraph TD;",
		"### Post A",
		"No internal links.",
		"### Post B",
		"- https://helpedbyanerd.com/post-a",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownInventoryFollowsTitleOrder(t *testing.T) {
	md := Markdown(reportInput())

	if strings.Index(md, "### Post A") > strings.Index(md, "### Post B") {
		t.Fatal("inventory must follow title enumeration order")
	}
}

func TestHTMLRendersHeadings(t *testing.T) {
	out, err := HTML(reportInput())
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(string(out), "<h1") {
		t.Fatalf("expected rendered heading, got %s", out)
	}
	if !strings.Contains(string(out), "Post B") {
		t.Fatalf("expected article titles in output, got %s", out)
	}
}

func TestMarkdownWithoutDiagramOmitsFence(t *testing.T) {
	in := reportInput()
	in.Diagram = ""

	if strings.Contains(Markdown(in), "```mermaid") {
		t.Fatal("no diagram section expected when diagram is empty")
	}
}
