package diagram

import (
	"strings"
	"testing"

	"github.com/goliatone/go-linkmap/internal/index"
)

func TestGenerateEmitsResolvedEdges(t *testing.T) {
	idx := index.New()
	idx.Add("Post A", "https://helpedbyanerd.com/post-a", nil)
	idx.Add("Post B", "https://helpedbyanerd.com/post-b", []string{
		"https://helpedbyanerd.com/post-a",
	})

	got := NewMermaid(idx, nil).Generate()

	want := "graph TD;\n  A1[\"Post B\"] --> A0[\"Post A\"];\n"
	if got != want {
		t.Fatalf("unexpected diagram:\n%q\nwant:\n%q", got, want)
	}
}

func TestGenerateDropsUnresolvedTargets(t *testing.T) {
	idx := index.New()
	idx.Add("Post A", "https://helpedbyanerd.com/post-a", []string{
		"https://helpedbyanerd.com/never-exported",
	})

	got := NewMermaid(idx, nil).Generate()

	if got != Header {
		t.Fatalf("unresolved targets must be dropped silently, got %q", got)
	}
}

func TestGenerateKeepsUnknownArticleWhenItIsAKnownTitle(t *testing.T) {
	// An article literally titled with the placeholder makes unresolved
	// targets land on it instead of being dropped.
	idx := index.New()
	idx.Add(UnknownArticle, "No Link", nil)
	idx.Add("Post B", "https://helpedbyanerd.com/post-b", []string{
		"https://helpedbyanerd.com/missing",
	})

	got := NewMermaid(idx, nil).Generate()

	want := "  A1[\"Post B\"] --> A0[\"Unknown Article\"];\n"
	if !strings.Contains(got, want) {
		t.Fatalf("expected placeholder edge %q in %q", want, got)
	}
}

func TestGenerateIDStability(t *testing.T) {
	idx := index.New()
	idx.Add("Post A", "https://helpedbyanerd.com/post-a", []string{"https://helpedbyanerd.com/post-b"})
	idx.Add("Post B", "https://helpedbyanerd.com/post-b", []string{"https://helpedbyanerd.com/post-a"})

	first := NewMermaid(idx, nil).Generate()
	second := NewMermaid(idx, nil).Generate()

	if first != second {
		t.Fatalf("diagram output must be stable:\n%q\nvs\n%q", first, second)
	}
	if !strings.Contains(first, "A0[\"Post A\"] --> A1[\"Post B\"]") {
		t.Fatalf("expected A0 -> A1 edge, got %q", first)
	}
	if !strings.Contains(first, "A1[\"Post B\"] --> A0[\"Post A\"]") {
		t.Fatalf("expected A1 -> A0 edge, got %q", first)
	}
}

func TestGenerateEmptyIndex(t *testing.T) {
	got := NewMermaid(index.New(), nil).Generate()
	if got != Header {
		t.Fatalf("empty index should produce only the header, got %q", got)
	}
}

func TestGenerateSelfReference(t *testing.T) {
	idx := index.New()
	idx.Add("Post A", "https://helpedbyanerd.com/post-a", []string{
		"https://helpedbyanerd.com/post-a",
	})

	got := NewMermaid(idx, nil).Generate()
	want := "  A0[\"Post A\"] --> A0[\"Post A\"];\n"
	if !strings.Contains(got, want) {
		t.Fatalf("self link should resolve to a self edge, got %q", got)
	}
}
