package index

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

type stubExtractor struct {
	byBody map[string][]string
}

func (s *stubExtractor) Extract(body string) []string {
	return s.byBody[body]
}

func TestBuilderIndexesItemsInOrder(t *testing.T) {
	extractor := &stubExtractor{byBody: map[string][]string{
		"body-a": {"https://helpedbyanerd.com/b"},
		"body-b": {"https://helpedbyanerd.com/a", "https://helpedbyanerd.com/a"},
	}}
	builder := NewBuilder(extractor, nil)

	idx := builder.Build([]interfaces.Item{
		{Title: "A", Link: "https://helpedbyanerd.com/a", Body: "body-a"},
		{Title: "B", Link: "https://helpedbyanerd.com/b", Body: "body-b"},
	})

	if got := idx.Titles(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("unexpected title order: %v", got)
	}
	if got := idx.Links("B"); len(got) != 2 {
		t.Fatalf("duplicates must survive indexing, got %v", got)
	}
	if title, ok := idx.TitleForLink("https://helpedbyanerd.com/a"); !ok || title != "A" {
		t.Fatalf("link resolution failed: %q %v", title, ok)
	}
	if idx.TotalLinks() != 3 {
		t.Fatalf("expected 3 recorded targets, got %d", idx.TotalLinks())
	}
}

func TestBuilderIsIdempotent(t *testing.T) {
	extractor := &stubExtractor{byBody: map[string][]string{
		"body": {"https://helpedbyanerd.com/x"},
	}}
	items := []interfaces.Item{
		{Title: "A", Link: "https://helpedbyanerd.com/a", Body: "body"},
		{Title: "B", Link: "https://helpedbyanerd.com/b", Body: "body"},
	}
	builder := NewBuilder(extractor, nil)

	first := builder.Build(items)
	second := builder.Build(items)

	if !reflect.DeepEqual(first.Titles(), second.Titles()) {
		t.Fatalf("title order diverged: %v vs %v", first.Titles(), second.Titles())
	}
	for _, title := range first.Titles() {
		if !reflect.DeepEqual(first.Links(title), second.Links(title)) {
			t.Fatalf("links diverged for %s", title)
		}
	}
}

func TestDuplicateTitleOverwritesButKeepsPosition(t *testing.T) {
	idx := New()
	idx.Add("A", "https://helpedbyanerd.com/a", []string{"first"})
	idx.Add("B", "https://helpedbyanerd.com/b", nil)
	idx.Add("A", "https://helpedbyanerd.com/a2", []string{"second"})

	if got := idx.Titles(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("re-adding a title must keep its original position: %v", got)
	}
	if got := idx.Links("A"); !reflect.DeepEqual(got, []string{"second"}) {
		t.Fatalf("last write should win for links: %v", got)
	}
}

func TestDuplicateMissingLinksLastWriteWins(t *testing.T) {
	idx := New()
	idx.Add("First", "No Link", nil)
	idx.Add("Second", "No Link", nil)

	title, ok := idx.TitleForLink("No Link")
	if !ok || title != "Second" {
		t.Fatalf("expected last item to win for No Link, got %q", title)
	}
}

func TestDedupeSortsAndRemovesDuplicates(t *testing.T) {
	idx := New()
	idx.Add("A", "https://helpedbyanerd.com/a", []string{
		"https://helpedbyanerd.com/z",
		"https://helpedbyanerd.com/b",
		"https://helpedbyanerd.com/z",
	})

	deduped := idx.Dedupe()

	want := []string{"https://helpedbyanerd.com/b", "https://helpedbyanerd.com/z"}
	if got := deduped.Links("A"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected deduped sorted links %v, got %v", want, got)
	}
	// The source index is untouched.
	if got := idx.Links("A"); len(got) != 3 {
		t.Fatalf("dedupe must not mutate the source, got %v", got)
	}
}

func TestDebugDumpListsEveryArticle(t *testing.T) {
	idx := New()
	idx.Add("A", "https://helpedbyanerd.com/a", []string{"https://helpedbyanerd.com/b"})
	idx.Add("B", "https://helpedbyanerd.com/b", nil)

	dump := idx.DebugDump()
	if dump == "" {
		t.Fatal("expected non-empty dump")
	}
	for _, want := range []string{"A -> ", "B -> "} {
		if !strings.Contains(dump, want) {
			t.Fatalf("dump missing %q: %q", want, dump)
		}
	}
}
