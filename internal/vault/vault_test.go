package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-linkmap/internal/index"
)

func vaultIndex() *index.ArticleIndex {
	idx := index.New()
	idx.Add("Post A", "https://helpedbyanerd.com/post-a", nil)
	idx.Add("Post B", "https://helpedbyanerd.com/post-b", []string{
		"https://helpedbyanerd.com/post-a",
		"https://helpedbyanerd.com/elsewhere",
	})
	return idx
}

func TestWriteProducesOneNotePerArticle(t *testing.T) {
	dir := t.TempDir()
	if err := NewWriter(dir, nil).Write(vaultIndex()); err != nil {
		t.Fatalf("write vault: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(entries))
	}

	source, err := os.ReadFile(filepath.Join(dir, "post-b.md"))
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	note := string(source)
	for _, want := range []string{
		"title: \"Post B\"",
		"link: \"https://helpedbyanerd.com/post-b\"",
		"- \"https://helpedbyanerd.com/post-a\"",
		"[[Post A]]",
		"- https://helpedbyanerd.com/elsewhere",
	} {
		if !strings.Contains(note, want) {
			t.Fatalf("note missing %q:\n%s", want, note)
		}
	}
}

func TestWriteFallsBackToUntitledNote(t *testing.T) {
	dir := t.TempDir()
	idx := index.New()
	idx.Add("", "No Link", nil)

	if err := NewWriter(dir, nil).Write(idx); err != nil {
		t.Fatalf("write vault: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "untitled.md")); err != nil {
		t.Fatalf("title without a usable slug must land in the fallback note: %v", err)
	}
}

func TestRoundTripPreservesTitlesAndLinks(t *testing.T) {
	dir := t.TempDir()
	idx := vaultIndex()
	if err := NewWriter(dir, nil).Write(idx); err != nil {
		t.Fatalf("write vault: %v", err)
	}

	items, err := NewReader(dir, nil).ReadItems(context.Background())
	if err != nil {
		t.Fatalf("read vault: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	byTitle := map[string]string{}
	for _, item := range items {
		byTitle[item.Title] = item.Link
	}
	for _, title := range idx.Titles() {
		link, _ := idx.CanonicalLink(title)
		if byTitle[title] != link {
			t.Fatalf("round trip lost %s: got %q want %q", title, byTitle[title], link)
		}
	}
}

func TestReaderDefaultsMissingFrontmatter(t *testing.T) {
	dir := t.TempDir()
	note := "---\n---\n\nJust a body.\n"
	if err := os.WriteFile(filepath.Join(dir, "stray.md"), []byte(note), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}

	items, err := NewReader(dir, nil).ReadItems(context.Background())
	if err != nil {
		t.Fatalf("read vault: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "No Title" || items[0].Link != "No Link" {
		t.Fatalf("expected sentinel defaults, got %+v", items[0])
	}
	if !strings.Contains(items[0].Body, "Just a body.") {
		t.Fatalf("body lost: %q", items[0].Body)
	}
}

func TestReaderSkipsNonMarkdownEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	items, err := NewReader(dir, nil).ReadItems(context.Background())
	if err != nil {
		t.Fatalf("read vault: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestReaderMissingDirFails(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent"), nil).ReadItems(context.Background())
	if err == nil {
		t.Fatal("expected error for missing vault dir")
	}
}
