// Package vault exports the article index as a folder of Markdown notes and
// reads such a folder back into item records.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-linkmap/internal/index"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// Writer materializes one note per article under a directory.
type Writer struct {
	dir    string
	logger interfaces.Logger
}

// NewWriter targets dir, creating it on the first Write call.
func NewWriter(dir string, logger interfaces.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Write renders every article as <slug>.md with YAML frontmatter carrying the
// title, canonical link, and outbound urls. The body lists targets that
// resolve back to articles as wiki style references. Existing notes with the
// same name are overwritten.
func (w *Writer) Write(idx *index.ArticleIndex) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("vault: create dir %s: %w", w.dir, err)
	}

	for _, title := range idx.Titles() {
		name := noteFilename(title)
		path := filepath.Join(w.dir, name)
		note := renderNote(idx, title)
		if err := os.WriteFile(path, []byte(note), 0o644); err != nil {
			return fmt.Errorf("vault: write note %s: %w", path, err)
		}
		if w.logger != nil {
			w.logger.Debug("vault.note.written", "article", title, "path", path)
		}
	}
	return nil
}

// noteFilename slugs the title into a filesystem safe note name. Titles that
// slug to nothing fall back to a fixed name so the note is not lost.
func noteFilename(title string) string {
	key, err := slug.Normalize(title)
	if err != nil || key == "" {
		key = "untitled"
	}
	return key + ".md"
}

func renderNote(idx *index.ArticleIndex, title string) string {
	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", quoteYAML(title))
	if link, ok := idx.CanonicalLink(title); ok {
		fmt.Fprintf(&b, "link: %s\n", quoteYAML(link))
	}
	links := idx.Links(title)
	if len(links) > 0 {
		b.WriteString("urls:\n")
		for _, link := range links {
			fmt.Fprintf(&b, "  - %s\n", quoteYAML(link))
		}
	}
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, link := range links {
		if target, ok := idx.TitleForLink(link); ok {
			fmt.Fprintf(&b, "- [[%s]]\n", target)
			continue
		}
		fmt.Fprintf(&b, "- %s\n", link)
	}
	return b.String()
}

// quoteYAML double quotes a scalar, escaping the characters that matter
// inside YAML double quoted strings.
func quoteYAML(value string) string {
	escaped := strings.ReplaceAll(value, "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
	return "\"" + escaped + "\""
}
