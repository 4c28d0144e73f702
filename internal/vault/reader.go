package vault

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// Reader loads a vault directory back into item records so an exported vault
// can be fed through the extraction pipeline again.
type Reader struct {
	dir    string
	logger interfaces.Logger
}

var _ interfaces.SourceReader = (*Reader)(nil)

// NewReader targets an existing vault directory.
func NewReader(dir string, logger interfaces.Logger) *Reader {
	return &Reader{dir: dir, logger: logger}
}

type noteEnvelope struct {
	Title string   `yaml:"title"`
	Link  string   `yaml:"link"`
	URLs  []string `yaml:"urls"`
}

// ReadItems parses every .md note in the directory, in filename order, into
// an item record. Frontmatter supplies title and canonical link; the note
// body becomes the item body. Notes without frontmatter fields fall back to
// the usual sentinels.
func (r *Reader) ReadItems(ctx context.Context) ([]interfaces.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("vault: read dir %s: %w", r.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	items := make([]interfaces.Item, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(r.dir, name)
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("vault: read note %s: %w", path, err)
		}
		item, err := parseNote(source)
		if err != nil {
			return nil, fmt.Errorf("vault: parse note %s: %w", path, err)
		}
		items = append(items, item)
	}

	if r.logger != nil {
		r.logger.Debug("vault.read.completed", "notes", len(items))
	}
	return items, nil
}

func parseNote(source []byte) (interfaces.Item, error) {
	var meta noteEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.Item{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	item := interfaces.Item{
		Title: strings.TrimSpace(meta.Title),
		Link:  strings.TrimSpace(meta.Link),
		Body:  string(body),
	}
	if item.Title == "" {
		item.Title = "No Title"
	}
	if item.Link == "" {
		item.Link = "No Link"
	}
	return item, nil
}
