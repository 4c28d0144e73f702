// Package wxr reads WordPress export (WXR) documents into item records.
package wxr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// ContentNamespace is the RSS content module namespace carrying the rendered
// article body in WXR exports.
const ContentNamespace = "http://purl.org/rss/1.0/modules/content/"

// Sentinel values substituted when an item omits a field. Missing fields are
// never an error; only an unreadable or unparsable document is.
const (
	DefaultTitle = "No Title"
	DefaultLink  = "No Link"
)

// Reader parses a WXR export file into item records.
type Reader struct {
	path   string
	logger interfaces.Logger
}

var _ interfaces.SourceReader = (*Reader)(nil)

// NewReader builds a reader for the export file at path.
func NewReader(path string, logger interfaces.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// ReadItems opens and parses the export. A missing or unparsable file is
// fatal; zero items is a valid, empty result.
func (r *Reader) ReadItems(ctx context.Context) ([]interfaces.Item, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("wxr: open export %s: %w", r.path, err)
	}
	defer f.Close()

	items, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if r.logger != nil {
		r.logger.Debug("wxr.read.completed", "path", r.path, "items", len(items))
	}
	return items, nil
}

// itemEnvelope mirrors the WXR item shape. Pointer fields distinguish a
// missing element from an empty one so defaults apply only when the element
// is absent.
type itemEnvelope struct {
	Title   *string `xml:"title"`
	Link    *string `xml:"link"`
	Encoded *string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
}

// Parse walks the document token stream and decodes every <item> element
// found anywhere in the tree. Missing per-item fields resolve to defaults.
func Parse(src io.Reader) ([]interfaces.Item, error) {
	dec := xml.NewDecoder(src)
	items := []interfaces.Item{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("wxr: parse export: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}

		var envelope itemEnvelope
		if err := dec.DecodeElement(&envelope, &start); err != nil {
			return nil, fmt.Errorf("wxr: decode item: %w", err)
		}
		items = append(items, envelope.item())
	}

	return items, nil
}

func (e itemEnvelope) item() interfaces.Item {
	item := interfaces.Item{
		Title: DefaultTitle,
		Link:  DefaultLink,
	}
	if e.Title != nil {
		item.Title = *e.Title
	}
	if e.Link != nil {
		item.Link = *e.Link
	}
	if e.Encoded != nil {
		item.Body = *e.Encoded
	}
	return item
}
