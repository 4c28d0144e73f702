package interfaces

import "context"

// Item is a single record lifted out of a content export. Fields default to
// the sentinel values declared by the reader when the source omits them; an
// Item is immutable once built.
type Item struct {
	// Title is the article headline, or "No Title" when the export omits it.
	Title string
	// Body is the rich content payload, or "" when the export omits it.
	Body string
	// Link is the article's canonical URL, or "No Link" when the export omits it.
	Link string
}

// SourceReader produces item records from a content source. Implementations
// must not fail on missing per-item fields; only an unreadable or unparsable
// source is an error. Zero items is a valid result.
type SourceReader interface {
	ReadItems(ctx context.Context) ([]Item, error)
}

// LinkExtractor scans body text for internal link candidates. Extraction is a
// pure filter over the input: it never invents links absent from the text and
// preserves scan order without deduplicating.
type LinkExtractor interface {
	Extract(body string) []string
}

// DiagramGenerator renders an article index into a textual node/edge diagram
// with stable per-article identifiers.
type DiagramGenerator interface {
	Generate() string
}
