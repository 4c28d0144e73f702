package index

import (
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// Builder turns item records into an ArticleIndex by running the extractor
// over each item body.
type Builder struct {
	extractor interfaces.LinkExtractor
	logger    interfaces.Logger
}

// NewBuilder wires the extractor used for every item body.
func NewBuilder(extractor interfaces.LinkExtractor, logger interfaces.Logger) *Builder {
	return &Builder{extractor: extractor, logger: logger}
}

// Build indexes the supplied items in order. Duplicate titles or canonical
// links across items overwrite silently (last item wins); this mirrors the
// export format's assumption of unique titles and links.
func (b *Builder) Build(items []interfaces.Item) *ArticleIndex {
	idx := New()
	for _, item := range items {
		targets := b.extractor.Extract(item.Body)
		idx.Add(item.Title, item.Link, targets)
	}
	if b.logger != nil {
		b.logger.Debug("index.build.completed", "articles", idx.Len(), "links", idx.TotalLinks())
	}
	return idx
}
