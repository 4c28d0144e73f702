// Package links scans article bodies for internal link candidates.
package links

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// urlPattern is a permissive, non-RFC URL scan kept verbatim for
// compatibility: the `$-_` character range and percent-escape alternation are
// load-bearing. It under-matches URLs with characters outside the class and
// over-matches trailing punctuation; replacing it with a stricter tokenizer
// would silently change which links are found.
var urlPattern = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*(),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

// DefaultMediaExtensions lists the media suffixes excluded from extraction.
func DefaultMediaExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".mp4"}
}

// DefaultAffiliateMarker is the path fragment identifying affiliate redirects.
const DefaultAffiliateMarker = "empfiehlt"

// Options classifies scanned candidates. Comparisons are literal and
// case-sensitive: a URL is internal when it contains Domain as a substring,
// does not end with a media extension, and does not contain AffiliateMarker.
type Options struct {
	Domain          string
	MediaExtensions []string
	AffiliateMarker string
}

// Extractor filters body text down to internal link targets.
type Extractor struct {
	opts   Options
	logger interfaces.Logger
}

var _ interfaces.LinkExtractor = (*Extractor)(nil)

// NewExtractor builds an extractor for the supplied options. Zero-value
// media extensions fall back to the defaults; an empty affiliate marker
// disables that exclusion.
func NewExtractor(opts Options, logger interfaces.Logger) *Extractor {
	if opts.MediaExtensions == nil {
		opts.MediaExtensions = DefaultMediaExtensions()
	}
	return &Extractor{opts: opts, logger: logger}
}

// Extract returns internal link targets in scan order. Extraction is a pure
// filter: no dedup, no normalization, never a link absent from the text.
func (e *Extractor) Extract(body string) []string {
	candidates := urlPattern.FindAllString(body, -1)
	internal := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if !e.isInternal(candidate) {
			continue
		}
		internal = append(internal, candidate)
	}
	if e.logger != nil && len(internal) > 0 {
		e.logger.Trace("links.extract.matched", "candidates", len(candidates), "internal", len(internal))
	}
	return internal
}

func (e *Extractor) isInternal(url string) bool {
	if !strings.Contains(url, e.opts.Domain) {
		return false
	}
	for _, ext := range e.opts.MediaExtensions {
		if strings.HasSuffix(url, ext) {
			return false
		}
	}
	if e.opts.AffiliateMarker != "" && strings.Contains(url, e.opts.AffiliateMarker) {
		return false
	}
	return true
}
