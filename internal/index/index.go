// Package index aggregates per-article extracted links and the canonical
// link to title mapping used to resolve targets back to articles.
package index

import (
	"fmt"
	"sort"
	"strings"
)

// ArticleIndex maps article titles to their extracted internal links, keeping
// the title enumeration order stable across runs. Go maps iterate in random
// order, so the index tracks insertion order explicitly; re-adding an
// existing title overwrites its value but keeps the original position.
type ArticleIndex struct {
	titles      []string
	links       map[string][]string
	canonical   map[string]string
	linkToTitle map[string]string
}

// New returns an empty index.
func New() *ArticleIndex {
	return &ArticleIndex{
		titles:      []string{},
		links:       map[string][]string{},
		canonical:   map[string]string{},
		linkToTitle: map[string]string{},
	}
}

// Add records an article with its canonical link and extracted targets.
// Title and link collisions overwrite silently, last write wins.
func (x *ArticleIndex) Add(title, canonicalLink string, targets []string) {
	if _, exists := x.links[title]; !exists {
		x.titles = append(x.titles, title)
	}
	x.links[title] = append([]string(nil), targets...)
	x.canonical[title] = canonicalLink
	x.linkToTitle[canonicalLink] = title
}

// Titles returns the article titles in enumeration order.
func (x *ArticleIndex) Titles() []string {
	return append([]string(nil), x.titles...)
}

// Links returns the extracted targets recorded for title.
func (x *ArticleIndex) Links(title string) []string {
	return append([]string(nil), x.links[title]...)
}

// CanonicalLink returns the canonical URL recorded for title.
func (x *ArticleIndex) CanonicalLink(title string) (string, bool) {
	link, ok := x.canonical[title]
	return link, ok
}

// TitleForLink resolves a canonical link back to its article title.
func (x *ArticleIndex) TitleForLink(link string) (string, bool) {
	title, ok := x.linkToTitle[link]
	return title, ok
}

// Len reports the number of distinct article titles.
func (x *ArticleIndex) Len() int {
	return len(x.titles)
}

// TotalLinks reports the number of recorded targets across all articles.
func (x *ArticleIndex) TotalLinks() int {
	total := 0
	for _, targets := range x.links {
		total += len(targets)
	}
	return total
}

// Dedupe returns a copy with per-article duplicate targets removed. The
// set-based pass discards scan order; targets are re-sorted lexically so the
// result stays deterministic.
func (x *ArticleIndex) Dedupe() *ArticleIndex {
	out := New()
	for _, title := range x.titles {
		seen := map[string]struct{}{}
		unique := []string{}
		for _, target := range x.links[title] {
			if _, ok := seen[target]; ok {
				continue
			}
			seen[target] = struct{}{}
			unique = append(unique, target)
		}
		sort.Strings(unique)
		out.Add(title, x.canonical[title], unique)
	}
	return out
}

// DebugDump renders the raw title to link-list mapping for inspection.
func (x *ArticleIndex) DebugDump() string {
	var b strings.Builder
	for _, title := range x.titles {
		fmt.Fprintf(&b, "%s -> %v\n", title, x.links[title])
	}
	return b.String()
}
