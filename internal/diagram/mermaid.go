// Package diagram renders the article link structure as Mermaid text.
package diagram

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-linkmap/internal/index"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

const (
	// Header declares a top down directed diagram.
	Header = "graph TD;\n"

	// UnknownArticle is the placeholder title for link targets that do not
	// resolve to a known article.
	UnknownArticle = "Unknown Article"
)

// Mermaid generates the diagram for one article index. It satisfies
// interfaces.DiagramGenerator.
type Mermaid struct {
	index  *index.ArticleIndex
	logger interfaces.Logger
}

var _ interfaces.DiagramGenerator = (*Mermaid)(nil)

// NewMermaid binds a generator to idx; logger may be nil.
func NewMermaid(idx *index.ArticleIndex, logger interfaces.Logger) *Mermaid {
	return &Mermaid{index: idx, logger: logger}
}

// Generate assigns each title a stable id (A0, A1, ...) in enumeration order,
// then emits one edge statement per link whose resolved target is itself a
// known article. Targets missing from the link mapping resolve to the
// "Unknown Article" placeholder and are dropped unless an article carries
// that exact title. Re-running over the same index yields identical ids.
func (m *Mermaid) Generate() string {
	titles := m.index.Titles()

	ids := make(map[string]string, len(titles))
	for i, title := range titles {
		if _, exists := ids[title]; exists {
			continue
		}
		ids[title] = fmt.Sprintf("A%d", i)
	}

	var b strings.Builder
	b.WriteString(Header)

	emitted, dropped := 0, 0
	for _, title := range titles {
		sourceID := ids[title]
		for _, link := range m.index.Links(title) {
			target, ok := m.index.TitleForLink(link)
			if !ok {
				target = UnknownArticle
			}
			targetID, known := ids[target]
			if !known {
				dropped++
				continue
			}
			fmt.Fprintf(&b, "  %s[\"%s\"] --> %s[\"%s\"];\n", sourceID, title, targetID, target)
			emitted++
		}
	}

	if m.logger != nil {
		m.logger.Debug("diagram.generate.completed", "edges", emitted, "dropped", dropped)
	}
	return b.String()
}
