// Package graph builds the directed internal-link graph exported to the
// interactive viewer.
package graph

import (
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-linkmap/internal/identity"
)

// Node types. An article node is never demoted to url even when the same
// label later appears as a raw link target.
const (
	NodeTypeArticle = "article"
	NodeTypeURL     = "url"
)

// Node is a vertex in the link graph. Degree counts are exported so the
// viewer can size and color markers without re-walking the edge list.
type Node struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	InDegree  int       `json:"in_degree"`
	OutDegree int       `json:"out_degree"`
	Degree    int       `json:"degree"`
}

// Edge is a directed article to target link.
type Edge struct {
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
}

// Stats summarizes the graph for the viewer header.
type Stats struct {
	Articles int `json:"articles"`
	URLs     int `json:"urls"`
	Nodes    int `json:"nodes"`
	Edges    int `json:"edges"`
}

// Document is the JSON export consumed by the viewer.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats Stats  `json:"stats"`
}

func newNode(label, nodeType string) Node {
	key, err := slug.Normalize(label)
	if err != nil || key == "" {
		key = label
	}
	return Node{
		ID:    identity.NodeUUID(label),
		Key:   key,
		Label: label,
		Type:  nodeType,
	}
}
