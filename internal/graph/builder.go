package graph

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-linkmap/internal/index"
	"github.com/goliatone/go-linkmap/pkg/interfaces"
)

// Builder assembles a Graph from an article index.
type Builder struct {
	logger interfaces.Logger
}

// NewBuilder returns a graph builder; logger may be nil.
func NewBuilder(logger interfaces.Logger) *Builder {
	return &Builder{logger: logger}
}

// Graph is a directed graph with typed nodes. Parallel edges between the same
// ordered pair collapse into one; self loops are allowed.
type Graph struct {
	order []uuid.UUID
	nodes map[uuid.UUID]*Node
	edges []Edge
	seen  map[[2]uuid.UUID]struct{}
}

func newGraph() *Graph {
	return &Graph{
		nodes: map[uuid.UUID]*Node{},
		seen:  map[[2]uuid.UUID]struct{}{},
	}
}

// ensureNode registers label with the given type. A node that already exists
// as an article keeps its type; a url node is upgraded when the same label is
// later registered as an article.
func (g *Graph) ensureNode(label, nodeType string) uuid.UUID {
	node := newNode(label, nodeType)
	if existing, ok := g.nodes[node.ID]; ok {
		if nodeType == NodeTypeArticle && existing.Type == NodeTypeURL {
			existing.Type = NodeTypeArticle
		}
		return node.ID
	}
	g.nodes[node.ID] = &node
	g.order = append(g.order, node.ID)
	return node.ID
}

// addEdge records a directed edge, collapsing duplicates.
func (g *Graph) addEdge(source, target uuid.UUID) {
	key := [2]uuid.UUID{source, target}
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.edges = append(g.edges, Edge{Source: source, Target: target})
	g.nodes[source].OutDegree++
	g.nodes[target].InDegree++
}

// Build walks the index in title order: one article node per title, one url
// node per extracted target, one edge per distinct ordered pair. Targets stay
// as raw url nodes; resolving them back to articles is the diagram's job.
func (b *Builder) Build(idx *index.ArticleIndex) *Graph {
	g := newGraph()

	for _, title := range idx.Titles() {
		g.ensureNode(title, NodeTypeArticle)
	}

	for _, title := range idx.Titles() {
		source := g.ensureNode(title, NodeTypeArticle)
		for _, target := range idx.Links(title) {
			g.addEdge(source, g.ensureNode(target, NodeTypeURL))
		}
	}

	if b.logger != nil {
		b.logger.Debug("graph.build.completed", "nodes", len(g.order), "edges", len(g.edges))
	}
	return g
}

// Nodes returns the vertices in insertion order with degree totals filled in.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		node := *g.nodes[id]
		node.Degree = node.InDegree + node.OutDegree
		out = append(out, node)
	}
	return out
}

// Edges returns the directed edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Document assembles the viewer export with summary stats.
func (g *Graph) Document() Document {
	nodes := g.Nodes()
	stats := Stats{Nodes: len(nodes), Edges: len(g.edges)}
	for _, node := range nodes {
		switch node.Type {
		case NodeTypeArticle:
			stats.Articles++
		case NodeTypeURL:
			stats.URLs++
		}
	}
	return Document{Nodes: nodes, Edges: g.Edges(), Stats: stats}
}
