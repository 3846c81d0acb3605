// SPDX-License-Identifier: MIT

package kshortest

import (
	"github.com/katalvlaran/rankpath/core"
)

// CoreGraph adapts a *core.Graph to Graph[string, *core.Edge].
//
// Directed edges are followed From→To; undirected edges both ways. Vertices
// are listed in lexicographic order and arcs in edge insertion order, so
// searches over the same graph are reproducible.
type CoreGraph struct {
	g *core.Graph
}

// NewCoreGraph wraps g. A nil g yields a nil adapter, which New rejects.
func NewCoreGraph(g *core.Graph) *CoreGraph {
	if g == nil {
		return nil
	}

	return &CoreGraph{g: g}
}

// NewCoreEngine is New over NewCoreGraph(g).
func NewCoreEngine(g *core.Graph, opts ...Option) (*Engine[string, *core.Edge], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return New[string, *core.Edge](NewCoreGraph(g), opts...)
}

// Vertices implements Graph.
func (c *CoreGraph) Vertices() []string { return c.g.Vertices() }

// HasVertex implements Graph.
func (c *CoreGraph) HasVertex(id string) bool { return c.g.HasVertex(id) }

// OutgoingEdges implements Graph.
func (c *CoreGraph) OutgoingEdges(id string) ([]Arc[string, *core.Edge], error) {
	edges, err := c.g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	arcs := make([]Arc[string, *core.Edge], len(edges))
	for i, e := range edges {
		arcs[i] = Arc[string, *core.Edge]{Edge: e, To: e.Opposite(id), Weight: e.Weight}
	}

	return arcs, nil
}
