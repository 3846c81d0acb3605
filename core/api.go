// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after construction, so getters only take muVert.RLock.

package core

// NewMixedGraph creates a Graph that allows per-edge directedness overrides
// via WithEdgeDirected. WithMixedEdges is applied before the caller's options.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)) for the composed options slice.
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
// It does not scan existing edges; see Stats().DirectedEdgeCount for that.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes,
// including a classification of edges by their Directed flag.
//
// Implementation:
//   - Stage 1: Under muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Under muEdgeAdj.RLock, snapshot edge count and classify edges.
//
// The two phases never hold both locks at once. If the graph is mutated
// concurrently, each phase is internally consistent.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
