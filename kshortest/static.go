// SPDX-License-Identifier: MIT

package kshortest

// Static is an in-memory Graph for arbitrary vertex and edge types.
// Vertices keep their first-seen order; arcs keep insertion order.
// Build it completely before searching; it is not safe for concurrent writes.
type Static[V comparable, E any] struct {
	order []V
	out   map[V][]Arc[V, E]
}

// NewStatic returns an empty Static graph.
func NewStatic[V comparable, E any]() *Static[V, E] {
	return &Static[V, E]{out: make(map[V][]Arc[V, E])}
}

// AddVertex adds v if absent and returns the receiver.
func (s *Static[V, E]) AddVertex(v V) *Static[V, E] {
	if _, ok := s.out[v]; !ok {
		s.out[v] = nil
		s.order = append(s.order, v)
	}

	return s
}

// AddArc adds a directed arc from→to, adding both endpoints if needed, and
// returns the receiver.
func (s *Static[V, E]) AddArc(from, to V, edge E, weight float64) *Static[V, E] {
	s.AddVertex(from).AddVertex(to)
	s.out[from] = append(s.out[from], Arc[V, E]{Edge: edge, To: to, Weight: weight})

	return s
}

// Vertices implements Graph.
func (s *Static[V, E]) Vertices() []V {
	out := make([]V, len(s.order))
	copy(out, s.order)

	return out
}

// HasVertex implements Graph.
func (s *Static[V, E]) HasVertex(v V) bool {
	_, ok := s.out[v]

	return ok
}

// OutgoingEdges implements Graph. Unknown vertices have no arcs.
func (s *Static[V, E]) OutgoingEdges(v V) ([]Arc[V, E], error) {
	arcs := s.out[v]
	out := make([]Arc[V, E], len(arcs))
	copy(out, arcs)

	return out, nil
}
