// SPDX-License-Identifier: MIT
//
// File: element.go
// Role: Element, the immutable node of a path lineage, and its discovery key.

package kshortest

import "github.com/katalvlaran/rankpath/accumulator"

// discoveryKey orders elements of equal weight. pass is the relaxation pass
// that created the element, ordinal the parent's position in that pass's
// frontier and arc the index of the arc in the parent's outgoing list.
// None of the three depend on goroutine scheduling.
type discoveryKey struct {
	pass    int
	ordinal int
	arc     int
}

func (k discoveryKey) less(o discoveryKey) bool {
	if k.pass != o.pass {
		return k.pass < o.pass
	}
	if k.ordinal != o.ordinal {
		return k.ordinal < o.ordinal
	}

	return k.arc < o.arc
}

// Element is one (vertex, accumulated state) pair reached by a specific
// lineage. Elements are never mutated after construction and may be shared
// by any number of descendants.
type Element[V comparable, E any] struct {
	vertex  V
	idx     int
	prev    *Element[V, E]
	edge    E
	hasEdge bool
	weight  float64
	hops    int
	accs    []accumulator.Accumulator[E]
	key     discoveryKey
}

// newRoot returns the zero-weight element at vertex, holding a Copy of each
// template.
func newRoot[V comparable, E any](vertex V, idx int, templates []accumulator.Accumulator[E]) *Element[V, E] {
	return &Element[V, E]{
		vertex: vertex,
		idx:    idx,
		accs:   accumulator.CopyAll(templates),
	}
}

// extend returns the element reached from prev over arc. The caller must have
// checked accumulator.AllValid(prev.accs, arc.Edge).
func extend[V comparable, E any](prev *Element[V, E], arc Arc[V, E], idx int, key discoveryKey) *Element[V, E] {
	return &Element[V, E]{
		vertex:  arc.To,
		idx:     idx,
		prev:    prev,
		edge:    arc.Edge,
		hasEdge: true,
		weight:  prev.weight + arc.Weight,
		hops:    prev.hops + 1,
		accs:    accumulator.Fork(prev.accs, arc.Edge),
		key:     key,
	}
}

// precedes reports whether (weight, key) ranks before e.
func (e *Element[V, E]) precedes(weight float64, key discoveryKey) bool {
	if weight != e.weight {
		return weight < e.weight
	}

	return key.less(e.key)
}

// Vertex returns the vertex this element sits on.
func (e *Element[V, E]) Vertex() V { return e.vertex }

// EndVertex is an alias of Vertex.
func (e *Element[V, E]) EndVertex() V { return e.vertex }

// Prev returns the predecessor, or nil at the root.
func (e *Element[V, E]) Prev() *Element[V, E] { return e.prev }

// Edge returns the edge that reached this element; ok is false at the root.
func (e *Element[V, E]) Edge() (edge E, ok bool) { return e.edge, e.hasEdge }

// Weight returns the sum of edge weights along the lineage.
func (e *Element[V, E]) Weight() float64 { return e.weight }

// Hops returns the number of edges along the lineage.
func (e *Element[V, E]) Hops() int { return e.hops }

// StartVertex returns the vertex of the lineage root.
func (e *Element[V, E]) StartVertex() V {
	for e.prev != nil {
		e = e.prev
	}

	return e.vertex
}

// EdgeList returns the lineage edges in source→target order.
func (e *Element[V, E]) EdgeList() []E {
	out := make([]E, e.hops)
	for cur, i := e, e.hops-1; cur.prev != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.edge
	}

	return out
}

// VertexList returns the lineage vertices in source→target order.
func (e *Element[V, E]) VertexList() []V {
	out := make([]V, e.hops+1)
	for cur, i := e, e.hops; cur != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.vertex
	}

	return out
}

// Contains reports whether v appears anywhere on the lineage.
func (e *Element[V, E]) Contains(v V) bool {
	for cur := e; cur != nil; cur = cur.prev {
		if cur.vertex == v {
			return true
		}
	}

	return false
}

// Accumulators returns copies of the accumulator states at this element, in
// registration order. Mutating them does not affect the element.
func (e *Element[V, E]) Accumulators() []accumulator.Accumulator[E] {
	return accumulator.CopyAll(e.accs)
}

// Path materializes the lineage. See Materialize.
func (e *Element[V, E]) Path() Path[V, E] { return Materialize(e) }
