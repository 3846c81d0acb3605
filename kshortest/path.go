// SPDX-License-Identifier: MIT

package kshortest

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rankpath/accumulator"
)

// Path is a materialized lineage: vertices and edges in source→target order,
// the total weight and the accumulator states after the last edge.
type Path[V comparable, E any] struct {
	Vertices     []V
	Edges        []E
	Weight       float64
	Accumulators []accumulator.Accumulator[E]
}

// Materialize flattens e's lineage. It never mutates e, so repeated calls
// return equal paths. A nil element yields the zero Path.
func Materialize[V comparable, E any](e *Element[V, E]) Path[V, E] {
	if e == nil {
		return Path[V, E]{}
	}

	return Path[V, E]{
		Vertices:     e.VertexList(),
		Edges:        e.EdgeList(),
		Weight:       e.weight,
		Accumulators: e.Accumulators(),
	}
}

// Hops returns the number of edges.
func (p Path[V, E]) Hops() int { return len(p.Edges) }

// Source returns the first vertex; ok is false for the zero Path.
func (p Path[V, E]) Source() (v V, ok bool) {
	if len(p.Vertices) == 0 {
		return v, false
	}

	return p.Vertices[0], true
}

// Target returns the last vertex; ok is false for the zero Path.
func (p Path[V, E]) Target() (v V, ok bool) {
	if len(p.Vertices) == 0 {
		return v, false
	}

	return p.Vertices[len(p.Vertices)-1], true
}

// String renders the path as its vertex pairs, e.g. "[(V1 : V2), (V2 : V4)]".
func (p Path[V, E]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 1; i < len(p.Vertices); i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%v : %v)", p.Vertices[i-1], p.Vertices[i])
	}
	b.WriteByte(']')

	return b.String()
}
