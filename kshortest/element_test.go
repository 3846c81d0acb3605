// SPDX-License-Identifier: MIT
package kshortest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankpath/accumulator"
	"github.com/katalvlaran/rankpath/core"
	"github.com/katalvlaran/rankpath/kshortest"
)

// TestElement_Lineage walks the lineage of the best V1→V5 element.
func TestElement_Lineage(t *testing.T) {
	eng := costEngine(t, 15, 30)
	elems, _, err := eng.FindKShortestElements(context.Background(), "V1", "V5", 3)
	require.NoError(t, err)
	require.Len(t, elems, 3)

	e := elems[0]
	assert.Equal(t, "V5", e.Vertex())
	assert.Equal(t, "V5", e.EndVertex())
	assert.Equal(t, "V1", e.StartVertex())
	assert.Equal(t, 3.0, e.Weight())
	assert.Equal(t, 3, e.Hops())
	assert.Equal(t, []string{"V1", "V2", "V4", "V5"}, e.VertexList())
	assert.True(t, e.Contains("V2"))
	assert.False(t, e.Contains("V3"))

	edges := e.EdgeList()
	require.Len(t, edges, 3)
	last, ok := e.Edge()
	require.True(t, ok)
	assert.Same(t, edges[2], last)

	root := e.Prev().Prev().Prev()
	require.NotNil(t, root)
	assert.Nil(t, root.Prev())
	_, ok = root.Edge()
	assert.False(t, ok)
	assert.Equal(t, 0.0, root.Weight())
	assert.Equal(t, []string{"V1"}, root.VertexList())
	assert.Empty(t, root.EdgeList())
}

// TestElement_SharedPrefix confirms sibling paths share their prefix element.
func TestElement_SharedPrefix(t *testing.T) {
	eng := costEngine(t, 15, 30)
	elems, _, err := eng.FindKShortestElements(context.Background(), "V1", "V5", 3)
	require.NoError(t, err)
	require.Len(t, elems, 3)

	// [V1,V3,V5] and [V1,V3,V4,V5] branch at V3.
	viaV3 := elems[1].Prev()
	assert.Equal(t, "V3", viaV3.Vertex())
	assert.Same(t, viaV3, elems[2].Prev().Prev())
}

// TestMaterialize_Idempotent calls the materializer repeatedly and mutates
// what it returned.
func TestMaterialize_Idempotent(t *testing.T) {
	eng := costEngine(t, 15, 30)
	elems, _, err := eng.FindKShortestElements(context.Background(), "V1", "V5", 1)
	require.NoError(t, err)
	require.Len(t, elems, 1)
	e := elems[0]

	first := kshortest.Materialize(e)
	first.Vertices[0] = "tampered"
	first.Accumulators[0].Update(e.EdgeList()[0])

	second := kshortest.Materialize(e)
	third := e.Path()
	assert.Equal(t, []string{"V1", "V2", "V4", "V5"}, second.Vertices)
	assert.Equal(t, second.Vertices, third.Vertices)
	assert.Equal(t, second.Edges, third.Edges)
	assert.Equal(t, second.Weight, third.Weight)

	sum := second.Accumulators[0].(*accumulator.Sum[float64, *core.Edge])
	assert.Equal(t, 3.0, sum.Value(), "earlier materialization must not leak back")

	assert.Equal(t, kshortest.Path[string, *core.Edge]{}, kshortest.Materialize[string, *core.Edge](nil))
}

// TestPath_Accessors covers the Path helpers on empty and non-empty paths.
func TestPath_Accessors(t *testing.T) {
	var zero kshortest.Path[string, int]
	_, ok := zero.Source()
	assert.False(t, ok)
	_, ok = zero.Target()
	assert.False(t, ok)
	assert.Equal(t, "[]", zero.String())
	assert.Equal(t, 0, zero.Hops())

	p := kshortest.Path[string, int]{Vertices: []string{"a", "b", "c"}, Edges: []int{1, 2}, Weight: 3}
	src, _ := p.Source()
	dst, _ := p.Target()
	assert.Equal(t, "a", src)
	assert.Equal(t, "c", dst)
	assert.Equal(t, "[(a : b), (b : c)]", p.String())
}

// hop is a custom edge type for the generic Static graph.
type hop struct {
	carrier string
	cost    int
}

// TestStatic_GenericEdges ranks over int vertices with a carrier Set and a hop
// budget.
func TestStatic_GenericEdges(t *testing.T) {
	g := kshortest.NewStatic[int, hop]().
		AddArc(1, 2, hop{"red", 1}, 1).
		AddArc(2, 4, hop{"red", 1}, 1).
		AddArc(1, 3, hop{"blue", 1}, 2).
		AddArc(3, 4, hop{"green", 1}, 2).
		AddArc(2, 3, hop{"green", 1}, 1).
		AddVertex(9)
	assert.Equal(t, []int{1, 2, 4, 3, 9}, g.Vertices())
	assert.True(t, g.HasVertex(9))
	assert.False(t, g.HasVertex(7))
	arcs, err := g.OutgoingEdges(7)
	require.NoError(t, err)
	assert.Empty(t, arcs)

	eng, err := kshortest.New[int, hop](g)
	require.NoError(t, err)
	carriers := accumulator.NewSet[string, hop](func(h hop) string { return h.carrier }).Init(nil, nil)
	require.NoError(t, eng.RegisterAccumulator(carriers))
	require.NoError(t, eng.RegisterAccumulator(accumulator.NewHops[hop]().Init(0, 2)))

	paths, err := eng.FindKShortestPaths(context.Background(), 1, 4, 5)
	require.NoError(t, err)
	// 1-2-4 reuses red; 1-2-3-4 has three hops.
	assert.Equal(t, [][]int{{1, 3, 4}}, vertexLists(paths))

	set := paths[0].Accumulators[0].(*accumulator.Set[string, hop])
	assert.Equal(t, []string{"blue", "green"}, set.Value())

	paths, err = eng.FindKShortestPaths(context.Background(), 1, 9, 5)
	require.NoError(t, err)
	assert.Empty(t, paths)
}
