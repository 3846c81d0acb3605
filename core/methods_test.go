// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration flags, vertex/edge
// lifecycle, edge attributes and deterministic neighborhood ordering.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankpath/core"
)

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	assert.False(t, g.Directed(), "default must be undirected")
	assert.True(t, g.Weighted())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())
	assert.False(t, g.MixedEdges())

	dg := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, dg.Directed())
	assert.True(t, dg.Looped())
	assert.True(t, dg.Multigraph())

	mg := core.NewMixedGraph()
	assert.True(t, mg.MixedEdges())
}

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "AddVertex must be idempotent")
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())

	v, err := g.GetVertex("A")
	require.NoError(t, err)
	assert.Equal(t, "A", v.ID)
	_, err = g.GetVertex("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		from string
		to   string
		w    float64
		opts []core.EdgeOption
		want error
	}{
		{"empty from", core.NewGraph(), "", "B", 0, nil, core.ErrEmptyVertexID},
		{"weight on unweighted", core.NewGraph(), "A", "B", 1.5, nil, core.ErrBadWeight},
		{"loop disabled", core.NewGraph(), "A", "A", 0, nil, core.ErrLoopNotAllowed},
		{"direction override without mixed", core.NewGraph(), "A", "B", 0,
			[]core.EdgeOption{core.WithEdgeDirected(true)}, core.ErrMixedEdgesNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.g.AddEdge(tc.from, tc.to, tc.w, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGraph_MultiEdgePolicy(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Reverse direction is a different directed edge.
	_, err = g.AddEdge("B", "A", 0)
	require.NoError(t, err)

	mg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err = mg.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = mg.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, mg.EdgeCount())
}

func TestGraph_EdgeLabelsAndAttrs(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("V1", "V2", 1,
		core.WithEdgeLabel("fiber"),
		core.WithEdgeAttr("latency", 3),
		core.WithEdgeAttrs(map[string]float64{"cost": 10, "latency": 4}),
	)
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, "fiber", e.Label)

	lat, ok := e.Attr("latency")
	require.True(t, ok)
	assert.Equal(t, 4.0, lat, "later option must win")
	assert.Equal(t, 10.0, e.AttrOr("cost", 0))
	assert.Equal(t, -1.0, e.AttrOr("missing", -1))

	attrs := e.Attrs()
	attrs["cost"] = 99
	assert.Equal(t, 10.0, e.AttrOr("cost", 0), "Attrs must return a copy")

	_, err = g.GetEdge("e404")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_NeighborsInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	// More than nine edges so that lexicographic ID order ("e10" < "e2") would differ.
	targets := []string{"K", "J", "I", "H", "G", "F", "E", "D", "C", "B", "A"}
	for i, to := range targets {
		_, err := g.AddEdge("S", to, float64(i))
		require.NoError(t, err)
	}
	_, err := g.AddEdge("A", "S", 1)
	require.NoError(t, err)

	nbs, err := g.Neighbors("S")
	require.NoError(t, err)
	require.Len(t, nbs, len(targets))
	for i, e := range nbs {
		assert.Equal(t, targets[i], e.To)
		assert.Equal(t, targets[i], e.Opposite("S"))
	}

	ids, err := g.NeighborIDs("S")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}, ids)

	in, err := g.InNeighborIDs("S")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, in)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.InNeighborIDs("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_UndirectedAndMixed(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1, core.WithEdgeDirected(true))
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "undirected edge is mirrored")
	assert.True(t, g.HasEdge("B", "C"))
	assert.False(t, g.HasEdge("C", "B"), "directed override is one-way")

	nbs, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Equal(t, "A", nbs[0].Opposite("B"))
	assert.Equal(t, "C", nbs[1].Opposite("B"))

	nbs, err = g.Neighbors("C")
	require.NoError(t, err)
	assert.Empty(t, nbs)

	stats := g.Stats()
	assert.Equal(t, 3, stats.VertexCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 1, stats.DirectedEdgeCount)
	assert.Equal(t, 1, stats.UndirectedEdgeCount)
	assert.True(t, stats.MixedMode)
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	e1, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))

	require.NoError(t, g.RemoveVertex("C"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestGraph_FilterEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i, to := range []string{"B", "C", "D"} {
		_, err := g.AddEdge("A", to, float64(i+1))
		require.NoError(t, err)
	}
	g.FilterEdges(func(e *core.Edge) bool { return e.Weight >= 2 })

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "C", edges[0].To)
	assert.Equal(t, "D", edges[1].To)
}
