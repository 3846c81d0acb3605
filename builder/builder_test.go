// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for the constructors in the
// builder package, verifying topology, counts, attribute draws and determinism.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankpath/builder"
	"github.com/katalvlaran/rankpath/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}
	return m
}

var weighted = []core.GraphOption{core.WithWeighted()}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gopts       []core.GraphOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			gopts: weighted,
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 5; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint((i+1)%5)
					w, ok := edges[edgeKey{from, to}]
					assert.True(t, ok, "missing %s→%s", from, to)
					assert.Equal(t, builder.DefaultEdgeWeight, w)
				}
			},
		},
		{
			name:  "Path(4)",
			gopts: weighted,
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 3; i++ {
					_, ok := edges[edgeKey{fmt.Sprint(i), fmt.Sprint(i + 1)}]
					assert.True(t, ok)
				}
			},
		},
		{
			name:  "Complete(4) undirected",
			gopts: weighted,
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
		},
		{
			name:  "Complete(4) directed",
			gopts: []core.GraphOption{core.WithWeighted(), core.WithDirected(true)},
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name:  "Grid(2,3)",
			gopts: nil,
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,2", "1,2"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
		{
			name:  "RandomSparse(5,1)",
			gopts: []core.GraphOption{core.WithDirected(true)},
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 20,
		},
		{
			name:  "RandomSparse(5,0)",
			gopts: nil,
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
		{
			name:  "Layered(3,2,1)",
			gopts: []core.GraphOption{core.WithDirected(true), core.WithWeighted()},
			ctor:  builder.Layered(3, 2, 1),
			// source + 6 + sink; 2 fan-out + 2·4 inter-layer + 2 fan-in
			wantV: 8, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("6", "7"))
				assert.False(t, g.HasEdge("7", "6"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks the sentinel errors of each constructor.
func TestBuilders_Errors(t *testing.T) {
	directed := []core.GraphOption{core.WithDirected(true)}
	tests := []struct {
		name  string
		gopts []core.GraphOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"Layered undirected", nil, builder.Layered(2, 2, 1), builder.ErrUnsupportedGraphMode},
		{"Layered no rng", directed, builder.Layered(2, 2, 0.3), builder.ErrNeedRandSource},
		{"Layered width 0", directed, builder.Layered(2, 0, 1), builder.ErrTooFewVertices},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuilders_AttributesAndLabels verifies every edge receives the configured
// attributes and a label from the pool.
func TestBuilders_AttributesAndLabels(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithIntWeight(1, 9),
			builder.WithAttr("latency", builder.UniformWeightFn(1, 5)),
			builder.WithAttr("cost", builder.ConstantWeightFn(2)),
			builder.WithLabels("red", "blue"),
		},
		builder.Layered(3, 3, 0.5),
	)
	require.NoError(t, err)

	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
		assert.Equal(t, e.Weight, float64(int(e.Weight)), "integral weight")

		lat, ok := e.Attr("latency")
		require.True(t, ok)
		assert.GreaterOrEqual(t, lat, 1.0)
		assert.Less(t, lat, 5.0)
		assert.Equal(t, 2.0, e.AttrOr("cost", 0))
		assert.Contains(t, []string{"red", "blue"}, e.Label)
	}
}

// TestBuilders_Deterministic ensures a fixed seed reproduces the same graph.
func TestBuilders_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
			[]builder.BuilderOption{
				builder.WithSeed(42),
				builder.WithUniformWeight(0, 10),
				builder.WithAttr("latency", builder.ExponentialWeightFn(0.5)),
			},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()

	ea, eb := a.Edges(), b.Edges()
	require.Equal(t, len(ea), len(eb))
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
		assert.Equal(t, ea[i].Weight, eb[i].Weight)
		assert.Equal(t, ea[i].Attrs(), eb[i].Attrs())
	}
}

// TestLayeredEnds checks the reported endpoints match the ID scheme.
func TestLayeredEnds(t *testing.T) {
	src, dst := builder.LayeredEnds(2, 3)
	assert.Equal(t, "0", src)
	assert.Equal(t, "7", dst)

	src, dst = builder.LayeredEnds(1, 1, builder.WithPrefixIDs("v"))
	assert.Equal(t, "v0", src)
	assert.Equal(t, "v2", dst)
}

// TestOptionPanics enforces fast-fail on meaningless option input.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithAttr("", builder.DefaultWeightFn) })
	assert.Panics(t, func() { builder.WithAttr("k", nil) })
	assert.Panics(t, func() { builder.WithLabels() })
	assert.Panics(t, func() { builder.PrefixIDFn("") })
}
