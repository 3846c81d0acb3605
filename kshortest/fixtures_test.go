// SPDX-License-Identifier: MIT
package kshortest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rankpath/accumulator"
	"github.com/katalvlaran/rankpath/core"
	"github.com/katalvlaran/rankpath/kshortest"
)

const (
	costA = "costA"
	costB = "costB"
)

// fiveVertexGraph returns the V1..V5 graph whose edges carry costA and costB
// next to their weight.
func fiveVertexGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w, a, b  float64
	}{
		{"V1", "V2", 1, 1, 10},
		{"V2", "V4", 1, 1, 10},
		{"V4", "V5", 1, 1, 1},
		{"V1", "V3", 2, 5, 1},
		{"V3", "V4", 3, 1, 1},
		{"V3", "V5", 2, 5, 10},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w,
			core.WithEdgeAttr(costA, e.a),
			core.WithEdgeAttr(costB, e.b),
		)
		require.NoError(t, err)
	}

	return g
}

// attrSum returns a strict Sum over the named edge attribute.
func attrSum(key string, limit float64) *accumulator.Sum[float64, *core.Edge] {
	return accumulator.NewSum[float64, *core.Edge](func(e *core.Edge) float64 {
		return e.AttrOr(key, 0)
	}).Init(0, limit)
}

// costEngine returns an engine over fiveVertexGraph with the costA and costB
// limits registered.
func costEngine(t testing.TB, limitA, limitB float64, opts ...kshortest.Option) *kshortest.Engine[string, *core.Edge] {
	t.Helper()
	eng, err := kshortest.NewCoreEngine(fiveVertexGraph(t), opts...)
	require.NoError(t, err)
	require.NoError(t, eng.RegisterAccumulator(attrSum(costA, limitA)))
	require.NoError(t, eng.RegisterAccumulator(attrSum(costB, limitB)))

	return eng
}

// vertexLists extracts the vertex sequence of every path.
func vertexLists[V comparable, E any](paths []kshortest.Path[V, E]) [][]V {
	out := make([][]V, len(paths))
	for i, p := range paths {
		out[i] = p.Vertices
	}

	return out
}

// weights extracts the weight of every path.
func weights[V comparable, E any](paths []kshortest.Path[V, E]) []float64 {
	out := make([]float64, len(paths))
	for i, p := range paths {
		out[i] = p.Weight
	}

	return out
}
