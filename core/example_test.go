// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/rankpath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	// 3) Inspect vertices and edges.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges.
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edge A→B exists? false
}

// ExampleEdge_Attr shows edge attributes that path accumulators read.
func ExampleEdge_Attr() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, _ := g.AddEdge("V1", "V3", 2,
		core.WithEdgeAttr("costA", 5),
		core.WithEdgeAttr("costB", 1),
	)
	e, _ := g.GetEdge(eid)

	a, _ := e.Attr("costA")
	fmt.Printf("%s→%s weight=%g costA=%g costB=%g\n", e.From, e.To, e.Weight, a, e.AttrOr("costB", 0))

	// Output:
	// V1→V3 weight=2 costA=5 costB=1
}
