// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory graph that the rankpath
// search engines consume.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in "mixed" graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted), weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-edge labels and numeric attributes (WithEdgeLabel, WithEdgeAttr)
//     which path accumulators read when checking resource constraints
//
// Storage layout:
//
//	adjacencyList[from][to][edgeID] = struct{}{}
//
// Edge IDs are generated atomically ("e1", "e2", ...). Every edge also carries
// an insertion sequence number; Neighbors and Edges are ordered by it, so the
// iteration order of a graph is exactly the order in which it was built.
//
// Locking:
//
//	muVert    guards the vertex catalog and configuration flags
//	muEdgeAdj guards the edge catalog and adjacency
//
// Lock order is always muVert -> muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID        - zero-length vertex ID
//	ErrVertexNotFound       - missing vertex
//	ErrEdgeNotFound         - missing edge
//	ErrBadWeight            - non-zero weight on unweighted graph
//	ErrLoopNotAllowed       - self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed - per-edge direction override without mixed-mode
package core
