// Package rankpath ranks the K lowest-weight simple paths between two
// vertices of a weighted directed graph while enforcing any number of
// path-accumulated resource constraints.
//
// What is rankpath?
//
//	A thread-safe graph toolkit built around one engine:
//		• kshortest: bounded K-best relaxation with per-branch accumulators
//		• accumulator: Sum, Hops, Bottleneck, Set, Vector and user-defined Func limits
//		• visited: interchangeable lineage membership sets (bitset, array, list, hashset)
//		• core: in-memory graph with float64 weights, edge attributes and labels
//		• bfs: breadth-first reachability used to prune dead ends
//		• builder: seeded graph constructors for tests and benchmarks
//		• config: YAML/TOML search settings turned into a ready engine
//
// Every search is traced and measured through OpenTelemetry and logged with
// log/slog; pass a provider or logger as an engine option to collect them.
//
// Packages:
//
//	accumulator/ — path-accumulated constraint protocol and stock accumulators
//	bfs/         — generic breadth-first walk over an adjacency function
//	builder/     — Path, Cycle, Complete, Grid, RandomSparse, Layered constructors
//	config/      — search configuration loading and validation
//	core/        — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	kshortest/   — Engine, Element lineages, Path materialization
//	visited/     — visited-set strategies
//
// Quick ASCII example:
//
//	      [V2]
//	   1 /    \ 1
//	 [V1]      [V4]──1──[V5]
//	   2 \    / 3       /
//	      [V3]────2────
//
//	with costA < 15 and costB < 30 ranks V1→V2→V4→V5 (3), V1→V3→V5 (4) and
//	V1→V3→V4→V5 (6).
//
//	go get github.com/katalvlaran/rankpath
package rankpath
