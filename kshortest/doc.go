// SPDX-License-Identifier: MIT

// Package kshortest ranks the K lowest-weight simple paths between two
// vertices of a weighted directed graph, under any number of path-accumulated
// constraints.
//
// What:
//
//   - A path is a persistent lineage of immutable Elements. Every Element
//     points at its predecessor, so sibling branches share their prefix.
//   - Each Element carries one accumulator per registered template
//     (package accumulator). Extending an Element along an edge forks every
//     accumulator with Copy().Update(edge); templates are never mutated.
//   - Each vertex holds a ranked list of at most K Elements ordered by
//     (weight, discovery key). A candidate that does not precede the worst
//     entry of a full list is rejected before its accumulators are forked.
//
// How:
//
//	1. Validate k, source and target; snapshot the graph into a dense index.
//	2. Walk the reverse graph from the target (package bfs) to learn which
//	   vertices can still reach it and in how many hops.
//	3. Seed the source with a root Element; the frontier is {root}.
//	4. Each pass expands the Elements created by the previous pass that are
//	   still ranked at their vertex. An arc is pruned when its head is already
//	   on the lineage, cannot reach the target, would exceed MaxHops, or is
//	   refused by an accumulator; otherwise the extension is offered to the
//	   head's ranked list.
//	5. Stop when a pass creates nothing new or the pass bound is reached,
//	   then materialize the target's list.
//
// Pass bound:
//
//	Simple paths have at most |V|-1 edges and pass t only creates Elements
//	with t edges, so |V|-1 passes are exhaustive for the ranked lists. The
//	bound shrinks to MaxHops when set. MaxPasses trims it further; Stats
//	reports Truncated when that cut left work undone.
//
// Eviction:
//
//	A ranked list keeps only its K best prefixes. Under simplicity and
//	accumulator pruning an evicted prefix can be the only one that would
//	have completed to the target, so results are exact for the ranked
//	lists the engine keeps, not for all simple paths. Raise k to widen the
//	lists when constraints are tight.
//
// Concurrency:
//
//	FindKShortestPaths may be called concurrently on one Engine. Within a
//	search, WithParallelism(n) expands frontier Elements on up to n
//	goroutines; merges into a vertex list hold that vertex's mutex. Discovery
//	keys depend only on the previous pass, so parallel and sequential runs
//	return identical paths.
//
// Errors:
//
//	ErrNilGraph, ErrInvalidArgument (k ≤ 0, bad options, nil or late
//	accumulator registration), ErrInvalidVertex, ErrGraphAccess and wrapped
//	context errors. No partial results are returned on error; an unreachable
//	target yields an empty slice.
//
// Observability:
//
//	Every search gets a UUID, a span, structured log records and the
//	kshortest_* OpenTelemetry instruments.
package kshortest
