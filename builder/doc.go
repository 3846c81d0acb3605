// SPDX-License-Identifier: MIT

// Package builder provides deterministic graph constructors in the
// functional-options style, used to produce fixtures for ranking searches:
// reproducible topologies whose edges carry weights, numeric attributes and
// labels drawn from seeded distributions.
//
// Key components:
//
//   - Constructor: func(g *core.Graph, cfg builderConfig) error, composed by
//     BuildGraph(gopts, bopts, cons...).
//   - Topologies: Path, Cycle, Complete, Grid, RandomSparse, Layered.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",...) and
//     PrefixIDFn(prefix) ("v0","v1",...). Grid always uses GridID ("r,c").
//   - Value distributions (WeightFn): Constant, Uniform, Normal, Exponential.
//     The same type feeds edge weights (WithWeightFn) and edge attributes
//     (WithAttr), so an accumulator can read e.g. a "latency" attribute whose
//     distribution differs from the ranking weight.
//   - Labels: WithLabels picks one label per edge from a fixed set.
//
// Determinism:
//
//   - Vertices are added in index order; edges are emitted in a documented,
//     stable order per constructor.
//   - For every edge the weight is drawn first, then attributes in
//     registration order, then the label. A fixed seed therefore reproduces
//     the exact same graph.
//
// Errors:
//
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrUnsupportedGraphMode,
//     ErrConstructFailed) wrapped with method context; use errors.Is.
//   - Option constructors (WithX) panic on meaningless input; that is a
//     programmer error, not a runtime condition.
package builder
