// SPDX-License-Identifier: MIT

// Package accumulator defines the path-constraint protocol consumed by the
// kshortest ranking engine, together with a handful of ready-made constraints.
//
// Overview:
//
//   - An Accumulator tracks one quantity along a path (cumulative latency,
//     hop count, minimal bandwidth, labels seen, ...) and compares it with a
//     limit fixed at initialization.
//   - Before an edge is appended to a path the engine asks IsValid(edge). The
//     call is pure: it evaluates what the value would become without changing it.
//   - When every accumulator agrees, the engine forks each one with Copy and
//     advances the fork with Update(edge). The original is never touched, so
//     sibling branches of the search never share state.
//
// Lifecycle:
//
//  1. The caller builds a template and calls Init(value, limit) exactly once.
//  2. The template is registered on a kshortest.Engine.
//  3. The root of every search receives Copy() of the template.
//  4. Every extension receives Copy().Update(edge) of its predecessor's instance.
//
// Contract:
//
//   - IsValid(e) == true implies that a following Update(e) succeeds.
//   - Copy never aliases reference-valued state (sets, vectors).
//   - The limit never changes after Init; only Update changes the value.
//
// Ready-made accumulators:
//
//   - Sum:        running sum of a numeric edge property; valid while value+x < limit
//     (or <= with Inclusive).
//   - Hops:       edge counter; valid while value+1 <= limit.
//   - Bottleneck: running minimum of a numeric property; valid while the minimum
//     stays >= limit.
//   - Set:        labels collected along the path; rejects repeated labels and
//     labels from a forbidden set.
//   - Vector:     component-wise running sums with component-wise limits.
//   - Func:       fully user-defined step and check functions.
//
// Constructors panic on nil extractor functions; those are programmer errors,
// not data errors.
package accumulator
