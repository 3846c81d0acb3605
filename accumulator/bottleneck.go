// SPDX-License-Identifier: MIT

package accumulator

// Bottleneck tracks the minimum of a numeric edge property along the path,
// such as the narrowest link bandwidth. An edge is admitted while the
// minimum, including the edge, stays at or above limit.
//
// Start it at a value no smaller than any edge property, e.g. math.Inf(1)
// or the largest capacity in the network.
type Bottleneck[N Number, E any] struct {
	value   N
	limit   N
	extract func(E) N
	guard   initGuard
}

// NewBottleneck returns an uninitialized Bottleneck reading edges with extract.
// Panics if extract is nil.
func NewBottleneck[N Number, E any](extract func(E) N) *Bottleneck[N, E] {
	if extract == nil {
		panic("accumulator: NewBottleneck requires a non-nil extract function")
	}

	return &Bottleneck[N, E]{extract: extract}
}

// Init sets the starting minimum and the floor, and returns the receiver.
func (b *Bottleneck[N, E]) Init(value, limit N) *Bottleneck[N, E] {
	b.guard.mark("Bottleneck")
	b.value, b.limit = value, limit

	return b
}

// Value returns the current minimum.
func (b *Bottleneck[N, E]) Value() N { return b.value }

// Limit returns the floor.
func (b *Bottleneck[N, E]) Limit() N { return b.limit }

// Copy implements Accumulator.
func (b *Bottleneck[N, E]) Copy() Accumulator[E] {
	return (&Bottleneck[N, E]{extract: b.extract}).Init(b.value, b.limit)
}

// Update implements Accumulator.
func (b *Bottleneck[N, E]) Update(edge E) Accumulator[E] {
	b.value = min(b.value, b.extract(edge))

	return b
}

// IsValid implements Accumulator.
func (b *Bottleneck[N, E]) IsValid(edge E) bool {
	return min(b.value, b.extract(edge)) >= b.limit
}
