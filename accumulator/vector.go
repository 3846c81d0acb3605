// SPDX-License-Identifier: MIT

package accumulator

// Vector tracks several running sums at once, one per component, each with
// its own strict limit. It is the list-valued counterpart of Sum, useful when
// a single edge property vector (cost, latency, energy, ...) must stay under
// a per-component budget.
//
// An edge whose extracted vector has a different length than the limit is
// rejected.
type Vector[N Number, E any] struct {
	value   []N
	limit   []N
	extract func(E) []N
	guard   initGuard
}

// NewVector returns an uninitialized Vector reading edge vectors with extract.
// Panics if extract is nil.
func NewVector[N Number, E any](extract func(E) []N) *Vector[N, E] {
	if extract == nil {
		panic("accumulator: NewVector requires a non-nil extract function")
	}

	return &Vector[N, E]{extract: extract}
}

// Init copies the starting vector and the limit vector, and returns the receiver.
// A nil value starts every component at zero.
func (v *Vector[N, E]) Init(value, limit []N) *Vector[N, E] {
	v.guard.mark("Vector")
	v.limit = append([]N(nil), limit...)
	v.value = make([]N, len(limit))
	copy(v.value, value)

	return v
}

// Value returns a copy of the current sums.
func (v *Vector[N, E]) Value() []N { return append([]N(nil), v.value...) }

// Limit returns a copy of the limits.
func (v *Vector[N, E]) Limit() []N { return append([]N(nil), v.limit...) }

// Copy implements Accumulator.
func (v *Vector[N, E]) Copy() Accumulator[E] {
	return (&Vector[N, E]{extract: v.extract}).Init(v.value, v.limit)
}

// Update implements Accumulator.
func (v *Vector[N, E]) Update(edge E) Accumulator[E] {
	x := v.extract(edge)
	for i := range v.value {
		if i < len(x) {
			v.value[i] += x[i]
		}
	}

	return v
}

// IsValid implements Accumulator.
func (v *Vector[N, E]) IsValid(edge E) bool {
	x := v.extract(edge)
	if len(x) != len(v.limit) {
		return false
	}
	for i := range x {
		if v.value[i]+x[i] >= v.limit[i] {
			return false
		}
	}

	return true
}
