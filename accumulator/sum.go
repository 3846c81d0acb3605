// SPDX-License-Identifier: MIT

package accumulator

// Sum accumulates a numeric edge property along the path.
//
// An edge is admitted while value+extract(edge) < limit. Inclusive relaxes the
// comparison to <=.
type Sum[N Number, E any] struct {
	value     N
	limit     N
	extract   func(E) N
	inclusive bool
	guard     initGuard
}

// NewSum returns an uninitialized Sum reading the tracked quantity with extract.
// Panics if extract is nil.
func NewSum[N Number, E any](extract func(E) N) *Sum[N, E] {
	if extract == nil {
		panic("accumulator: NewSum requires a non-nil extract function")
	}

	return &Sum[N, E]{extract: extract}
}

// Init sets the starting value and the limit, and returns the receiver.
func (s *Sum[N, E]) Init(value, limit N) *Sum[N, E] {
	s.guard.mark("Sum")
	s.value, s.limit = value, limit

	return s
}

// Inclusive lets the accumulated value reach the limit exactly.
func (s *Sum[N, E]) Inclusive() *Sum[N, E] {
	s.inclusive = true

	return s
}

// Value returns the current accumulated sum.
func (s *Sum[N, E]) Value() N { return s.value }

// Limit returns the configured limit.
func (s *Sum[N, E]) Limit() N { return s.limit }

// Copy implements Accumulator.
func (s *Sum[N, E]) Copy() Accumulator[E] {
	c := &Sum[N, E]{extract: s.extract, inclusive: s.inclusive}

	return c.Init(s.value, s.limit)
}

// Update implements Accumulator.
func (s *Sum[N, E]) Update(edge E) Accumulator[E] {
	s.value += s.extract(edge)

	return s
}

// IsValid implements Accumulator.
func (s *Sum[N, E]) IsValid(edge E) bool {
	next := s.value + s.extract(edge)
	if s.inclusive {
		return next <= s.limit
	}

	return next < s.limit
}
