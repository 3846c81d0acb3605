// SPDX-License-Identifier: MIT

package accumulator

// Hops counts edges on the path and admits an edge while the count stays
// within limit.
type Hops[E any] struct {
	value int
	limit int
	guard initGuard
}

// NewHops returns an uninitialized Hops counter.
func NewHops[E any]() *Hops[E] { return &Hops[E]{} }

// Init sets the starting count and the maximal count, and returns the receiver.
func (h *Hops[E]) Init(value, limit int) *Hops[E] {
	h.guard.mark("Hops")
	h.value, h.limit = value, limit

	return h
}

// Value returns the number of edges absorbed so far (plus the initial value).
func (h *Hops[E]) Value() int { return h.value }

// Limit returns the maximal count.
func (h *Hops[E]) Limit() int { return h.limit }

// Copy implements Accumulator.
func (h *Hops[E]) Copy() Accumulator[E] {
	return (&Hops[E]{}).Init(h.value, h.limit)
}

// Update implements Accumulator.
func (h *Hops[E]) Update(E) Accumulator[E] {
	h.value++

	return h
}

// IsValid implements Accumulator.
func (h *Hops[E]) IsValid(E) bool { return h.value+1 <= h.limit }
