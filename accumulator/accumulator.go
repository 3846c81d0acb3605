// SPDX-License-Identifier: MIT
//
// File: accumulator.go
// Role: The Accumulator protocol, the Number constraint and shared helpers.

package accumulator

// Accumulator is a per-path constraint state machine over edges of type E.
//
// Implementations keep a current value and an immutable limit. They must be
// safe to Copy concurrently with reads of the original, because the engine
// forks accumulators of shared path prefixes from several branches.
type Accumulator[E any] interface {
	// Copy returns a fresh instance with the same value and limit and no
	// aliasing with the receiver.
	Copy() Accumulator[E]

	// Update absorbs edge into the value and returns the receiver.
	// It is only called after IsValid approved the same edge.
	Update(edge E) Accumulator[E]

	// IsValid reports whether absorbing edge keeps the value within the limit.
	// It must not mutate the receiver.
	IsValid(edge E) bool
}

// Number is the set of numeric types a Sum, Bottleneck or Vector can track.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AllValid reports whether every accumulator in accs admits edge.
// Evaluation stops at the first rejection; an empty slice admits everything.
func AllValid[E any](accs []Accumulator[E], edge E) bool {
	for _, a := range accs {
		if !a.IsValid(edge) {
			return false
		}
	}

	return true
}

// Fork returns Copy().Update(edge) for every accumulator, preserving order.
func Fork[E any](accs []Accumulator[E], edge E) []Accumulator[E] {
	if len(accs) == 0 {
		return nil
	}
	out := make([]Accumulator[E], len(accs))
	for i, a := range accs {
		out[i] = a.Copy().Update(edge)
	}

	return out
}

// CopyAll returns Copy() of every accumulator, preserving order.
func CopyAll[E any](accs []Accumulator[E]) []Accumulator[E] {
	if len(accs) == 0 {
		return nil
	}
	out := make([]Accumulator[E], len(accs))
	for i, a := range accs {
		out[i] = a.Copy()
	}

	return out
}

// initGuard enforces the single Init call per instance.
type initGuard struct{ done bool }

func (g *initGuard) mark(kind string) {
	if g.done {
		panic("accumulator: " + kind + ".Init called twice")
	}
	g.done = true
}
