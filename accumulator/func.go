// SPDX-License-Identifier: MIT

package accumulator

// StepFunc returns the value after absorbing edge.
type StepFunc[M, E any] func(value M, edge E) M

// CheckFunc reports whether absorbing edge keeps value within limit.
type CheckFunc[M, E any] func(value, limit M, edge E) bool

// CloneFunc deep-copies a value. Required when M holds references.
type CloneFunc[M any] func(M) M

// Func is an Accumulator assembled from user functions, for constraints the
// ready-made types do not cover.
//
// step must not mutate its input when M holds references: return a new value
// instead, or supply a CloneFunc so that Copy isolates branches.
type Func[M, E any] struct {
	value M
	limit M
	step  StepFunc[M, E]
	check CheckFunc[M, E]
	clone CloneFunc[M]
	guard initGuard
}

// NewFunc returns an uninitialized Func. clone may be nil for value types.
// Panics if step or check is nil.
func NewFunc[M, E any](step StepFunc[M, E], check CheckFunc[M, E], clone CloneFunc[M]) *Func[M, E] {
	if step == nil || check == nil {
		panic("accumulator: NewFunc requires non-nil step and check functions")
	}

	return &Func[M, E]{step: step, check: check, clone: clone}
}

// Init sets the starting value and the limit, and returns the receiver.
func (f *Func[M, E]) Init(value, limit M) *Func[M, E] {
	f.guard.mark("Func")
	f.value, f.limit = value, limit

	return f
}

// Value returns the current value.
func (f *Func[M, E]) Value() M { return f.value }

// Limit returns the limit.
func (f *Func[M, E]) Limit() M { return f.limit }

// Copy implements Accumulator.
func (f *Func[M, E]) Copy() Accumulator[E] {
	c := &Func[M, E]{step: f.step, check: f.check, clone: f.clone}
	value, limit := f.value, f.limit
	if f.clone != nil {
		value, limit = f.clone(value), f.clone(limit)
	}

	return c.Init(value, limit)
}

// Update implements Accumulator.
func (f *Func[M, E]) Update(edge E) Accumulator[E] {
	f.value = f.step(f.value, edge)

	return f
}

// IsValid implements Accumulator.
func (f *Func[M, E]) IsValid(edge E) bool { return f.check(f.value, f.limit, edge) }
