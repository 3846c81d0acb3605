// SPDX-License-Identifier: MIT

package accumulator

// Set collects one label per edge along the path.
//
// Its limit is a set of forbidden labels. An edge is admitted when its label
// is neither forbidden nor already present on the path, so a Set keyed by
// operator or carrier yields paths that never reuse the same one twice.
//
// Both value and limit are kept as ordered lists plus membership indexes;
// Copy clones all of them.
type Set[T comparable, E any] struct {
	seen      []T
	seenIdx   map[T]struct{}
	forbidden []T
	forbidIdx map[T]struct{}
	label     func(E) T
	guard     initGuard
}

// NewSet returns an uninitialized Set reading edge labels with label.
// Panics if label is nil.
func NewSet[T comparable, E any](label func(E) T) *Set[T, E] {
	if label == nil {
		panic("accumulator: NewSet requires a non-nil label function")
	}

	return &Set[T, E]{label: label}
}

// Init sets the labels already considered used and the forbidden labels.
// Both slices are copied. Returns the receiver.
func (s *Set[T, E]) Init(seen, forbidden []T) *Set[T, E] {
	s.guard.mark("Set")
	s.seen, s.seenIdx = cloneIndexed(seen)
	s.forbidden, s.forbidIdx = cloneIndexed(forbidden)

	return s
}

// Value returns the labels collected so far, in path order.
func (s *Set[T, E]) Value() []T { return append([]T(nil), s.seen...) }

// Limit returns the forbidden labels.
func (s *Set[T, E]) Limit() []T { return append([]T(nil), s.forbidden...) }

// Contains reports whether label was collected on the path.
func (s *Set[T, E]) Contains(label T) bool {
	_, ok := s.seenIdx[label]

	return ok
}

// Copy implements Accumulator.
func (s *Set[T, E]) Copy() Accumulator[E] {
	return (&Set[T, E]{label: s.label}).Init(s.seen, s.forbidden)
}

// Update implements Accumulator.
func (s *Set[T, E]) Update(edge E) Accumulator[E] {
	l := s.label(edge)
	if _, ok := s.seenIdx[l]; !ok {
		s.seen = append(s.seen, l)
		s.seenIdx[l] = struct{}{}
	}

	return s
}

// IsValid implements Accumulator.
func (s *Set[T, E]) IsValid(edge E) bool {
	l := s.label(edge)
	if _, ok := s.forbidIdx[l]; ok {
		return false
	}
	_, dup := s.seenIdx[l]

	return !dup
}

// cloneIndexed copies items, drops duplicates and builds a membership index.
func cloneIndexed[T comparable](items []T) ([]T, map[T]struct{}) {
	list := make([]T, 0, len(items))
	idx := make(map[T]struct{}, len(items))
	for _, it := range items {
		if _, ok := idx[it]; ok {
			continue
		}
		idx[it] = struct{}{}
		list = append(list, it)
	}

	return list, idx
}
