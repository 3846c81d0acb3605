// SPDX-License-Identifier: MIT

package visited

import "github.com/bits-and-blooms/bitset"

// arraySet marks indexes in a dense []bool.
type arraySet struct{ marks []bool }

func newArraySet(n int) *arraySet { return &arraySet{marks: make([]bool, n)} }

func (a *arraySet) Add(i int) {
	if i >= len(a.marks) {
		grown := make([]bool, i+1)
		copy(grown, a.marks)
		a.marks = grown
	}
	a.marks[i] = true
}

func (a *arraySet) Contains(i int) bool { return i >= 0 && i < len(a.marks) && a.marks[i] }

func (a *arraySet) Clear() { clear(a.marks) }

// listSet keeps indexes in insertion order and scans on lookup.
type listSet struct{ items []int }

func (l *listSet) Add(i int) { l.items = append(l.items, i) }

func (l *listSet) Contains(i int) bool {
	for _, v := range l.items {
		if v == i {
			return true
		}
	}

	return false
}

func (l *listSet) Clear() { l.items = l.items[:0] }

// hashSet is a plain map-backed set.
type hashSet map[int]struct{}

func (h hashSet) Add(i int) { h[i] = struct{}{} }

func (h hashSet) Contains(i int) bool {
	_, ok := h[i]

	return ok
}

func (h hashSet) Clear() { clear(h) }

// bitSet wraps bitset.BitSet, which grows on demand.
type bitSet struct{ bits *bitset.BitSet }

func newBitSet(n int) *bitSet { return &bitSet{bits: bitset.New(uint(n))} }

func (b *bitSet) Add(i int) { b.bits.Set(uint(i)) }

func (b *bitSet) Contains(i int) bool { return i >= 0 && b.bits.Test(uint(i)) }

func (b *bitSet) Clear() { b.bits.ClearAll() }
