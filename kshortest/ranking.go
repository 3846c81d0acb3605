// SPDX-License-Identifier: MIT
//
// File: ranking.go
// Role: rankedList, the bounded per-vertex list of best elements.
// Invariants:
//   - len(items) ≤ k.
//   - items are strictly ascending by (weight, discovery key).

package kshortest

import (
	"slices"
	"sort"
)

type rankedList[V comparable, E any] struct {
	k     int
	items []*Element[V, E]
}

// admits reports whether an element with the given weight and key would
// enter the list.
func (l *rankedList[V, E]) admits(weight float64, key discoveryKey) bool {
	if len(l.items) < l.k {
		return true
	}

	return l.items[len(l.items)-1].precedes(weight, key)
}

// offer inserts c in rank order. It returns false when c is rejected, and the
// entry pushed past position k, if any.
func (l *rankedList[V, E]) offer(c *Element[V, E]) (inserted bool, evicted *Element[V, E]) {
	if !l.admits(c.weight, c.key) {
		return false, nil
	}
	at := sort.Search(len(l.items), func(i int) bool {
		return l.items[i].precedes(c.weight, c.key)
	})
	l.items = slices.Insert(l.items, at, c)
	if len(l.items) > l.k {
		evicted = l.items[l.k]
		l.items[l.k] = nil
		l.items = l.items[:l.k]
	}

	return true, evicted
}

func (l *rankedList[V, E]) len() int { return len(l.items) }
