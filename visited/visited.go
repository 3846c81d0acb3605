// SPDX-License-Identifier: MIT

// Package visited provides interchangeable membership sets over dense vertex
// indexes. The kshortest engine builds one per expanded path to reject
// extensions that would revisit a vertex of the lineage.
//
// Four strategies are available:
//
//   - Array:   a []bool of capacity n; O(1) Add/Contains, O(n) Clear.
//   - List:    an append-only slice; O(len) Contains, cheap for short paths.
//   - HashSet: a Go map; O(1) average, allocation heavy.
//   - BitSet:  a github.com/bits-and-blooms/bitset; O(1), n/8 bytes.
//
// Sets are not safe for concurrent use; the engine keeps one per worker.
package visited

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("visited: unknown strategy")

// Set is a membership set over indexes in [0, capacity).
type Set interface {
	// Add marks i as visited.
	Add(i int)
	// Contains reports whether i was added since the last Clear.
	Contains(i int) bool
	// Clear removes every element, keeping allocated capacity.
	Clear()
}

// Strategy selects a Set implementation.
type Strategy int

const (
	// BitSet is the default strategy.
	BitSet Strategy = iota
	Array
	List
	HashSet
)

var strategyNames = [...]string{
	BitSet:  "bitset",
	Array:   "array",
	List:    "list",
	HashSet: "hashset",
}

// String returns the configuration name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool { return s >= 0 && int(s) < len(strategyNames) }

// Strategies lists every known strategy in declaration order.
func Strategies() []Strategy { return []Strategy{BitSet, Array, List, HashSet} }

// ParseStrategy maps a case-insensitive name to a Strategy.
// The empty string selects BitSet.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return BitSet, nil
	}
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// New returns an empty Set of the given strategy sized for indexes below capacity.
// An unknown strategy falls back to BitSet.
func New(s Strategy, capacity int) Set {
	if capacity < 0 {
		capacity = 0
	}
	switch s {
	case Array:
		return newArraySet(capacity)
	case List:
		return &listSet{}
	case HashSet:
		return make(hashSet)
	default:
		return newBitSet(capacity)
	}
}
