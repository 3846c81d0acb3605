// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// PrefixIDFn names vertices prefix+idx, e.g. "sw0", "sw1". Panics on an empty
// prefix, which would collide with DefaultIDFn.
func PrefixIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("builder: PrefixIDFn requires a non-empty prefix")
	}

	return func(idx int) string { return fmt.Sprint(prefix, idx) }
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
