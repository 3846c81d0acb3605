// SPDX-License-Identifier: MIT
//
// impl_simple.go - Path, Cycle and Complete constructors.
//
// Contract (all three):
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: cfg.weightFn on weighted graphs, else 0; attributes and
//     label follow the weight for every edge.
//   - Honors core mode flags without silent degrade.
//
// Determinism:
//   - Stable edge emission order documented per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rankpath/core"
)

const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodComplete   = "Complete"
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor that builds P_n: edges (i-1)→i for i=1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: edges i→(i+1) mod n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n. Pairs are visited with
// i asc, j>i asc; directed graphs receive both arcs i→j and j→i.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connectBoth(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
