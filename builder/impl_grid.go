// SPDX-License-Identifier: MIT
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Vertex IDs use the fixed scheme "r,c" (row-major order); cfg.idFn is
//     not consulted so coordinates stay explicit.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Directed graphs also receive the reverse arc, with its own draws.
//
// Determinism:
//   - Stable vertex order: row-major.
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/rankpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		// 2) Add all vertices in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}
		// 3) Emit Right and Bottom neighbors.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := connectBoth(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connectBoth(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID formats a grid coordinate as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
