// SPDX-License-Identifier: MIT
//
// helpers.go - shared steps of every constructor: vertex insertion and
// edge emission with weight, attributes and label drawn in a fixed order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rankpath/core"
)

// addVertices inserts idFn(0..n-1) into g and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds u→v with a freshly drawn weight (0 on unweighted graphs),
// attributes and label.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w, cfg.edgeOptions()...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// connectBoth adds u→v and, on directed graphs, v→u with its own draws.
func connectBoth(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := connect(g, cfg, method, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return connect(g, cfg, method, v, u)
	}

	return nil
}
