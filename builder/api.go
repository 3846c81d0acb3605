// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/rankpath/core"
)

// Constructor mutates g according to cfg. Constructors are composable: each
// one only adds vertices and edges, so several can be applied to one graph.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts once and applies
// each constructor in order. The first failing constructor aborts the build.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel, wrapped with "BuildGraph: ".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
