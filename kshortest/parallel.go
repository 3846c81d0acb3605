// SPDX-License-Identifier: MIT

package kshortest

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minParallelFrontier is the smallest frontier worth fanning out.
const minParallelFrontier = 2

// expand runs one relaxation pass over frontier. With workers > 1 the
// elements are expanded concurrently; ordinals are frontier positions either
// way, so the ranked lists end up identical.
func (r *runner[V, E]) expand(ctx context.Context, frontier []*Element[V, E], pass, workers int) error {
	if workers <= 1 || len(frontier) < minParallelFrontier {
		for i, p := range frontier {
			r.expandOne(p, i, pass)
		}

		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range frontier {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r.expandOne(p, i, pass)

			return nil
		})
	}

	return g.Wait()
}
