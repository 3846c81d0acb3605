// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first reachability, returning unweighted
// distances, parent links, and visit order.
//
// Walk is generic over the vertex type and reads the graph through a
// NeighborFunc, so it serves both core.Graph (BFS, Reverse) and the dense
// integer indexes the kshortest engine uses to prune vertices that cannot
// reach the target.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rankpath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	next    NeighborFunc[V]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// Walk runs breadth-first search from start, expanding vertices with next.
// Returns ErrGraphNil for a nil next, ErrOptionViolation for bad options,
// ErrNeighbors for neighbor failures, ctx errors, or any OnVisit error.
func Walk[V comparable](start V, next NeighborFunc[V], opts ...Option[V]) (*Result[V], error) {
	if next == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[V]bool),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// BFS walks g forward (along outgoing edges) from startID.
func BFS(g *core.Graph, startID string, opts ...Option[string]) (*Result[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	return Walk[string](startID, g.NeighborIDs, opts...)
}

// Reverse walks g backward from targetID: the result holds every vertex that
// can reach targetID, with Depth the fewest edges needed to get there.
func Reverse(g *core.Graph, targetID string, opts ...Option[string]) (*Result[string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(targetID) {
		return nil, ErrStartVertexNotFound
	}

	return Walk[string](targetID, g.InNeighborIDs, opts...)
}

// enqueue marks v visited at depth d, records its parent and adds it to the queue.
func (w *walker[V]) enqueue(v V, d int, parent *V) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = *parent
	}
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.next(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.v, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		parent := item.v
		w.enqueue(nbr, nextDepth, &parent)
	}

	return nil
}
