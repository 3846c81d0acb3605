// SPDX-License-Identifier: MIT
//
// File: runner.go
// Role: Per-search state: the dense graph snapshot, distances to the target,
// ranked lists and the expansion of one frontier element.
// Concurrency:
//   - index, out, heads and dist are read-only after newRunner.
//   - lists[v] is guarded by locks[v].
//   - counters are atomic.

package kshortest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/rankpath/accumulator"
	"github.com/katalvlaran/rankpath/bfs"
	"github.com/katalvlaran/rankpath/visited"
)

type counters struct {
	expanded, arcs, inserted, evicted atomic.Int64
	simplicity, reachability, hops    atomic.Int64
	constraint, rank                  atomic.Int64
}

type runner[V comparable, E any] struct {
	verts   []V
	index   map[V]int
	out     [][]Arc[V, E]
	heads   [][]int
	dist    []int // hops to target, -1 when unreachable
	target  int
	maxHops int

	lists []rankedList[V, E]
	locks []sync.Mutex
	sets  sync.Pool
	c     counters
}

// newRunner snapshots g into dense indexes and walks the reverse graph from
// target. Collaborator failures surface here, before any relaxation.
func newRunner[V comparable, E any](
	ctx context.Context,
	g Graph[V, E],
	opts Options,
	target V,
	k int,
) (*runner[V, E], error) {
	verts := g.Vertices()
	n := len(verts)
	r := &runner[V, E]{
		verts:   verts,
		index:   make(map[V]int, n),
		out:     make([][]Arc[V, E], n),
		heads:   make([][]int, n),
		dist:    make([]int, n),
		maxHops: opts.MaxHops,
		lists:   make([]rankedList[V, E], n),
		locks:   make([]sync.Mutex, n),
	}
	for i, v := range verts {
		r.index[v] = i
		r.lists[i].k = k
	}
	t, ok := r.index[target]
	if !ok {
		return nil, fmt.Errorf("%w: target %v missing from Vertices", ErrGraphAccess, target)
	}
	r.target = t

	rev := make([][]int, n)
	for i, v := range verts {
		arcs, err := g.OutgoingEdges(v)
		if err != nil {
			return nil, fmt.Errorf("%w: outgoing edges of %v: %w", ErrGraphAccess, v, err)
		}
		hs := make([]int, len(arcs))
		for j, a := range arcs {
			h, ok := r.index[a.To]
			if !ok {
				return nil, fmt.Errorf("%w: arc %v→%v leaves the vertex set", ErrGraphAccess, v, a.To)
			}
			hs[j] = h
			rev[h] = append(rev[h], i)
		}
		r.out[i], r.heads[i] = arcs, hs
	}

	res, err := bfs.Walk[int](t,
		func(v int) ([]int, error) { return rev[v], nil },
		bfs.WithContext[int](ctx),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, fmt.Errorf("kshortest: canceled during reachability: %w", err)
		}
		return nil, fmt.Errorf("%w: reachability: %w", ErrGraphAccess, err)
	}
	for i := range r.dist {
		r.dist[i] = -1
	}
	for v, d := range res.Depth {
		r.dist[v] = d
	}

	strategy := opts.Visited
	r.sets.New = func() any { return visited.New(strategy, n) }

	return r, nil
}

// passBound returns the number of passes to run and the number that is
// exhaustive for simple paths under MaxHops.
func (r *runner[V, E]) passBound(maxPasses int) (bound, exhaustive int) {
	exhaustive = len(r.verts) - 1
	if r.maxHops > 0 && r.maxHops < exhaustive {
		exhaustive = r.maxHops
	}
	bound = exhaustive
	if maxPasses > 0 && maxPasses < bound {
		bound = maxPasses
	}

	return bound, exhaustive
}

// canReach reports whether e's vertex can still reach the target within
// MaxHops.
func (r *runner[V, E]) canReach(e *Element[V, E]) bool {
	d := r.dist[e.idx]
	if d < 0 {
		return false
	}

	return r.maxHops == 0 || e.hops+d <= r.maxHops
}

// expandOne offers every admissible extension of p to its head's list.
func (r *runner[V, E]) expandOne(p *Element[V, E], ordinal, pass int) {
	r.c.expanded.Add(1)
	lineage := r.sets.Get().(visited.Set)
	for cur := p; cur != nil; cur = cur.prev {
		lineage.Add(cur.idx)
	}

	for ai, arc := range r.out[p.idx] {
		r.c.arcs.Add(1)
		to := r.heads[p.idx][ai]
		switch {
		case lineage.Contains(to):
			r.c.simplicity.Add(1)
		case r.dist[to] < 0:
			r.c.reachability.Add(1)
		case r.maxHops > 0 && p.hops+1+r.dist[to] > r.maxHops:
			r.c.hops.Add(1)
		case !accumulator.AllValid(p.accs, arc.Edge):
			r.c.constraint.Add(1)
		default:
			r.offer(p, arc, to, discoveryKey{pass: pass, ordinal: ordinal, arc: ai})
		}
	}

	lineage.Clear()
	r.sets.Put(lineage)
}

// offer checks the head's list before forking accumulators, then merges the
// extension.
func (r *runner[V, E]) offer(p *Element[V, E], arc Arc[V, E], to int, key discoveryKey) {
	mu, list := &r.locks[to], &r.lists[to]

	mu.Lock()
	ok := list.admits(p.weight+arc.Weight, key)
	mu.Unlock()
	if !ok {
		r.c.rank.Add(1)
		return
	}

	c := extend(p, arc, to, key)
	mu.Lock()
	inserted, evicted := list.offer(c)
	mu.Unlock()
	if !inserted {
		r.c.rank.Add(1)
		return
	}
	r.c.inserted.Add(1)
	if evicted != nil {
		r.c.evicted.Add(1)
	}
}

// collect returns the next frontier: elements created in pass that are still
// ranked, in vertex order then rank order. Target elements are final.
func (r *runner[V, E]) collect(pass int) []*Element[V, E] {
	var next []*Element[V, E]
	for v := range r.lists {
		if v == r.target {
			continue
		}
		for _, e := range r.lists[v].items {
			if e.key.pass == pass {
				next = append(next, e)
			}
		}
	}

	return next
}

// results returns a copy of the target's ranked list.
func (r *runner[V, E]) results() []*Element[V, E] {
	items := r.lists[r.target].items
	out := make([]*Element[V, E], len(items))
	copy(out, items)

	return out
}

// fill copies the counters into stats.
func (r *runner[V, E]) fill(s *SearchStats) {
	s.Expanded = int(r.c.expanded.Load())
	s.Arcs = int(r.c.arcs.Load())
	s.Inserted = int(r.c.inserted.Load())
	s.Evicted = int(r.c.evicted.Load())
	s.PrunedSimplicity = int(r.c.simplicity.Load())
	s.PrunedReachability = int(r.c.reachability.Load())
	s.PrunedHops = int(r.c.hops.Load())
	s.PrunedConstraint = int(r.c.constraint.Load())
	s.PrunedRank = int(r.c.rank.Load())
}
