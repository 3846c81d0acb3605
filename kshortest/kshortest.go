// SPDX-License-Identifier: MIT
//
// File: kshortest.go
// Role: Engine construction, accumulator registration and the search entry
// points with their logging, tracing and metrics.

package kshortest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/rankpath/accumulator"
)

// Engine ranks simple paths of one graph. It is safe for concurrent searches.
type Engine[V comparable, E any] struct {
	g      Graph[V, E]
	opts   Options
	log    *slog.Logger
	tracer trace.Tracer
	inst   *instruments

	mu        sync.Mutex
	templates []accumulator.Accumulator[E]
	closed    bool
}

// New returns an Engine over g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrInvalidArgument for the first invalid option.
func New[V comparable, E any](g Graph[V, E], opts ...Option) (*Engine[V, E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &Engine[V, E]{g: g, opts: o, log: o.Logger, tracer: tracer}
	if o.TracerProvider != nil {
		e.tracer = o.TracerProvider.Tracer(scopeName)
	}
	if o.MeterProvider != nil {
		inst, err := newInstruments(o.MeterProvider.Meter(scopeName))
		if err != nil {
			return nil, fmt.Errorf("kshortest: create instruments: %w", err)
		}
		e.inst = inst
	} else if inst, err := initMetrics(); err != nil {
		e.log.Warn("kshortest metrics disabled", slog.String("error", err.Error()))
	} else {
		e.inst = inst
	}

	return e, nil
}

// RegisterAccumulator attaches one more constraint. The template is never
// mutated: every search roots its paths on a Copy of it. Registration closes
// when the first search starts.
func (e *Engine[V, E]) RegisterAccumulator(template accumulator.Accumulator[E]) error {
	if template == nil {
		return fmt.Errorf("%w: nil accumulator template", ErrInvalidArgument)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrRegistrationClosed)
	}
	e.templates = append(e.templates, template)

	return nil
}

// Accumulators returns the number of registered accumulator templates.
func (e *Engine[V, E]) Accumulators() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.templates)
}

// closeRegistration freezes and returns the templates.
func (e *Engine[V, E]) closeRegistration() []accumulator.Accumulator[E] {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true

	return e.templates
}

// FindKShortestPaths returns up to k simple source→target paths admitted by
// every registered accumulator, ascending by weight. Equal weights keep
// discovery order. An unreachable target yields an empty slice.
func (e *Engine[V, E]) FindKShortestPaths(ctx context.Context, source, target V, k int) ([]Path[V, E], error) {
	paths, _, err := e.FindKShortestPathsWithStats(ctx, source, target, k)

	return paths, err
}

// FindKShortestPathsWithStats is FindKShortestPaths that also reports what the
// search did. Stats are filled as far as the search got, even on error.
func (e *Engine[V, E]) FindKShortestPathsWithStats(
	ctx context.Context,
	source, target V,
	k int,
) ([]Path[V, E], SearchStats, error) {
	elems, stats, err := e.FindKShortestElements(ctx, source, target, k)
	if err != nil {
		return nil, stats, err
	}
	paths := make([]Path[V, E], len(elems))
	for i, el := range elems {
		paths[i] = el.Path()
	}

	return paths, stats, nil
}

// FindKShortestElements runs the search and returns the ranked target
// elements without materializing them. Their lineages stay shared.
func (e *Engine[V, E]) FindKShortestElements(
	ctx context.Context,
	source, target V,
	k int,
) ([]*Element[V, E], SearchStats, error) {
	stats := SearchStats{SearchID: uuid.NewString()}
	ctx, span := startSearchSpan(ctx, e.tracer, stats.SearchID, k)
	log := e.log.With(slog.String("search_id", stats.SearchID))
	start := time.Now()

	elems, err := e.search(ctx, log, source, target, k, &stats)
	elapsed := time.Since(start)

	e.inst.record(ctx, stats, elapsed, err)
	endSearchSpan(span, stats, len(elems), err)
	if err != nil {
		log.Warn("k-shortest search failed",
			slog.Any("source", source),
			slog.Any("target", target),
			slog.Int("k", k),
			slog.String("error", err.Error()),
		)
		return nil, stats, err
	}
	log.Info("k-shortest search complete",
		slog.Any("source", source),
		slog.Any("target", target),
		slog.Int("k", k),
		slog.Int("paths", len(elems)),
		slog.Int("passes", stats.Passes),
		slog.Int("pruned", stats.Pruned()),
		slog.Bool("truncated", stats.Truncated),
		slog.Duration("elapsed", elapsed),
	)

	return elems, stats, nil
}

// search validates the request and runs the relaxation passes.
func (e *Engine[V, E]) search(
	ctx context.Context,
	log *slog.Logger,
	source, target V,
	k int,
	stats *SearchStats,
) ([]*Element[V, E], error) {
	// 1) Freeze templates, then validate before touching the graph.
	templates := e.closeRegistration()
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d must be ≥ 1", ErrInvalidArgument, k)
	}
	if !e.g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %v", ErrInvalidVertex, source)
	}
	if !e.g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %v", ErrInvalidVertex, target)
	}

	// 2) Snapshot the graph and learn distances to the target.
	r, err := newRunner(ctx, e.g, e.opts, target, k)
	if err != nil {
		return nil, err
	}
	src, ok := r.index[source]
	if !ok {
		return nil, fmt.Errorf("%w: source %v missing from Vertices", ErrGraphAccess, source)
	}

	// 3) Seed the source.
	root := newRoot(source, src, templates)
	if source == target {
		return []*Element[V, E]{root}, nil
	}
	if !r.canReach(root) {
		return []*Element[V, E]{}, nil
	}
	r.lists[src].offer(root)

	// 4) Relax until nothing new survives or the bound is hit.
	bound, exhaustive := r.passBound(e.opts.MaxPasses)
	frontier := []*Element[V, E]{root}
	for pass := 1; len(frontier) > 0 && pass <= bound; pass++ {
		if err = ctx.Err(); err != nil {
			r.fill(stats)
			return nil, fmt.Errorf("kshortest: canceled before pass %d: %w", pass, err)
		}
		if err = r.expand(ctx, frontier, pass, e.opts.Parallelism); err != nil {
			r.fill(stats)
			return nil, fmt.Errorf("kshortest: pass %d: %w", pass, err)
		}
		stats.Passes = pass
		next := r.collect(pass)
		log.Debug("relaxation pass",
			slog.Int("pass", pass),
			slog.Int("frontier", len(frontier)),
			slog.Int("survivors", len(next)),
		)
		frontier = next
	}
	r.fill(stats)
	stats.Truncated = len(frontier) > 0 && bound < exhaustive

	return r.results(), nil
}
