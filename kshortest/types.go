// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, the graph collaborator contract, options and stats.

package kshortest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/rankpath/visited"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("kshortest: graph is nil")

	// ErrInvalidVertex indicates the source or target is not in the graph.
	ErrInvalidVertex = errors.New("kshortest: vertex not found in graph")

	// ErrInvalidArgument indicates k ≤ 0, an invalid option or a malformed
	// accumulator registration.
	ErrInvalidArgument = errors.New("kshortest: invalid argument")

	// ErrRegistrationClosed indicates RegisterAccumulator was called after the
	// engine ran its first search. It is always joined with ErrInvalidArgument.
	ErrRegistrationClosed = errors.New("kshortest: accumulator registration closed")

	// ErrGraphAccess indicates the graph collaborator failed or returned an
	// arc to a vertex it does not list.
	ErrGraphAccess = errors.New("kshortest: graph access failed")
)

// Graph is the read-only capability the engine consumes.
//
// Vertices must return the same order on every call; it fixes the tie order
// of the search. OutgoingEdges lists the arcs leaving v.
type Graph[V comparable, E any] interface {
	Vertices() []V
	HasVertex(v V) bool
	OutgoingEdges(v V) ([]Arc[V, E], error)
}

// Arc is one outgoing edge as seen from its tail.
type Arc[V comparable, E any] struct {
	Edge   E
	To     V
	Weight float64
}

const (
	// DefaultParallelism expands the frontier sequentially.
	DefaultParallelism = 1

	// scopeName names the tracer and meter.
	scopeName = "github.com/katalvlaran/rankpath/kshortest"
)

// Options configures an Engine.
//
// MaxPasses   – cap on relaxation passes; 0 means |V|-1.
// MaxHops     – cap on edges per path; 0 means unbounded.
// Parallelism – goroutines expanding a frontier; 1 is sequential.
// Visited     – lineage membership strategy.
type Options struct {
	MaxPasses   int
	MaxHops     int
	Parallelism int
	Visited     visited.Strategy

	Logger         *slog.Logger
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider

	// err holds the first invalid option.
	err error
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns sequential, unbounded options with the bit-set
// visited strategy and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Parallelism: DefaultParallelism,
		Visited:     visited.BitSet,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// WithMaxPasses caps the number of relaxation passes. n must be ≥ 0.
func WithMaxPasses(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxPasses=%d must be ≥ 0", ErrInvalidArgument, n))
			return
		}
		o.MaxPasses = n
	}
}

// WithMaxHops caps the number of edges of every returned path. n must be ≥ 0.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxHops=%d must be ≥ 0", ErrInvalidArgument, n))
			return
		}
		o.MaxHops = n
	}
}

// WithParallelism sets how many goroutines expand a frontier. n must be ≥ 1.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: Parallelism=%d must be ≥ 1", ErrInvalidArgument, n))
			return
		}
		o.Parallelism = n
	}
}

// WithVisitedStrategy selects the lineage membership set.
func WithVisitedStrategy(s visited.Strategy) Option {
	return func(o *Options) {
		if !s.Valid() {
			o.fail(fmt.Errorf("%w: %w: %d", ErrInvalidArgument, visited.ErrUnknownStrategy, int(s)))
			return
		}
		o.Visited = s
	}
}

// WithLogger routes search logs to l. A nil logger is rejected.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.fail(fmt.Errorf("%w: nil logger", ErrInvalidArgument))
			return
		}
		o.Logger = l
	}
}

// WithMeterProvider records metrics through mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp == nil {
			o.fail(fmt.Errorf("%w: nil meter provider", ErrInvalidArgument))
			return
		}
		o.MeterProvider = mp
	}
}

// WithTracerProvider records spans through tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp == nil {
			o.fail(fmt.Errorf("%w: nil tracer provider", ErrInvalidArgument))
			return
		}
		o.TracerProvider = tp
	}
}

// SearchStats summarizes one search.
type SearchStats struct {
	// SearchID correlates logs and spans of the search.
	SearchID string

	Passes   int // relaxation passes run
	Expanded int // frontier elements expanded
	Arcs     int // arcs examined
	Inserted int // extensions that entered a ranked list
	Evicted  int // ranked entries pushed out by better ones

	PrunedSimplicity   int // head already on the lineage
	PrunedReachability int // head cannot reach the target
	PrunedHops         int // would exceed MaxHops
	PrunedConstraint   int // refused by an accumulator
	PrunedRank         int // not better than a full ranked list

	// Truncated reports that MaxPasses stopped the search with a non-empty
	// frontier.
	Truncated bool
}

// Pruned returns the total number of arcs pruned for any reason.
func (s SearchStats) Pruned() int {
	return s.PrunedSimplicity + s.PrunedReachability + s.PrunedHops +
		s.PrunedConstraint + s.PrunedRank
}
