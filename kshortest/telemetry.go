// SPDX-License-Identifier: MIT

package kshortest

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter, used unless an Engine was given providers.
var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
)

// Prune reasons reported on kshortest_pruned_total.
const (
	reasonSimplicity   = "simplicity"
	reasonReachability = "reachability"
	reasonHops         = "hops"
	reasonConstraint   = "constraint"
	reasonRank         = "rank"
)

// instruments groups the search metrics.
type instruments struct {
	searches   metric.Int64Counter
	passes     metric.Int64Counter
	candidates metric.Int64Counter
	pruned     metric.Int64Counter
	duration   metric.Float64Histogram
}

var (
	defaultInstruments *instruments
	metricsOnce        sync.Once
	metricsErr         error
)

// initMetrics initializes the package instruments. Safe to call multiple times.
func initMetrics() (*instruments, error) {
	metricsOnce.Do(func() {
		defaultInstruments, metricsErr = newInstruments(meter)
	})

	return defaultInstruments, metricsErr
}

func newInstruments(m metric.Meter) (*instruments, error) {
	var (
		in  instruments
		err error
	)
	in.searches, err = m.Int64Counter(
		"kshortest_searches_total",
		metric.WithDescription("Total number of K-shortest-path searches"),
	)
	if err != nil {
		return nil, err
	}
	in.passes, err = m.Int64Counter(
		"kshortest_passes_total",
		metric.WithDescription("Relaxation passes run across searches"),
	)
	if err != nil {
		return nil, err
	}
	in.candidates, err = m.Int64Counter(
		"kshortest_candidates_total",
		metric.WithDescription("Arcs examined as path extensions"),
	)
	if err != nil {
		return nil, err
	}
	in.pruned, err = m.Int64Counter(
		"kshortest_pruned_total",
		metric.WithDescription("Path extensions discarded, by reason"),
	)
	if err != nil {
		return nil, err
	}
	in.duration, err = m.Float64Histogram(
		"kshortest_search_duration_seconds",
		metric.WithDescription("Duration of K-shortest-path searches"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &in, nil
}

// record emits the metrics of one finished search. A nil receiver is a no-op.
func (in *instruments) record(ctx context.Context, st SearchStats, d time.Duration, err error) {
	if in == nil {
		return
	}
	ok := metric.WithAttributes(attribute.Bool("success", err == nil))
	in.searches.Add(ctx, 1, ok)
	in.duration.Record(ctx, d.Seconds(), ok)
	if err != nil {
		return
	}

	in.passes.Add(ctx, int64(st.Passes))
	in.candidates.Add(ctx, int64(st.Arcs))
	for _, r := range []struct {
		reason string
		n      int
	}{
		{reasonSimplicity, st.PrunedSimplicity},
		{reasonReachability, st.PrunedReachability},
		{reasonHops, st.PrunedHops},
		{reasonConstraint, st.PrunedConstraint},
		{reasonRank, st.PrunedRank},
	} {
		if r.n > 0 {
			in.pruned.Add(ctx, int64(r.n), metric.WithAttributes(attribute.String("reason", r.reason)))
		}
	}
}

// startSearchSpan creates the span of one search.
func startSearchSpan(ctx context.Context, t trace.Tracer, id string, k int) (context.Context, trace.Span) {
	return t.Start(ctx, "kshortest.FindKShortestPaths",
		trace.WithAttributes(
			attribute.String("kshortest.search_id", id),
			attribute.Int("kshortest.k", k),
		),
	)
}

// endSearchSpan sets the result attributes or the error status and ends span.
func endSearchSpan(span trace.Span, st SearchStats, found int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(
			attribute.Int("kshortest.paths", found),
			attribute.Int("kshortest.passes", st.Passes),
			attribute.Int("kshortest.pruned", st.Pruned()),
			attribute.Bool("kshortest.truncated", st.Truncated),
		)
	}
	span.End()
}
