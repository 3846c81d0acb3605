// SPDX-License-Identifier: MIT
package kshortest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/rankpath/kshortest"
)

// collected flattens a metrics snapshot into counter totals, counter totals
// per prune reason and histogram counts.
type collected struct {
	sums     map[string]int64
	byReason map[string]int64
	counts   map[string]uint64
}

func collect(t *testing.T, reader sdkmetric.Reader) collected {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	c := collected{
		sums:     map[string]int64{},
		byReason: map[string]int64{},
		counts:   map[string]uint64{},
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch d := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range d.DataPoints {
					c.sums[m.Name] += dp.Value
					if r, ok := dp.Attributes.Value("reason"); ok {
						c.byReason[r.AsString()] += dp.Value
					}
				}
			case metricdata.Histogram[float64]:
				for _, dp := range d.DataPoints {
					c.counts[m.Name] += dp.Count
				}
			}
		}
	}

	return c
}

func attrOf(kvs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

// TestTelemetry_MetricsAndSpans records one successful and one failed search.
func TestTelemetry_MetricsAndSpans(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	spanRecorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder))

	eng := costEngine(t, 8, 30,
		kshortest.WithMeterProvider(mp),
		kshortest.WithTracerProvider(tp),
	)
	paths, stats, err := eng.FindKShortestPathsWithStats(context.Background(), "V1", "V5", 3)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	_, err = eng.FindKShortestPaths(context.Background(), "V1", "missing", 3)
	require.ErrorIs(t, err, kshortest.ErrInvalidVertex)

	c := collect(t, reader)
	assert.Equal(t, int64(2), c.sums["kshortest_searches_total"])
	assert.Equal(t, int64(stats.Passes), c.sums["kshortest_passes_total"])
	assert.Equal(t, int64(stats.Arcs), c.sums["kshortest_candidates_total"])
	assert.Equal(t, int64(1), c.sums["kshortest_pruned_total"])
	assert.Equal(t, map[string]int64{"constraint": 1}, c.byReason)
	assert.Equal(t, uint64(2), c.counts["kshortest_search_duration_seconds"])

	spans := spanRecorder.Ended()
	require.Len(t, spans, 2)
	for _, s := range spans {
		assert.Equal(t, "kshortest.FindKShortestPaths", s.Name())
	}

	ok := spans[0]
	id, found := attrOf(ok.Attributes(), "kshortest.search_id")
	require.True(t, found)
	assert.Equal(t, stats.SearchID, id.AsString())
	n, found := attrOf(ok.Attributes(), "kshortest.paths")
	require.True(t, found)
	assert.Equal(t, int64(2), n.AsInt64())
	assert.NotEqual(t, codes.Error, ok.Status().Code)

	failed := spans[1]
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.NotEmpty(t, failed.Events(), "error recorded as an event")
}

// TestTelemetry_DefaultProviders runs against the global no-op providers.
func TestTelemetry_DefaultProviders(t *testing.T) {
	eng := costEngine(t, 15, 30)
	paths, err := eng.FindKShortestPaths(context.Background(), "V1", "V5", 3)
	require.NoError(t, err)
	assert.Len(t, paths, 3)
}
