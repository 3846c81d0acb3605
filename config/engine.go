// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rankpath/accumulator"
	"github.com/katalvlaran/rankpath/core"
	"github.com/katalvlaran/rankpath/kshortest"
	"github.com/katalvlaran/rankpath/visited"
)

// Options returns the kshortest options s describes.
func (s Search) Options() ([]kshortest.Option, error) {
	strategy, err := visited.ParseStrategy(s.Visited)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return []kshortest.Option{
		kshortest.WithMaxPasses(s.MaxPasses),
		kshortest.WithMaxHops(s.MaxHops),
		kshortest.WithParallelism(s.Parallelism),
		kshortest.WithVisitedStrategy(strategy),
	}, nil
}

// Accumulators builds one initialized accumulator per limit, in order.
func (s Search) Accumulators() ([]accumulator.Accumulator[*core.Edge], error) {
	out := make([]accumulator.Accumulator[*core.Edge], 0, len(s.Limits))
	for i, l := range s.Limits {
		a, err := l.accumulator()
		if err != nil {
			return nil, fmt.Errorf("%w: limits[%d]: %w", ErrInvalidConfig, i, err)
		}
		out = append(out, a)
	}

	return out, nil
}

func (l Limit) accumulator() (accumulator.Accumulator[*core.Edge], error) {
	attr := func(e *core.Edge) float64 { return e.AttrOr(l.Attr, 0) }
	switch l.Kind {
	case KindSum:
		s := accumulator.NewSum[float64, *core.Edge](attr).Init(0, l.Max)
		if l.Inclusive {
			s.Inclusive()
		}
		return s, nil
	case KindBottleneck:
		// A missing attribute reads as zero capacity.
		return accumulator.NewBottleneck[float64, *core.Edge](attr).Init(math.Inf(1), l.Max), nil
	case KindHops:
		if l.Max < 0 || l.Max != math.Trunc(l.Max) {
			return nil, fmt.Errorf("hops max %g must be a non-negative integer", l.Max)
		}
		return accumulator.NewHops[*core.Edge]().Init(0, int(l.Max)), nil
	case KindLabels:
		label := func(e *core.Edge) string { return e.Label }
		return accumulator.NewSet[string, *core.Edge](label).Init(nil, l.Forbid), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", l.Kind)
	}
}

// Engine validates s, builds an engine over g with s's options followed by
// extra, and registers every limit.
func (s Search) Engine(g *core.Graph, extra ...kshortest.Option) (*kshortest.Engine[string, *core.Edge], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	accs, err := s.Accumulators()
	if err != nil {
		return nil, err
	}

	eng, err := kshortest.NewCoreEngine(g, append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	for _, a := range accs {
		if err = eng.RegisterAccumulator(a); err != nil {
			return nil, err
		}
	}

	return eng, nil
}
