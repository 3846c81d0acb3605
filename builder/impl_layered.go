// SPDX-License-Identifier: MIT
//
// impl_layered.go - implementation of Layered(layers, width, p) constructor.
//
// Canonical model:
//   - A directed acyclic "routing fabric": one source, `layers` layers of
//     `width` vertices each, one sink.
//   - source → every vertex of layer 0; every vertex of the last layer → sink.
//   - Layer l vertex c always links to layer l+1 vertex c; each other pair
//     (c, d) of consecutive layers links with probability p.
//   - The number of source→sink paths grows roughly as width^layers·p^layers,
//     which makes the fabric a good stress case for K-best ranking.
//
// Contract:
//   - layers ≥ 1, width ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability); rng required when 0 < p < 1.
//   - g must be directed (else ErrUnsupportedGraphMode).
//
// IDs:
//   - index 0 is the source, 1+l*width+c is (l,c), 1+layers*width is the sink;
//     LayeredEnds reports the source and sink IDs for a given config.
//
// Determinism:
//   - Edges emitted source fan-out first, then per layer l asc, c asc, d asc,
//     then sink fan-in.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rankpath/core"
)

const (
	methodLayered = "Layered"
	minLayers     = 1
	minWidth      = 1
)

// Layered returns a Constructor that builds a layered DAG between a source
// and a sink.
func Layered(layers, width int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters and mode.
		if layers < minLayers || width < minWidth {
			return fmt.Errorf("%s: layers=%d, width=%d (min %d, %d): %w",
				methodLayered, layers, width, minLayers, minWidth, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodLayered, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodLayered, ErrNeedRandSource)
		}
		if !g.Directed() {
			return fmt.Errorf("%s: graph must be directed: %w", methodLayered, ErrUnsupportedGraphMode)
		}

		// 2) Add source, layer vertices, sink.
		ids, err := addVertices(g, cfg, methodLayered, layers*width+2)
		if err != nil {
			return err
		}
		at := func(l, c int) string { return ids[1+l*width+c] }
		source, sink := ids[0], ids[len(ids)-1]

		// 3) Source fan-out.
		for c := 0; c < width; c++ {
			if err = connect(g, cfg, methodLayered, source, at(0, c)); err != nil {
				return err
			}
		}
		// 4) Inter-layer links.
		for l := 0; l+1 < layers; l++ {
			for c := 0; c < width; c++ {
				for d := 0; d < width; d++ {
					if c != d && !bernoulli(cfg, p) {
						continue
					}
					if err = connect(g, cfg, methodLayered, at(l, c), at(l+1, d)); err != nil {
						return err
					}
				}
			}
		}
		// 5) Sink fan-in.
		for c := 0; c < width; c++ {
			if err = connect(g, cfg, methodLayered, at(layers-1, c), sink); err != nil {
				return err
			}
		}

		return nil
	}
}

// LayeredEnds returns the source and sink IDs Layered(layers, width, _)
// assigns under the given options' ID scheme.
func LayeredEnds(layers, width int, opts ...BuilderOption) (source, sink string) {
	cfg := newBuilderConfig(opts...)

	return cfg.idFn(0), cfg.idFn(1 + layers*width)
}
