// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rankpath/core"
)

// attrSpec binds an edge attribute key to the distribution it is drawn from.
type attrSpec struct {
	key string
	fn  WeightFn
}

// builderConfig is the resolved option set handed to every Constructor.
type builderConfig struct {
	idFn     IDFn       // vertex index → ID
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // ranking weight per edge
	attrs    []attrSpec // numeric attributes, drawn in registration order
	labels   []string   // optional label pool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeOptions draws the attributes and label of one edge.
// The weight must already be drawn so that the RNG sequence stays fixed.
func (c builderConfig) edgeOptions() []core.EdgeOption {
	if len(c.attrs) == 0 && len(c.labels) == 0 {
		return nil
	}
	opts := make([]core.EdgeOption, 0, len(c.attrs)+1)
	for _, a := range c.attrs {
		opts = append(opts, core.WithEdgeAttr(a.key, a.fn(c.rng)))
	}
	if len(c.labels) > 0 {
		idx := 0
		if c.rng != nil {
			idx = c.rng.Intn(len(c.labels))
		}
		opts = append(opts, core.WithEdgeLabel(c.labels[idx]))
	}

	return opts
}
