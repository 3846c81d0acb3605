// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption configures a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for every stochastic draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the distribution of edge weights. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAttr attaches a numeric attribute key to every edge, drawn from fn.
// Repeating a key replaces its distribution while keeping its draw position.
// Panics on an empty key or nil fn.
func WithAttr(key string, fn WeightFn) BuilderOption {
	if key == "" || fn == nil {
		panic(fmt.Sprintf("builder: WithAttr(%q, fn) requires a key and a non-nil fn", key))
	}
	return func(c *builderConfig) {
		for i := range c.attrs {
			if c.attrs[i].key == key {
				c.attrs[i].fn = fn
				return
			}
		}
		c.attrs = append(c.attrs, attrSpec{key: key, fn: fn})
	}
}

// WithLabels gives every edge one label chosen uniformly from labels
// (always the first label when no RNG is configured). Panics when empty.
func WithLabels(labels ...string) BuilderOption {
	if len(labels) == 0 {
		panic("builder: WithLabels requires at least one label")
	}
	pool := append([]string(nil), labels...)
	return func(c *builderConfig) {
		c.labels = pool
	}
}
