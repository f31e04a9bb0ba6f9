// SPDX-License-Identifier: MIT
// Package: tsbngen/sampler
//
// options.go — functional options for the Generator.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: WithSeed or WithRand fixes the master stream
//     from which per-series seeds are drawn.
//   • Options apply in order; the last one wins.

package sampler

import (
	"math/rand"

	"github.com/go-logr/logr"
)

// Option customizes a Generator before its first run.
type Option func(*generatorConfig)

// Deterministic defaults.
const (
	defaultSeed    = int64(1) // master seed when neither WithSeed nor WithRand is given
	defaultWorkers = 1        // series generated concurrently
)

// generatorConfig aggregates every Generator knob.
type generatorConfig struct {
	// rng is the master stream; per-series seeds are drawn from it.
	rng *rand.Rand
	// workers bounds the number of series sampled concurrently.
	workers int
	log     logr.Logger
}

// WithSeed seeds the master stream. Two generators built from the same model
// and seed produce identical output on their first Generate call.
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the master stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithWorkers bounds how many series are sampled concurrently. The output
// does not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sampler: WithWorkers(n<1)")
	}
	return func(c *generatorConfig) {
		c.workers = n
	}
}

// WithLogr routes run logs to log. The default discards them.
func WithLogr(log logr.Logger) Option {
	return func(c *generatorConfig) {
		c.log = log
	}
}

// newGeneratorConfig applies opts over the defaults.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		workers: defaultWorkers,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}
