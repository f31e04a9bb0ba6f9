// SPDX-License-Identifier: MIT
// Package: tsbngen/sampler
//
// generator.go — N independent series of length T from a compiled Network.
//
// Flow of one Generate call:
//   1. Validate N and T.
//   2. Draw N per-series seeds from the master stream, sequentially, so the
//      output does not depend on the worker count.
//   3. Fan out over an errgroup bounded by the worker count; each series
//      takes an Engine from the pool, resets it to its seed and walks the
//      phase schedule step by step.
//   4. Assemble Result or, on the first error, return no output at all.

package sampler

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tsbngen/dbn"
)

// Generator produces batches of series from one compiled model. Generate may
// be called concurrently; calls share the master stream, so only sequential
// calls are reproducible.
type Generator struct {
	net     *Network
	cfg     generatorConfig
	mu      sync.Mutex // guards cfg.rng
	engines sync.Pool  // *Engine, reset per series
}

// NewGenerator compiles m and returns a Generator for it. Every Compile error
// is returned unchanged.
func NewGenerator(m Model, opts ...Option) (*Generator, error) {
	net, err := Compile(m)
	if err != nil {
		return nil, err
	}

	return NewGeneratorFor(net, opts...), nil
}

// NewGeneratorFor returns a Generator over an already compiled network.
func NewGeneratorFor(net *Network, opts ...Option) *Generator {
	g := &Generator{net: net, cfg: newGeneratorConfig(opts...)}
	g.engines.New = func() any {
		return NewEngine(net, rand.New(rand.NewSource(0)))
	}

	return g
}

// Network returns the compiled network the generator samples from.
func (g *Generator) Network() *Network {
	return g.net
}

// Generate draws n independent series of length steps each.
// Errors: ErrValidation for n < 1 or length < 1, ErrInvalidLoopback,
// cpd lookup errors, or ctx.Err() when canceled. No partial output is
// returned.
func (g *Generator) Generate(ctx context.Context, n, length int) (*Result, error) {
	// 1. Run parameters
	if n < 1 {
		return nil, samplerErrorf("Generate", ErrValidation, "series count %d", n)
	}
	if length < 1 {
		return nil, samplerErrorf("Generate", ErrValidation, "series length %d", length)
	}

	// 2. Per-series seeds
	seeds := g.seeds(n)

	runID := uuid.NewString()
	sched := g.net.Schedule(length)
	log := g.cfg.log.WithValues("run", runID)
	log.Info("generating", "series", n, "length", length, "switch", sched.Switch,
		"secondary", sched.Secondary, "workers", g.cfg.workers)
	start := time.Now()

	size := len(g.net.nodes)
	series := make(map[int][][]float64, size)
	for id := 0; id < size; id++ {
		series[id] = make([][]float64, n)
	}

	// 3. Fan out
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.cfg.workers)
	for s := 0; s < n; s++ {
		s := s
		grp.Go(func() error {
			buffers, err := g.run(gctx, sched, seeds[s])
			if err != nil {
				return fmt.Errorf("series %d: %w", s, err)
			}
			for id, buf := range buffers {
				series[id][s] = buf
			}
			log.V(1).Info("series done", "series", s)

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		log.Error(err, "generation failed")
		return nil, fmt.Errorf("Generate: %w", err)
	}

	// 4. Assemble
	log.Info("generated", "elapsed", time.Since(start))

	return &Result{
		RunID:  runID,
		Length: length,
		Nodes:  g.net.Nodes(),
		Series: series,
	}, nil
}

// seeds draws n series seeds from the master stream.
func (g *Generator) seeds(n int) []int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		out[i] = g.cfg.rng.Int63()
	}

	return out
}

// run samples one full series with its own random stream.
func (g *Generator) run(ctx context.Context, sched Schedule, seed int64) ([][]float64, error) {
	engine := g.engines.Get().(*Engine)
	defer g.engines.Put(engine)
	engine.Reset(seed)
	for step := 0; step < sched.Length; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		phase := sched.PhaseAt(step)
		if err := engine.Step(phase); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", step, phase, err)
		}
	}

	return slices.Clone(engine.Buffers()), nil
}

// PhaseSteps reports, for a series of the given length, how many steps each
// phase governs. It is a convenience over Network().Schedule(length).Steps().
func (g *Generator) PhaseSteps(length int) map[dbn.Phase]int {
	return g.net.Schedule(length).Steps()
}
