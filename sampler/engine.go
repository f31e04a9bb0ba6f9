package sampler

import (
	"math/rand"

	"github.com/katalvlaran/tsbngen/cpd"
	"github.com/katalvlaran/tsbngen/dbn"
)

// Engine samples one series, one step at a time. It owns the series'
// sample buffers and random stream; it is not safe for concurrent use. An
// Engine can be Reset and reused for the next series.
type Engine struct {
	net     *Network
	rng     *rand.Rand
	buffers [][]float64 // buffers[id] = samples of node id so far
	values  []int       // scratch: discrete parent values of the current node
}

// NewEngine returns an Engine with empty buffers drawing from rng.
func NewEngine(net *Network, rng *rand.Rand) *Engine {
	return &Engine{
		net:     net,
		rng:     rng,
		buffers: make([][]float64, len(net.nodes)),
	}
}

// Reset starts a new series: every buffer is dropped and the random stream
// is reseeded with seed. Per-node slices returned earlier by Buffers stay
// valid.
func (e *Engine) Reset(seed int64) {
	for i := range e.buffers {
		e.buffers[i] = nil
	}
	e.rng.Seed(seed)
}

// Buffers returns the per-node samples drawn so far. The outer slice is
// reused by Reset; the per-node slices are not.
func (e *Engine) Buffers() [][]float64 {
	return e.buffers
}

// Step samples every node once under phase, in topological order, and
// appends each draw to its node's buffer. On error the buffers are left as
// they were after the last successful node.
func (e *Engine) Step(phase dbn.Phase) error {
	plans, ok := e.net.plans[phase]
	if !ok {
		return samplerErrorf("Engine.Step", ErrValidation, "phase %s is not configured", phase)
	}
	for _, id := range e.net.sequence {
		v, err := e.sample(&plans[id])
		if err != nil {
			return samplerErrorf("Engine.Step", err, "%s node %d", phase, id)
		}
		e.buffers[id] = append(e.buffers[id], v)
	}

	return nil
}

// sample draws one value for plan's node from the current buffers.
func (e *Engine) sample(p *nodePlan) (float64, error) {
	// 1. Composite index of the discrete parent assignment
	index := 0
	if !p.root && len(p.discrete) > 0 {
		e.values = e.values[:0]
		for _, s := range p.discrete {
			v, err := s.read(e.buffers)
			if err != nil {
				return 0, err
			}
			e.values = append(e.values, int(v))
		}
		var err error
		if index, err = cpd.CompositeIndex(e.values, p.levels); err != nil {
			return 0, err
		}
	}

	// 2. Discrete node: categorical row
	if p.node.Type == dbn.Discrete {
		dist, err := p.entry.Distribution(index)
		if err != nil {
			return 0, err
		}
		return float64(cpd.DrawCategorical(e.rng, dist)), nil
	}

	// 3. Continuous node without continuous inputs: Gaussian row
	if len(p.terms) == 0 {
		m, err := p.entry.Moment(index)
		if err != nil {
			return 0, err
		}
		return cpd.DrawNormal(e.rng, m.Mean, m.Sigma), nil
	}

	// 4. Linear-Gaussian regression on the continuous inputs
	reg := p.entry.Regression
	predictor := 0.0
	for _, s := range p.terms {
		coef, err := reg.Coefficient(cpd.Term{Parent: s.parent, Lag: s.lag}, index)
		if err != nil {
			return 0, err
		}
		v, err := s.read(e.buffers)
		if err != nil {
			return 0, err
		}
		predictor += coef * v
	}
	interceptSigma, sigma, err := reg.Noise(index)
	if err != nil {
		return 0, err
	}

	return cpd.DrawRegression(e.rng, predictor, interceptSigma, sigma), nil
}
