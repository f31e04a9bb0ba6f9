package sampler_test

import (
	"github.com/katalvlaran/tsbngen/cpd"
	"github.com/katalvlaran/tsbngen/dbn"
	"github.com/katalvlaran/tsbngen/sampler"
)

// mixedModel is the chain 0→1: a two-level discrete node with a first-order
// self dependency driving a continuous node whose mean depends on its level.
//
//	level 1 → Normal(0, 1), level 2 → Normal(10, 1)
func mixedModel() sampler.Model {
	reg := cpd.NewRegistry()
	gauss := &cpd.Entry{Moments: []cpd.Moments{{Mean: 0, Sigma: 1}, {Mean: 10, Sigma: 1}}}
	reg.Set(cpd.Key{Phase: dbn.Initial, Node: 0}, &cpd.Entry{Categorical: []cpd.Categorical{{0.5, 0.5}}})
	reg.Set(cpd.Key{Phase: dbn.Initial, Node: 1}, gauss)
	reg.Set(cpd.Key{Phase: dbn.Recurring, Node: 0}, &cpd.Entry{
		Categorical: []cpd.Categorical{{0.8, 0.2}, {0.2, 0.8}},
	})
	reg.Set(cpd.Key{Phase: dbn.Recurring, Node: 1}, gauss)

	return sampler.Model{
		Nodes: []dbn.Node{
			{ID: 0, Type: dbn.Discrete, Levels: 2},
			{ID: 1, Type: dbn.Continuous},
		},
		Adjacency: [][]int{{0, 1}, {0, 0}},
		Initial:   sampler.PhaseConfig{Parents: dbn.ParentMap{1: {0}}},
		Recurring: sampler.PhaseConfig{
			Parents:   dbn.ParentMap{0: {0}, 1: {0}},
			Loopbacks: dbn.LoopbackMap{{Parent: 0, Child: 0}: {1}},
		},
		CPDs: reg,
	}
}

// regression is a noiseless single-row linear-Gaussian entry.
func regression(terms map[cpd.Term]float64) *cpd.Entry {
	r := &cpd.Regression{
		Terms:          make(map[cpd.Term][]float64, len(terms)),
		InterceptSigma: []float64{0},
		Sigma:          []float64{0},
	}
	for term, c := range terms {
		r.Terms[term] = []float64{c}
	}

	return &cpd.Entry{Regression: r}
}

// linearModel is the continuous chain 0→1 with noiseless CPDs, so every
// sample is exact:
//
//	initial:    x0 = 5                x1 = 2·x0
//	recurring:  x0 = 2·x0[t−1]        x1 = 3·x0[t−1]
//	secondary:  x0 = x0[t−1]          x1 = x0[t−2]   (from step 2)
func linearModel() sampler.Model {
	reg := cpd.NewRegistry()
	reg.Set(cpd.Key{Phase: dbn.Initial, Node: 0}, &cpd.Entry{Moments: []cpd.Moments{{Mean: 5}}})
	reg.Set(cpd.Key{Phase: dbn.Initial, Node: 1}, regression(map[cpd.Term]float64{{Parent: 0}: 2}))
	reg.Set(cpd.Key{Phase: dbn.Recurring, Node: 0}, regression(map[cpd.Term]float64{{Parent: 0, Lag: 1}: 2}))
	reg.Set(cpd.Key{Phase: dbn.Recurring, Node: 1}, regression(map[cpd.Term]float64{{Parent: 0, Lag: 1}: 3}))
	reg.Set(cpd.Key{Phase: dbn.SecondaryRecurring, Node: 0}, regression(map[cpd.Term]float64{{Parent: 0, Lag: 1}: 1}))
	reg.Set(cpd.Key{Phase: dbn.SecondaryRecurring, Node: 1}, regression(map[cpd.Term]float64{{Parent: 0, Lag: 2}: 1}))

	return sampler.Model{
		Nodes: []dbn.Node{
			{ID: 0, Type: dbn.Continuous},
			{ID: 1, Type: dbn.Continuous},
		},
		Adjacency: [][]int{{0, 1}, {0, 0}},
		Initial:   sampler.PhaseConfig{Parents: dbn.ParentMap{1: {0}}},
		Recurring: sampler.PhaseConfig{
			Parents: dbn.ParentMap{0: {0}, 1: {0}},
			Loopbacks: dbn.LoopbackMap{
				{Parent: 0, Child: 0}: {1},
				{Parent: 0, Child: 1}: {1},
			},
		},
		Secondary: &sampler.PhaseConfig{
			Parents: dbn.ParentMap{0: {0}, 1: {0}},
			Loopbacks: dbn.LoopbackMap{
				{Parent: 0, Child: 0}: {1},
				{Parent: 0, Child: 1}: {2},
			},
		},
		CPDs: reg,
	}
}
