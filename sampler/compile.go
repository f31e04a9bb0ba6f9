// SPDX-License-Identifier: MIT
// Package: tsbngen/sampler
//
// compile.go — Model → Network: ordering, validation and per-node plans.
//
// Stages:
//   1. Structure: adjacency ingestion and Kahn ordering (fatal on first error).
//   2. Validation: every violation across all phases is collected with
//      multierr and reported together, before any plan is built.
//   3. Plans: loopback resolution and CPD lookups per (phase, node); entries
//      are checked against the rows and terms the plan will request.

package sampler

import (
	"fmt"

	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tsbngen/cpd"
	"github.com/katalvlaran/tsbngen/dbn"
	"github.com/katalvlaran/tsbngen/topology"
)

// Compile validates m and precomputes everything sampling needs.
// Errors: topology.ErrNonSquare/ErrNonBinary/ErrCycleDetected, ErrValidation,
// ErrInvalidLoopback (lag 0 on a parent not yet sampled), cpd.ErrMissingEntry
// and the cpd parameter errors.
func Compile(m Model) (*Network, error) {
	// 1. Structure
	g, err := topology.NewGraph(m.Adjacency)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}
	order, err := topology.TopologicalOrder(g)
	if err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}
	net := &Network{
		nodes:      append([]dbn.Node(nil), m.Nodes...),
		graph:      g,
		order:      order,
		sequence:   order.IDs(),
		roles:      topology.AssignRoles(g),
		phases:     map[dbn.Phase]PhaseConfig{dbn.Initial: m.Initial, dbn.Recurring: m.Recurring},
		plans:      make(map[dbn.Phase][]nodePlan, len(dbn.Phases)),
		switchTime: m.SwitchTime,
	}
	if m.Secondary != nil {
		net.phases[dbn.SecondaryRecurring] = *m.Secondary
		net.maxLag = m.Secondary.Loopbacks.MaxLag()
	}

	// 2. Validation
	if err = net.validate(); err != nil {
		return nil, fmt.Errorf("Compile: %w", err)
	}

	// 3. Plans
	var errs error
	for _, phase := range dbn.Phases {
		if _, ok := net.phases[phase]; !ok {
			continue
		}
		plans, err := net.buildPlans(phase, m.CPDs)
		errs = multierr.Append(errs, err)
		net.plans[phase] = plans
	}
	if errs != nil {
		return nil, fmt.Errorf("Compile: %w", errs)
	}

	return net, nil
}

// validate collects every structural violation of the model.
func (n *Network) validate() error {
	var errs error
	size := n.graph.Size()

	// 1. Node table
	if len(n.nodes) != size {
		return validationErrorf("nodes", "%d nodes for a %dx%d adjacency matrix", len(n.nodes), size, size)
	}
	for i, node := range n.nodes {
		if node.ID != i {
			errs = multierr.Append(errs, validationErrorf("nodes", "node at index %d has id %d", i, node.ID))
		}
		switch node.Type {
		case dbn.Discrete:
			if node.Levels < 1 {
				errs = multierr.Append(errs, validationErrorf("nodes", "discrete node %d has %d levels", i, node.Levels))
			}
		case dbn.Continuous:
		default:
			errs = multierr.Append(errs, validationErrorf("nodes", "node %d has unknown type %s", i, node.Type))
		}
	}
	if errs != nil {
		return errs
	}

	// 2. Per-phase parents and loopbacks
	for _, phase := range dbn.Phases {
		cfg, ok := n.phases[phase]
		if !ok {
			continue
		}
		errs = multierr.Append(errs, n.validatePhase(phase, cfg))
	}

	// 3. Run parameters
	switch {
	case n.switchTime < 0:
		errs = multierr.Append(errs, validationErrorf("switch", "negative switch time %d", n.switchTime))
	case n.switchTime > 0 && !n.HasSecondary():
		errs = multierr.Append(errs, validationErrorf("switch", "switch time %d without a secondary phase", n.switchTime))
	case n.switchTime > 0 && n.switchTime < n.maxLag:
		errs = multierr.Append(errs, validationErrorf("switch", "switch time %d below largest secondary lag %d", n.switchTime, n.maxLag))
	}

	return errs
}

// validatePhase checks one phase's parent and loopback maps.
func (n *Network) validatePhase(phase dbn.Phase, cfg PhaseConfig) error {
	var errs error
	scope := phase.String()
	size := len(n.nodes)
	children := maps.Keys(cfg.Parents)
	slices.Sort(children)

	for _, child := range children {
		if child < 0 || child >= size {
			errs = multierr.Append(errs, validationErrorf(scope, "parent list for unknown node %d", child))
			continue
		}
		parents := cfg.Parents[child]
		if phase == dbn.Initial && n.roles[child] == topology.Root && len(parents) > 0 {
			errs = multierr.Append(errs, validationErrorf(scope, "root node %d declares parents %v", child, parents))
		}
		for _, p := range parents {
			if p < 0 || p >= size {
				errs = multierr.Append(errs, validationErrorf(scope, "node %d has unknown parent %d", child, p))
				continue
			}
			if n.nodes[child].Type == dbn.Discrete && n.nodes[p].Type == dbn.Continuous {
				errs = multierr.Append(errs, validationErrorf(scope, "discrete node %d has continuous parent %d", child, p))
			}
			if phase == dbn.Initial && !n.order.Before(p, child) {
				errs = multierr.Append(errs, validationErrorf(scope, "parent %d is not scheduled before node %d", p, child))
			}
		}
	}

	if phase == dbn.Initial && len(cfg.Loopbacks) > 0 {
		errs = multierr.Append(errs, validationErrorf(scope, "loopbacks are not allowed at step 0"))
	}
	relations := maps.Keys(cfg.Loopbacks)
	slices.SortFunc(relations, func(a, b dbn.Relation) bool {
		if a.Child != b.Child {
			return a.Child < b.Child
		}
		return a.Parent < b.Parent
	})
	for _, rel := range relations {
		if !slices.Contains(cfg.Parents[rel.Child], rel.Parent) {
			errs = multierr.Append(errs, validationErrorf(scope, "loopback %s is not a declared parent relation", rel))
		}
		for _, lag := range cfg.Loopbacks[rel] {
			if lag < 0 {
				errs = multierr.Append(errs, validationErrorf(scope, "loopback %s has negative lag %d", rel, lag))
			}
		}
	}

	return errs
}

// buildPlans resolves every node of phase into a nodePlan.
func (n *Network) buildPlans(phase dbn.Phase, registry *cpd.Registry) ([]nodePlan, error) {
	var errs error
	cfg := n.phases[phase]
	resolver := loopbackResolver{order: n.order, loopbacks: cfg.Loopbacks}
	plans := make([]nodePlan, len(n.nodes))

	for _, id := range n.sequence {
		node := n.nodes[id]
		parents := cfg.Parents[id]
		plan := nodePlan{node: node, root: phase == dbn.Initial && n.roles[id] == topology.Root}

		// 1. Parent slots, split by parent type
		if !plan.root {
			slots, err := resolver.resolve(id, parents)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", phase, err))
				continue
			}
			for _, s := range slots {
				if n.nodes[s.parent].Type == dbn.Discrete {
					plan.discrete = append(plan.discrete, s)
					plan.levels = append(plan.levels, n.nodes[s.parent].Levels)
				} else {
					plan.terms = append(plan.terms, s)
				}
			}
		}

		// 2. CPD entry for this context
		entry, err := registry.Lookup(cpd.Key{Phase: phase, Node: id})
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if entry.Parents != nil && !slices.Equal(entry.Parents, parents) {
			errs = multierr.Append(errs, samplerErrorf("buildPlans", cpd.ErrMissingEntry,
				"%s node %d: entry authored for parents %v, phase declares %v", phase, id, entry.Parents, parents))
			continue
		}
		shape := cpd.Shape{Continuous: node.Type == dbn.Continuous, Rows: cpd.Rows(plan.levels)}
		if node.Type == dbn.Discrete {
			shape.Levels = node.Levels
		}
		for _, s := range plan.terms {
			shape.Terms = append(shape.Terms, cpd.Term{Parent: s.parent, Lag: s.lag})
		}
		if err = entry.Check(shape); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s node %d: %w", phase, id, err))
			continue
		}
		plan.entry = entry
		plans[id] = plan
	}

	return plans, errs
}
