// SPDX-License-Identifier: MIT
// Package: tsbngen/cpd
//
// registry.go — phase-scoped CPD lookup.
//
// Contract:
//   • A Registry is filled by the caller before a run and read concurrently
//     during it; it is never mutated by the engine.
//   • Lookup fails with ErrMissingEntry; Check verifies an Entry carries every
//     row and term a node's declared structure will ask for.

package cpd

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry holds the CPD entries of every phase, keyed by (phase, node).
type Registry struct {
	entries map[Key]*Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Key]*Entry)}
}

// Set stores e under (phase, node), replacing any previous entry.
func (r *Registry) Set(key Key, e *Entry) {
	r.entries[key] = e
}

// Lookup returns the entry stored under key.
func (r *Registry) Lookup(key Key) (*Entry, error) {
	if r == nil {
		return nil, cpdErrorf("Registry.Lookup", ErrMissingEntry, "nil registry")
	}
	e, ok := r.entries[key]
	if !ok || e == nil {
		return nil, cpdErrorf("Registry.Lookup", ErrMissingEntry, "phase=%s node=%d", key.Phase, key.Node)
	}

	return e, nil
}

// Keys returns the stored keys ordered by phase, then node id.
func (r *Registry) Keys() []Key {
	keys := maps.Keys(r.entries)
	slices.SortFunc(keys, func(a, b Key) bool {
		if a.Phase != b.Phase {
			return a.Phase < b.Phase
		}
		return a.Node < b.Node
	})

	return keys
}

// Shape is the structure a node's entry must cover in one phase.
type Shape struct {
	Continuous bool   // node type
	Levels     int    // outcomes per categorical row of a discrete node; 0 skips the check
	Rows       int    // composite index rows of the discrete parent assignment
	Terms      []Term // continuous inputs; empty means Moments are used
}

// Check verifies that e can serve every lookup Shape implies and that every
// parameter it will use is well formed.
func (e *Entry) Check(s Shape) error {
	// 1. Discrete node: one valid categorical row per composite index
	if !s.Continuous {
		if len(e.Categorical) < s.Rows {
			return cpdErrorf("Entry.Check", ErrMissingEntry, "%d categorical rows, need %d", len(e.Categorical), s.Rows)
		}
		for i := 0; i < s.Rows; i++ {
			if err := e.Categorical[i].Validate(); err != nil {
				return cpdErrorf("Entry.Check", err, "row %d", i)
			}
			if s.Levels > 0 && len(e.Categorical[i]) != s.Levels {
				return cpdErrorf("Entry.Check", ErrInvalidDistribution, "row %d has %d outcomes, node has %d levels", i, len(e.Categorical[i]), s.Levels)
			}
		}
		return nil
	}
	// 2. Continuous node without continuous inputs: Moments rows
	if len(s.Terms) == 0 {
		if len(e.Moments) < s.Rows {
			return cpdErrorf("Entry.Check", ErrMissingEntry, "%d gaussian rows, need %d", len(e.Moments), s.Rows)
		}
		for i := 0; i < s.Rows; i++ {
			if err := e.Moments[i].Validate(); err != nil {
				return cpdErrorf("Entry.Check", err, "row %d", i)
			}
		}
		return nil
	}
	// 3. Continuous node with continuous inputs: regression rows and terms
	reg := e.Regression
	if reg == nil {
		return cpdErrorf("Entry.Check", ErrMissingEntry, "no regression for %d continuous inputs", len(s.Terms))
	}
	for i := 0; i < s.Rows; i++ {
		is, sigma, err := reg.Noise(i)
		if err != nil {
			return err
		}
		if err = validSigma("Entry.Check", is); err != nil {
			return err
		}
		if err = validSigma("Entry.Check", sigma); err != nil {
			return err
		}
		for _, term := range s.Terms {
			c, err := reg.Coefficient(term, i)
			if err != nil {
				return err
			}
			if !finite(c) {
				return cpdErrorf("Entry.Check", ErrInvalidSigma, "coefficient parent=%d lag=%d row %d is %g", term.Parent, term.Lag, i, c)
			}
		}
	}

	return nil
}
