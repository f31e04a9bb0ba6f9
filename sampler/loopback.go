package sampler

import (
	"github.com/katalvlaran/tsbngen/dbn"
	"github.com/katalvlaran/tsbngen/topology"
)

// slot is one resolved parent input: which buffer to read and how far back.
type slot struct {
	parent int // parent node id
	lag    int // declared lag; 0 for ordinary parents
	offset int // samples back from the most recent one in the parent's buffer
}

// read returns the parent value this slot designates.
func (s slot) read(buffers [][]float64) (float64, error) {
	buf := buffers[s.parent]
	i := len(buf) - 1 - s.offset
	if i < 0 {
		return 0, samplerErrorf("slot.read", ErrInvalidLoopback,
			"node %d lag %d needs %d completed samples, have %d", s.parent, s.lag, s.offset+1, len(buf))
	}

	return buf[i], nil
}

// loopbackResolver turns a node's parent list into read slots for one phase.
// The loopback map is never modified; consumption of a relation is tracked in
// a scope private to a single node's resolution.
type loopbackResolver struct {
	order     topology.Order
	loopbacks dbn.LoopbackMap
}

// resolve returns the slots of child, in parent-list order.
//
// For a parent p with an unconsumed entry (p, child) → lags, each lag m
// yields one slot: offset m when p is scheduled before child, otherwise
// (p at or after child, including p == child) offset m−1, because p has not
// been sampled yet in the current step. A parent without an entry
// contributes its most recent sample; a self-parent without one contributes
// nothing.
func (r loopbackResolver) resolve(child int, parents []int) ([]slot, error) {
	consumed := make(map[dbn.Relation]bool, len(parents))
	slots := make([]slot, 0, len(parents))
	for _, p := range parents {
		rel := dbn.Relation{Parent: p, Child: child}
		if lags, ok := r.loopbacks[rel]; ok && !consumed[rel] {
			consumed[rel] = true
			before := r.order.Before(p, child)
			for _, m := range lags {
				offset := m
				if !before {
					offset = m - 1
				}
				if offset < 0 {
					return nil, samplerErrorf("loopbackResolver.resolve", ErrInvalidLoopback,
						"relation %s: lag %d reads a value not yet sampled in this step", rel, m)
				}
				slots = append(slots, slot{parent: p, lag: m, offset: offset})
			}
			continue
		}
		if p == child {
			continue
		}
		slots = append(slots, slot{parent: p})
	}

	return slots, nil
}
