// topological.go — the node schedule of a DBN time step.
//
// TopologicalOrder computes a linear ordering of node ids such that for every
// edge u→v, u appears before v. Nodes that become ready at the same time are
// released in ascending id order, so the order is a pure function of the graph.
//
// Complexity:
//
//   - Time:   O(n²) (dense adjacency scan per dequeued node)
//   - Memory: O(n)

package topology

import "context"

// TopoOption configures optional behavior for TopologicalOrder.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalOrder, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Order is a topological order together with the inverse position table.
type Order struct {
	ids []int // ids in schedule order
	pos []int // pos[id] = index of id in ids
}

// IDs returns a copy of the ordered node ids.
func (o Order) IDs() []int {
	out := make([]int, len(o.ids))
	copy(out, o.ids)

	return out
}

// Len returns the number of scheduled nodes.
func (o Order) Len() int {
	return len(o.ids)
}

// Position returns the index of id in the order, or -1 for unknown ids.
func (o Order) Position(id int) int {
	if id < 0 || id >= len(o.pos) {
		return -1
	}

	return o.pos[id]
}

// Before reports whether a is scheduled strictly before b.
func (o Order) Before(a, b int) bool {
	pa, pb := o.Position(a), o.Position(b)

	return pa >= 0 && pb >= 0 && pa < pb
}

// TopologicalOrder runs Kahn's algorithm over g.
// If g is nil, returns ErrGraphNil.
// If fewer than g.Size() nodes can be placed, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalOrder(g *Graph, options ...TopoOption) (Order, error) {
	// 1. Validate graph pointer
	if g == nil {
		return Order{}, topologyErrorf("TopologicalOrder", ErrGraphNil, "")
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. In-degree per node (column sums)
	n := g.n
	inDegree := make([]int, n)
	for j := 0; j < n; j++ {
		inDegree[j] = g.InDegree(j)
	}
	// 4. Seed the FIFO queue with zero in-degree nodes, ascending id
	queue := make([]int, 0, n)
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// 5. Drain: dequeue, record, release children whose in-degree hits zero
	ids := make([]int, 0, n)
	for len(queue) > 0 {
		select {
		case <-opts.ctx.Done():
			return Order{}, opts.ctx.Err()
		default:
		}
		id := queue[0]
		queue = queue[1:]
		ids = append(ids, id)
		row := g.data[id*n : (id+1)*n]
		for child, edge := range row {
			if edge == 0 {
				continue
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	// 6. Anything left unplaced sits on a cycle
	if len(ids) != n {
		return Order{}, topologyErrorf("TopologicalOrder", ErrCycleDetected, "placed %d of %d nodes", len(ids), n)
	}
	// 7. Inverse table for O(1) position lookups
	pos := make([]int, n)
	for i, id := range ids {
		pos[id] = i
	}

	return Order{ids: ids, pos: pos}, nil
}
