// SPDX-License-Identifier: MIT
// Package: tsbngen/topology
//
// graph.go — dense 0/1 adjacency over integer node ids.
//
// Contract:
//   • Row = parent, column = child; entry 1 means an edge parent→child.
//   • Storage is flat row-major, length n*n; the Graph is read-only after NewGraph.
//   • Parents/Children are returned in ascending id order.

package topology

// Graph is a square 0/1 adjacency matrix describing the intra-step DAG.
type Graph struct {
	n    int     // node count
	data []uint8 // flat row-major storage, len == n*n
}

// NewGraph validates adj and copies it into a Graph.
// Stage 1 (Validate): non-empty, square, entries in {0,1}.
// Stage 2 (Finalize): copy into flat storage.
// Complexity: O(n²) time and memory.
func NewGraph(adj [][]int) (*Graph, error) {
	// 1. Shape check
	n := len(adj)
	if n == 0 {
		return nil, topologyErrorf("NewGraph", ErrNonSquare, "empty matrix")
	}
	data := make([]uint8, n*n)
	for i, row := range adj {
		if len(row) != n {
			return nil, topologyErrorf("NewGraph", ErrNonSquare, "row %d has %d columns, want %d", i, len(row), n)
		}
		// 2. Entry check while copying
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				data[i*n+j] = 1
			default:
				return nil, topologyErrorf("NewGraph", ErrNonBinary, "entry (%d,%d)=%d", i, j, v)
			}
		}
	}

	return &Graph{n: n, data: data}, nil
}

// Size returns the number of nodes.
func (g *Graph) Size() int {
	return g.n
}

// HasEdge reports whether parent→child is an edge. Out-of-range ids report false.
func (g *Graph) HasEdge(parent, child int) bool {
	if !g.valid(parent) || !g.valid(child) {
		return false
	}

	return g.data[parent*g.n+child] == 1
}

// Children returns the ids with an incoming edge from id, ascending.
func (g *Graph) Children(id int) ([]int, error) {
	if !g.valid(id) {
		return nil, topologyErrorf("Children", ErrUnknownNode, "id %d", id)
	}
	var out []int
	row := g.data[id*g.n : (id+1)*g.n]
	for j, v := range row {
		if v == 1 {
			out = append(out, j)
		}
	}

	return out, nil
}

// Parents returns the ids with an edge into id, ascending.
func (g *Graph) Parents(id int) ([]int, error) {
	if !g.valid(id) {
		return nil, topologyErrorf("Parents", ErrUnknownNode, "id %d", id)
	}
	var out []int
	for i := 0; i < g.n; i++ {
		if g.data[i*g.n+id] == 1 {
			out = append(out, i)
		}
	}

	return out, nil
}

// Descendants returns id followed by every node reachable from it, in
// breadth-first order; children of one node are visited ascending.
// Complexity: O(n²) on the dense matrix.
func (g *Graph) Descendants(id int) ([]int, error) {
	if !g.valid(id) {
		return nil, topologyErrorf("Descendants", ErrUnknownNode, "id %d", id)
	}
	seen := make([]bool, g.n)
	seen[id] = true
	out := []int{id}
	for head := 0; head < len(out); head++ {
		u := out[head]
		for v := 0; v < g.n; v++ {
			if g.data[u*g.n+v] == 1 && !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}

	return out, nil
}

// InDegree returns the column sum for id (0 for unknown ids).
func (g *Graph) InDegree(id int) int {
	if !g.valid(id) {
		return 0
	}
	deg := 0
	for i := 0; i < g.n; i++ {
		deg += int(g.data[i*g.n+id])
	}

	return deg
}

func (g *Graph) valid(id int) bool {
	return id >= 0 && id < g.n
}
