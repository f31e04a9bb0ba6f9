package sampler

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tsbngen/cpd"
	"github.com/katalvlaran/tsbngen/dbn"
	"github.com/katalvlaran/tsbngen/topology"
)

// PhaseConfig is the structure of one phase: parents per node and, for the
// recurring phases, the loopback lags per relation.
type PhaseConfig struct {
	Parents   dbn.ParentMap
	Loopbacks dbn.LoopbackMap
}

// Model is the caller-supplied description of a network. It is read-only
// for the engine; Compile copies what it needs.
type Model struct {
	// Nodes indexed by id; Nodes[i].ID must equal i.
	Nodes []dbn.Node
	// Adjacency is the square 0/1 matrix of the initial-time network.
	Adjacency [][]int
	// Initial, Recurring and (optional) Secondary phase structures.
	Initial   PhaseConfig
	Recurring PhaseConfig
	Secondary *PhaseConfig
	// CPDs for every phase, keyed by (phase, node).
	CPDs *cpd.Registry
	// SwitchTime is the first step governed by Secondary; 0 derives it from
	// the largest secondary lag.
	SwitchTime int
}

// nodePlan is the precomputed sampling recipe of one node in one phase.
type nodePlan struct {
	node     dbn.Node
	entry    *cpd.Entry
	discrete []slot // discrete parent inputs, in parent-list order
	levels   []int  // level count per discrete slot
	terms    []slot // continuous parent inputs
	root     bool   // unconditional draw, no parent reads
}

// Network is a compiled, validated Model. It is immutable and safe to share
// between concurrently generated series.
type Network struct {
	nodes      []dbn.Node
	graph      *topology.Graph
	order      topology.Order
	sequence   []int // order.IDs(), cached for the sampling loop
	roles      []topology.Role
	phases     map[dbn.Phase]PhaseConfig
	plans      map[dbn.Phase][]nodePlan // plans[phase][id]
	maxLag     int                      // largest secondary lag
	switchTime int
}

// Order returns the topological schedule every step follows.
func (n *Network) Order() []int {
	return n.order.IDs()
}

// Roles returns the Root/NonRoot label of every node, indexed by id.
func (n *Network) Roles() []topology.Role {
	out := make([]topology.Role, len(n.roles))
	copy(out, n.roles)

	return out
}

// Nodes returns the node table, indexed by id.
func (n *Network) Nodes() []dbn.Node {
	out := make([]dbn.Node, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// HasSecondary reports whether a SecondaryRecurring phase is configured.
func (n *Network) HasSecondary() bool {
	_, ok := n.phases[dbn.SecondaryRecurring]

	return ok
}

// Schedule returns the phase schedule for series of the given length.
func (n *Network) Schedule(length int) Schedule {
	return NewSchedule(length, n.switchTime, n.maxLag, n.HasSecondary())
}

// Describe summarizes the compiled network for logs and the CLI.
func (n *Network) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "nodes: %d\n", len(n.nodes))
	fmt.Fprintf(&b, "order: %v\n", n.order.IDs())
	fmt.Fprintf(&b, "roles: %v\n", n.roles)
	for _, id := range n.order.IDs() {
		node := n.nodes[id]
		if node.Type == dbn.Discrete {
			fmt.Fprintf(&b, "  node %d: %s, %d levels\n", id, node.Type, node.Levels)
		} else {
			fmt.Fprintf(&b, "  node %d: %s\n", id, node.Type)
		}
	}
	for _, phase := range dbn.Phases {
		cfg, ok := n.phases[phase]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "phase %s:\n", phase)
		for _, id := range n.order.IDs() {
			parents := cfg.Parents[id]
			if len(parents) == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %d <- %v", id, parents)
			for _, p := range parents {
				if lags, ok := cfg.Loopbacks[dbn.Relation{Parent: p, Child: id}]; ok {
					fmt.Fprintf(&b, " [%d lags %v]", p, lags)
				}
			}
			b.WriteString("\n")
		}
	}
	if n.HasSecondary() {
		fmt.Fprintf(&b, "switch: %d\n", switchPoint(n.switchTime, n.maxLag))
	}

	return b.String()
}
