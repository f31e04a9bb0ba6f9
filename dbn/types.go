package dbn

import (
	"fmt"
	"strings"
)

// NodeType distinguishes categorical nodes from real-valued ones.
type NodeType int

const (
	// Discrete nodes take 1-based integer levels 1..Levels.
	Discrete NodeType = iota
	// Continuous nodes take real values drawn from (linear-)Gaussian models.
	Continuous
)

// String renders the node type the way model files spell it.
func (t NodeType) String() string {
	switch t {
	case Discrete:
		return "discrete"
	case Continuous:
		return "continuous"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// ParseNodeType accepts "discrete"/"d" and "continuous"/"c" (any case).
func ParseNodeType(s string) (NodeType, error) {
	switch strings.ToLower(s) {
	case "discrete", "d":
		return Discrete, nil
	case "continuous", "c":
		return Continuous, nil
	}

	return 0, fmt.Errorf("dbn: unknown node type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t NodeType) MarshalText() ([]byte, error) {
	switch t {
	case Discrete, Continuous:
		return []byte(t.String()), nil
	}

	return nil, fmt.Errorf("dbn: cannot marshal %s", t)
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseNodeType.
func (t *NodeType) UnmarshalText(b []byte) error {
	v, err := ParseNodeType(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Node is one variable of the network. It is immutable for a generation run.
type Node struct {
	ID     int      `json:"id"`               // index into the adjacency matrix
	Type   NodeType `json:"type"`             // Discrete or Continuous
	Levels int      `json:"levels,omitempty"` // number of levels; ignored for Continuous nodes
}

// Phase selects one of the temporal regimes of a run.
type Phase int

const (
	// Initial governs step 0 of every series.
	Initial Phase = iota
	// Recurring governs the steps after Initial until the switch point.
	Recurring
	// SecondaryRecurring governs the steps from the switch point onwards.
	SecondaryRecurring
)

// Phases lists every phase in schedule order.
var Phases = []Phase{Initial, Recurring, SecondaryRecurring}

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Recurring:
		return "recurring"
	case SecondaryRecurring:
		return "secondary"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Relation is a directed (parent, child) pair used to key loopback lags.
type Relation struct {
	Parent int
	Child  int
}

func (r Relation) String() string {
	return fmt.Sprintf("%d->%d", r.Parent, r.Child)
}

// ParentMap lists, per child id, the ordered parent ids for one phase.
// A missing key means the node has no parents in that phase.
type ParentMap map[int][]int

// LoopbackMap lists, per relation, the ordered lags at which the child reads
// the parent. Lag 0 is the same step, lag k ≥ 1 is k steps earlier.
type LoopbackMap map[Relation][]int

// MaxLag returns the largest lag declared in the map, or 0 when it is empty.
func (m LoopbackMap) MaxLag() int {
	maxLag := 0
	for _, lags := range m {
		for _, lag := range lags {
			if lag > maxLag {
				maxLag = lag
			}
		}
	}

	return maxLag
}
