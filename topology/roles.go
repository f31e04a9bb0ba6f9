package topology

// Role marks whether a node draws from an unconditional CPD.
type Role int

const (
	// NonRoot nodes have at least one incoming edge.
	NonRoot Role = iota
	// Root nodes have a zero column sum in the adjacency matrix.
	Root
)

func (r Role) String() string {
	if r == Root {
		return "root"
	}

	return "non-root"
}

// AssignRoles labels every node Root iff its adjacency column sum is zero.
// The result is indexed by node id. A nil graph yields nil.
func AssignRoles(g *Graph) []Role {
	if g == nil {
		return nil
	}
	roles := make([]Role, g.n)
	for id := range roles {
		if g.InDegree(id) == 0 {
			roles[id] = Root
		}
	}

	return roles
}
