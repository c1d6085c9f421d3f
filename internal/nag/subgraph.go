package nag

// Subgraph returns a new graph holding the nodes for which keep returns true
// and every edge between two kept nodes.
func (g *Graph) Subgraph(keep func(NodeIndex) bool) *Graph {
	sub := New()
	for n := range g.nodes {
		if keep(n) {
			sub.AddNode(n)
		}
	}
	for from, targets := range g.edges {
		if _, ok := sub.nodes[from]; !ok {
			continue
		}
		for to, p := range targets {
			if _, ok := sub.nodes[to]; ok {
				sub.AddEdge(from, to, p)
			}
		}
	}
	return sub
}

// WithoutMetDependencies returns a copy of the graph that only keeps
// ordering-only (Always) edges, edges leaving a Fetched node and edges with at
// least one unmet requirement. A fetch must still precede its consumer. The
// build and run flags of a kept edge are cleared where that requirement is
// already met.
func (g *Graph) WithoutMetDependencies() *Graph {
	out := New()
	for n := range g.nodes {
		out.AddNode(n)
	}
	for from, targets := range g.edges {
		for to, p := range targets {
			if p.BuildAllMet && p.RunAllMet && !p.Always && from.Role != RoleFetched {
				continue
			}
			out.AddEdge(from, to, EdgeProperties{
				Always:      p.Always,
				Build:       p.Build && !p.BuildAllMet,
				BuildAllMet: p.BuildAllMet,
				Run:         p.Run && !p.RunAllMet,
				RunAllMet:   p.RunAllMet,
			})
		}
	}
	return out
}

// HasBuildDependencies reports whether any edge leaving one of nodes is a
// build dependency.
func (g *Graph) HasBuildDependencies(nodes []NodeIndex) bool {
	for _, n := range nodes {
		for _, p := range g.edges[n] {
			if p.Build {
				return true
			}
		}
	}
	return false
}
