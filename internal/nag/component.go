package nag

import (
	"slices"
)

// StronglyConnectedComponent is a maximal set of mutually reachable nodes.
// A node that is not on any cycle forms a component on its own.
type StronglyConnectedComponent struct {
	// Nodes holds the members in ascending order. It is never empty.
	Nodes []NodeIndex
	// Requirements is left empty here; consumers may use it to record the
	// nodes a component requires.
	Requirements []NodeIndex
}

// Representative returns the smallest member, which identifies the component.
func (c StronglyConnectedComponent) Representative() NodeIndex {
	return c.Nodes[0]
}

// Contains reports whether n is a member.
func (c StronglyConnectedComponent) Contains(n NodeIndex) bool {
	_, found := slices.BinarySearchFunc(c.Nodes, n, compareNodes)
	return found
}

// IsCycle reports whether the component has more than one member.
func (c StronglyConnectedComponent) IsCycle() bool {
	return len(c.Nodes) > 1
}

// SortedStronglyConnectedComponents is the final ordering of components.
type SortedStronglyConnectedComponents []StronglyConnectedComponent

// SccID addresses a component inside a Partition.
type SccID int

// Partition is the split of a graph's nodes into strongly connected
// components, in the order Tarjan's algorithm closed them.
type Partition struct {
	components  []StronglyConnectedComponent
	componentOf map[NodeIndex]SccID
}

// Len returns the number of components.
func (p *Partition) Len() int { return len(p.components) }

// Component returns the component with the given id.
func (p *Partition) Component(id SccID) StronglyConnectedComponent {
	return p.components[id]
}

// ComponentOf returns the id of the component containing n.
func (p *Partition) ComponentOf(n NodeIndex) (SccID, bool) {
	id, ok := p.componentOf[n]
	return id, ok
}

// Components returns every component in discovery order.
func (p *Partition) Components() []StronglyConnectedComponent {
	return slices.Clone(p.components)
}

type tarjanData struct {
	index   int
	lowlink int
}

// tarjanFrame stands in for one level of recursion: the node being expanded
// and the position of the next successor to look at.
type tarjanFrame struct {
	node NodeIndex
	next int
}

// FindComponents verifies g and partitions it into strongly connected
// components using Tarjan's algorithm. Roots and successors are visited in
// ascending node order, so the result is the same on every run.
func FindComponents(g *Graph) (*Partition, error) {
	if err := g.Verify(); err != nil {
		return nil, err
	}

	p := &Partition{componentOf: make(map[NodeIndex]SccID, len(g.nodes))}
	adj := g.adjacency()
	data := make(map[NodeIndex]*tarjanData, len(g.nodes))
	onStack := make(map[NodeIndex]bool, len(g.nodes))
	var stack []NodeIndex
	var frames []tarjanFrame
	counter := 0

	open := func(n NodeIndex) {
		data[n] = &tarjanData{index: counter, lowlink: counter}
		counter++
		stack = append(stack, n)
		onStack[n] = true
		frames = append(frames, tarjanFrame{node: n})
	}

	for _, root := range g.sortedNodes() {
		if _, seen := data[root]; seen {
			continue
		}
		open(root)

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			nd := data[top.node]

			if successors := adj[top.node]; top.next < len(successors) {
				w := successors[top.next]
				top.next++
				wd, seen := data[w]
				switch {
				case !seen:
					open(w)
				case onStack[w]:
					nd.lowlink = min(nd.lowlink, wd.index)
				}
				continue
			}

			node := top.node
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := data[frames[len(frames)-1].node]
				parent.lowlink = min(parent.lowlink, nd.lowlink)
			}

			if nd.index != nd.lowlink {
				continue
			}

			var members []NodeIndex
			for len(stack) > 0 {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				members = append(members, w)
				if w == node {
					break
				}
			}
			if len(members) == 0 {
				return nil, internalf("components", []NodeIndex{node}, "", "empty component closed at %s", node)
			}
			slices.SortFunc(members, compareNodes)

			id := SccID(len(p.components))
			for _, m := range members {
				if prev, dup := p.componentOf[m]; dup {
					return nil, internalf("components", []NodeIndex{m}, "",
						"node %s in components %d and %d", m, prev, id)
				}
				p.componentOf[m] = id
			}
			p.components = append(p.components, StronglyConnectedComponent{Nodes: members})
		}
	}

	if len(p.componentOf) != len(g.nodes) {
		return nil, internalf("components", nil, "nodes: "+FormatNodes(g.sortedNodes()),
			"components cover %d nodes, graph has %d", len(p.componentOf), len(g.nodes))
	}
	return p, nil
}
