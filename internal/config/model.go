package config

import (
	"fmt"

	"github.com/specialistvlad/nagorder/internal/nag"
)

// Model is the unified representation of one graph description.
// Nodes must be added through AddNode.
type Model struct {
	Nodes []*Node
	Edges []*Edge

	byIndex map[nag.NodeIndex]*Node
}

// Node is the format-agnostic representation of a `node` declaration.
type Node struct {
	Index nag.NodeIndex
	Order Order
	// Existing marks work that is already satisfied; no step is planned for
	// it but it still takes part in ordering.
	Existing  bool
	Uninstall bool
}

// Edge is the format-agnostic representation of an `edge` declaration.
type Edge struct {
	From       nag.NodeIndex
	To         nag.NodeIndex
	Properties nag.EdgeProperties
}

// AddNode appends n, rejecting a second declaration of the same index.
func (m *Model) AddNode(n *Node) error {
	if m.FindNode(n.Index) != nil {
		return fmt.Errorf("node %s declared more than once", n.Index)
	}
	if n.Uninstall && n.Index.Role != nag.RoleDone {
		return fmt.Errorf("node %s: only done nodes can be uninstalled", n.Index)
	}
	if m.byIndex == nil {
		m.byIndex = make(map[nag.NodeIndex]*Node)
	}
	m.byIndex[n.Index] = n
	m.Nodes = append(m.Nodes, n)
	return nil
}

// AddEdge appends an edge declaration.
func (m *Model) AddEdge(from, to nag.NodeIndex, props nag.EdgeProperties) {
	m.Edges = append(m.Edges, &Edge{From: from, To: to, Properties: props})
}

// FindNode returns the declaration for idx, or nil.
func (m *Model) FindNode(idx nag.NodeIndex) *Node {
	return m.byIndex[idx]
}

// Graph builds the action graph. Repeated edges merge; edges naming
// undeclared nodes are kept for nag.Graph.Verify to report.
func (m *Model) Graph() *nag.Graph {
	g := nag.New()
	for _, n := range m.Nodes {
		g.AddNode(n.Index)
	}
	for _, e := range m.Edges {
		g.AddEdge(e.From, e.To, e.Properties)
	}
	return g
}

// OrderEarly answers from the declared node preferences.
func (m *Model) OrderEarly() nag.OrderEarlyFunc {
	orders := make(map[nag.NodeIndex]Order, len(m.Nodes))
	for _, n := range m.Nodes {
		orders[n.Index] = n.Order
	}
	return func(idx nag.NodeIndex) nag.Tribool {
		return orders[idx].Tribool()
	}
}

// IsChange reports whether idx needs work, i.e. is declared and not
// existing.
func (m *Model) IsChange(idx nag.NodeIndex) bool {
	n := m.FindNode(idx)
	return n != nil && !n.Existing
}

// Uninstall reports whether idx is declared as an uninstall.
func (m *Model) Uninstall(idx nag.NodeIndex) bool {
	n := m.FindNode(idx)
	return n != nil && n.Uninstall
}

// FromGraph rebuilds a Model with default hints from a graph, as needed when
// resuming from a saved record that carries no hints.
func FromGraph(g *nag.Graph) *Model {
	m := &Model{}
	for idx := range g.Nodes() {
		// Graph nodes are unique and never uninstalls, so this cannot fail.
		_ = m.AddNode(&Node{Index: idx})
	}
	for _, e := range g.Edges() {
		m.AddEdge(e.From, e.To, e.Properties)
	}
	return m
}
