package nag

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Edge is one merged edge of a Graph.
type Edge struct {
	From       NodeIndex
	To         NodeIndex
	Properties EdgeProperties
}

// Graph is the node-action graph. The zero value is not usable; call New.
type Graph struct {
	nodes map[NodeIndex]struct{}
	edges map[NodeIndex]map[NodeIndex]EdgeProperties
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[NodeIndex]struct{}),
		edges: make(map[NodeIndex]map[NodeIndex]EdgeProperties),
	}
}

// AddNode adds n to the graph. Adding an existing node does nothing.
func (g *Graph) AddNode(n NodeIndex) {
	g.nodes[n] = struct{}{}
}

// AddEdge records that to must wait for from. If the edge already exists, p
// is merged into its properties. Neither endpoint has to be present yet;
// Verify checks that they eventually are.
func (g *Graph) AddEdge(from, to NodeIndex, p EdgeProperties) {
	targets, ok := g.edges[from]
	if !ok {
		targets = make(map[NodeIndex]EdgeProperties)
		g.edges[from] = targets
	}
	if existing, ok := targets[to]; ok {
		p = existing.Merge(p)
	}
	targets[to] = p
}

// Verify checks that every edge endpoint is a node of the graph.
func (g *Graph) Verify() error {
	for _, from := range slices.SortedFunc(maps.Keys(g.edges), compareNodes) {
		targets := slices.SortedFunc(maps.Keys(g.edges[from]), compareNodes)
		if _, ok := g.nodes[from]; !ok {
			return internalf("verify", []NodeIndex{from}, g.dump(from, targets),
				"missing node for edge source %s", from)
		}
		for _, to := range targets {
			if _, ok := g.nodes[to]; !ok {
				return internalf("verify", []NodeIndex{from, to}, g.dump(from, targets),
					"missing node for edge %s -> %s", from, to)
			}
		}
	}
	return nil
}

func (g *Graph) dump(from NodeIndex, targets []NodeIndex) string {
	var sb strings.Builder
	sb.WriteString("edges from ")
	sb.WriteString(from.String())
	sb.WriteString(": ")
	sb.WriteString(FormatNodes(targets))
	sb.WriteString("; nodes: ")
	sb.WriteString(FormatNodes(g.sortedNodes()))
	return sb.String()
}

// Nodes yields every node in ascending order.
func (g *Graph) Nodes() iter.Seq[NodeIndex] {
	return slices.Values(g.sortedNodes())
}

// FindNode returns the stored node equal to n, if any.
func (g *Graph) FindNode(n NodeIndex) (NodeIndex, bool) {
	if _, ok := g.nodes[n]; !ok {
		return NodeIndex{}, false
	}
	return n, true
}

// EdgesFrom yields the targets of n and the edge properties, in ascending
// target order. A node without outgoing edges yields nothing.
func (g *Graph) EdgesFrom(n NodeIndex) iter.Seq2[NodeIndex, EdgeProperties] {
	targets := g.edges[n]
	sorted := slices.SortedFunc(maps.Keys(targets), compareNodes)
	return func(yield func(NodeIndex, EdgeProperties) bool) {
		for _, to := range sorted {
			if !yield(to, targets[to]) {
				return
			}
		}
	}
}

// Edge returns the merged properties of the edge from -> to.
func (g *Graph) Edge(from, to NodeIndex) (EdgeProperties, bool) {
	p, ok := g.edges[from][to]
	return p, ok
}

// Edges returns every edge, ordered by source then target.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, from := range slices.SortedFunc(maps.Keys(g.edges), compareNodes) {
		for to, p := range g.EdgesFrom(from) {
			out = append(out, Edge{From: from, To: to, Properties: p})
		}
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of merged edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.edges {
		count += len(targets)
	}
	return count
}

func (g *Graph) sortedNodes() []NodeIndex {
	return slices.SortedFunc(maps.Keys(g.nodes), compareNodes)
}

// adjacency returns the sorted successor list of every node that has one.
func (g *Graph) adjacency() map[NodeIndex][]NodeIndex {
	adj := make(map[NodeIndex][]NodeIndex, len(g.edges))
	for from, targets := range g.edges {
		adj[from] = slices.SortedFunc(maps.Keys(targets), compareNodes)
	}
	return adj
}
