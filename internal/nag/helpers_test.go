package nag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var buildDep = EdgeProperties{Build: true, RunAllMet: true}

// newTestGraph builds a graph from node strings and `from -> to` pairs, every
// edge being an unmet build dependency.
func newTestGraph(t *testing.T, nodes []string, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, raw := range nodes {
		n, err := ParseNodeIndex(raw)
		require.NoError(t, err)
		g.AddNode(n)
	}
	for _, e := range edges {
		g.AddEdge(MustParseNodeIndex(e[0]), MustParseNodeIndex(e[1]), buildDep)
	}
	return g
}

// componentNames flattens an ordering into member strings for comparison.
func componentNames(sorted []StronglyConnectedComponent) [][]string {
	out := make([][]string, len(sorted))
	for i, c := range sorted {
		for _, n := range c.Nodes {
			out[i] = append(out[i], n.String())
		}
	}
	return out
}

func orderOf(m map[string]Tribool) OrderEarlyFunc {
	return func(n NodeIndex) Tribool {
		return m[n.String()]
	}
}
