package testutil

import (
	"testing"

	"github.com/specialistvlad/nagorder/internal/nag"
	"github.com/stretchr/testify/require"
)

// Edge properties as the resolver would produce them for common
// dependency kinds.
var (
	FetchDep    = nag.EdgeProperties{Always: true, BuildAllMet: true, RunAllMet: true}
	BuildDep    = nag.EdgeProperties{Build: true, RunAllMet: true}
	BuildMetDep = nag.EdgeProperties{Build: true, BuildAllMet: true, RunAllMet: true}
	RunDep      = nag.EdgeProperties{Run: true, BuildAllMet: true}
)

// Edge describes a graph edge by the text form of its nodes.
type Edge struct {
	From, To   string
	Properties nag.EdgeProperties
}

// NewGraph builds and verifies a graph from node strings and edges.
func NewGraph(t *testing.T, nodes []string, edges []Edge) *nag.Graph {
	t.Helper()

	g := nag.New()
	for _, raw := range nodes {
		n, err := nag.ParseNodeIndex(raw)
		require.NoError(t, err)
		g.AddNode(n)
	}
	for _, e := range edges {
		from, err := nag.ParseNodeIndex(e.From)
		require.NoError(t, err)
		to, err := nag.ParseNodeIndex(e.To)
		require.NoError(t, err)
		g.AddEdge(from, to, e.Properties)
	}
	require.NoError(t, g.Verify())
	return g
}
