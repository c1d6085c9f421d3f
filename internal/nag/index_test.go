package nag

import (
	"slices"
	"testing"

	"github.com/specialistvlad/nagorder/internal/resolvent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeIndex(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  NodeIndex
	}{
		{
			name:     "fetched",
			raw:      "dev-libs/a:0#fetched",
			expected: Fetched(resolvent.New("dev-libs/a", "0")),
		},
		{
			name:     "done with destination",
			raw:      "dev-libs/a:0@binaries#done",
			expected: Done(resolvent.Resolvent{Package: "dev-libs/a", Slot: "0", Destination: resolvent.DestinationBinaries}),
		},
		{name: "error - no role", raw: "dev-libs/a:0", expectErr: true},
		{name: "error - bad role", raw: "dev-libs/a:0#built", expectErr: true},
		{name: "error - bad resolvent", raw: "a#done", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ParseNodeIndex(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, n)
			assert.Equal(t, tc.raw, n.String())
		})
	}
}

func TestNodeIndex_Ordering(t *testing.T) {
	nodes := []NodeIndex{
		MustParseNodeIndex("cat/b:0#fetched"),
		MustParseNodeIndex("cat/a:0#done"),
		MustParseNodeIndex("cat/b:0#done"),
		MustParseNodeIndex("cat/a:0#fetched"),
	}
	slices.SortFunc(nodes, NodeIndex.Compare)

	assert.Equal(t, []NodeIndex{
		MustParseNodeIndex("cat/a:0#fetched"),
		MustParseNodeIndex("cat/a:0#done"),
		MustParseNodeIndex("cat/b:0#fetched"),
		MustParseNodeIndex("cat/b:0#done"),
	}, nodes)
	assert.True(t, nodes[0].Less(nodes[1]))
	assert.False(t, nodes[1].Less(nodes[1]))
}

func TestNodeIndex_HashIgnoresRole(t *testing.T) {
	r := resolvent.New("cat/a", "0")
	assert.Equal(t, Fetched(r).Hash(), Done(r).Hash())
	assert.NotEqual(t, Fetched(r), Done(r))
	assert.NotEqual(t, Done(r).Hash(), Done(resolvent.New("cat/b", "0")).Hash())
}

func TestEdgeProperties_Merge(t *testing.T) {
	a := EdgeProperties{Build: true, BuildAllMet: true, RunAllMet: true}
	b := EdgeProperties{Run: true, BuildAllMet: false, RunAllMet: true}
	c := EdgeProperties{Always: true, BuildAllMet: true, RunAllMet: false}

	assert.Equal(t, a.Merge(b), b.Merge(a), "commutative")
	assert.Equal(t, a.Merge(b).Merge(c), a.Merge(b.Merge(c)), "associative")
	assert.Equal(t, a, a.Merge(NoEdgeProperties), "identity")
	assert.Equal(t, a, a.Merge(a), "idempotent")

	assert.Equal(t, EdgeProperties{Always: true, Build: true, Run: true}, a.Merge(b).Merge(c))
}

func TestEdgeProperties_String(t *testing.T) {
	assert.Equal(t, "", NoEdgeProperties.String())
	assert.Equal(t, "always,build,run(met)", EdgeProperties{Always: true, Build: true, Run: true, RunAllMet: true}.String())
}
