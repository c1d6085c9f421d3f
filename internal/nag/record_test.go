package nag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialise_Keys(t *testing.T) {
	g := New()
	a := MustParseNodeIndex("cat/a:0#fetched")
	b := MustParseNodeIndex("cat/a:0#done")
	g.AddNode(b)
	g.AddNode(a)
	g.AddEdge(a, b, EdgeProperties{Always: true, BuildAllMet: true, RunAllMet: true})

	want := Record{
		"nodes.count":            "2",
		"nodes.1.resolvent":      "cat/a:0",
		"nodes.1.role":           "fetched",
		"nodes.2.resolvent":      "cat/a:0",
		"nodes.2.role":           "done",
		"edge.count":             "1",
		"edge.1.f.resolvent":     "cat/a:0",
		"edge.1.f.role":          "fetched",
		"edge.1.t.resolvent":     "cat/a:0",
		"edge.1.t.role":          "done",
		"edge.1.p.always":        "true",
		"edge.1.p.build":         "false",
		"edge.1.p.build_all_met": "true",
		"edge.1.p.run":           "false",
		"edge.1.p.run_all_met":   "true",
	}
	if diff := cmp.Diff(want, g.Serialise()); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserialise_RoundTrip(t *testing.T) {
	g := newTestGraph(t,
		[]string{"cat/x:0#fetched", "cat/x:0#done", "cat/y:1@binaries#done"},
		[][2]string{{"cat/x:0#fetched", "cat/x:0#done"}, {"cat/x:0#done", "cat/y:1@binaries#done"}})
	g.AddEdge(MustParseNodeIndex("cat/y:1@binaries#done"), MustParseNodeIndex("cat/x:0#done"),
		EdgeProperties{Run: true, BuildAllMet: true})

	restored, err := Deserialise(g.Serialise())
	require.NoError(t, err)

	assert.Equal(t, g.Serialise(), restored.Serialise())
	assert.Equal(t, g.Edges(), restored.Edges())

	want, err := g.Components(nil)
	require.NoError(t, err)
	got, err := restored.Components(nil)
	require.NoError(t, err)
	assert.Equal(t, componentNames(want), componentNames(got))
}

func TestDeserialise_EmptyGraph(t *testing.T) {
	restored, err := Deserialise(New().Serialise())
	require.NoError(t, err)
	assert.Zero(t, restored.NodeCount())
}

func TestDeserialise_Malformed(t *testing.T) {
	base := func() Record {
		g := newTestGraph(t,
			[]string{"cat/a:0#fetched", "cat/a:0#done"},
			[][2]string{{"cat/a:0#fetched", "cat/a:0#done"}})
		return g.Serialise()
	}

	testCases := []struct {
		name    string
		mutate  func(Record)
		wantKey string
	}{
		{
			name:    "missing node count",
			mutate:  func(r Record) { delete(r, "nodes.count") },
			wantKey: "nodes.count",
		},
		{
			name:    "non-numeric edge count",
			mutate:  func(r Record) { r["edge.count"] = "many" },
			wantKey: "edge.count",
		},
		{
			name:    "negative node count",
			mutate:  func(r Record) { r["nodes.count"] = "-1" },
			wantKey: "nodes.count",
		},
		{
			name:    "truncated edge",
			mutate:  func(r Record) { delete(r, "edge.1.t.role") },
			wantKey: "edge.1.t.role",
		},
		{
			name:    "count larger than entries",
			mutate:  func(r Record) { r["nodes.count"] = "3" },
			wantKey: "nodes.3.resolvent",
		},
		{
			name:    "bad role",
			mutate:  func(r Record) { r["nodes.1.role"] = "built" },
			wantKey: "nodes.1",
		},
		{
			name:    "bad boolean",
			mutate:  func(r Record) { r["edge.1.p.run"] = "maybe" },
			wantKey: "edge.1.p.run",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := base()
			tc.mutate(r)

			_, err := Deserialise(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))
			assert.False(t, errors.Is(err, ErrInternal))

			var de *DeserialiseError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.wantKey, de.Key)
		})
	}
}

func TestDeserialise_DanglingEdge(t *testing.T) {
	g := newTestGraph(t,
		[]string{"cat/a:0#fetched", "cat/a:0#done"},
		[][2]string{{"cat/a:0#fetched", "cat/a:0#done"}})
	r := g.Serialise()
	r["nodes.count"] = "1" // drops cat/a:0#done from the node list

	_, err := Deserialise(r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.True(t, errors.Is(err, ErrInternal), "the consistency failure is kept as the cause")
}
