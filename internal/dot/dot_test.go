package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/nagorder/internal/nag"
	"github.com/specialistvlad/nagorder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	g := testutil.NewGraph(t,
		[]string{"cat/a:0#fetched", "cat/a:0#done", "cat/b:0#done", "cat/c:0#done"},
		[]testutil.Edge{
			{From: "cat/a:0#fetched", To: "cat/a:0#done", Properties: testutil.FetchDep},
			{From: "cat/a:0#done", To: "cat/b:0#done", Properties: testutil.BuildDep},
			{From: "cat/b:0#done", To: "cat/a:0#done", Properties: testutil.RunDep},
			{From: "cat/b:0#done", To: "cat/c:0#done", Properties: nag.NoEdgeProperties},
		})

	sorted, err := g.Components(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, sorted))
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "strict digraph") || strings.HasPrefix(strings.TrimSpace(out), "digraph"))
	assert.Contains(t, out, `"cat/a:0#fetched" -> "cat/a:0#done"`)
	assert.Contains(t, out, `label="always"`)
	assert.Contains(t, out, `label="build"`)
	assert.Contains(t, out, `label="run"`)
	assert.Contains(t, out, `shape="box"`)
	assert.Contains(t, out, `rankdir`)

	// Only the a/b cycle is coloured.
	assert.Equal(t, 2, strings.Count(out, `fillcolor="lightsalmon"`))
	assert.NotContains(t, out, `fillcolor="lightblue"`)
}

func TestWrite_WithoutComponents(t *testing.T) {
	g := nag.New()
	g.AddNode(nag.MustParseNodeIndex("cat/a:0#done"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g, nil))
	assert.Contains(t, buf.String(), `"cat/a:0#done"`)
	assert.NotContains(t, buf.String(), "fillcolor")
}
