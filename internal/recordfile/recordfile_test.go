package recordfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/nagorder/internal/nag"
	"github.com/specialistvlad/nagorder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T) *nag.Graph {
	return testutil.NewGraph(t,
		[]string{"cat/a:0#fetched", "cat/a:0#done", "cat/b:1.2@binaries#done"},
		[]testutil.Edge{
			{From: "cat/a:0#fetched", To: "cat/a:0#done", Properties: testutil.FetchDep},
			{From: "cat/a:0#done", To: "cat/b:1.2@binaries#done", Properties: testutil.BuildDep},
		})
}

func TestFormatFor(t *testing.T) {
	testCases := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "plan.json", want: FormatJSON},
		{path: "dir/plan.YAML", want: FormatYAML},
		{path: "plan.yml", want: FormatYAML},
		{path: "plan.toml", wantErr: true},
		{path: "plan", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatFor(tc.path)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	record := sampleGraph(t).Serialise()

	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(f, record)
			require.NoError(t, err)

			got, err := Decode(f, data)
			require.NoError(t, err)
			if diff := cmp.Diff(record, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncode_EmptyRecord(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(f, nag.Record{})
			require.NoError(t, err)
			got, err := Decode(f, data)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestDecode_RejectsNonStringValues(t *testing.T) {
	_, err := Decode(FormatJSON, []byte(`{"nodes.count": {"n": 1}}`))
	require.ErrorIs(t, err, nag.ErrMalformedRecord)

	_, err = Decode(FormatYAML, []byte("nodes.count: [1, 2]\n"))
	require.ErrorIs(t, err, nag.ErrMalformedRecord)

	_, err = Decode(FormatJSON, []byte("null"))
	require.ErrorIs(t, err, nag.ErrMalformedRecord)
}

func TestDecode_YAMLScalarsBecomeStrings(t *testing.T) {
	got, err := Decode(FormatYAML, []byte("nodes.count: 0\nedge.count: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, nag.Record{"nodes.count": "0", "edge.count": "0"}, got)
}

func TestSaveLoad(t *testing.T) {
	ctx, _ := testutil.Context(t)
	g := sampleGraph(t)

	for _, name := range []string{"graph.json", "graph.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(ctx, path, g))

			loaded, err := Load(ctx, path)
			require.NoError(t, err)
			assert.Equal(t, g.Edges(), loaded.Edges())
			assert.Equal(t, g.NodeCount(), loaded.NodeCount())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := t.TempDir()

	_, err := Load(ctx, filepath.Join(dir, "graph.txt"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(ctx, filepath.Join(dir, "missing.json"))
	require.True(t, errors.Is(err, os.ErrNotExist))
	assert.NotErrorIs(t, err, nag.ErrMalformedRecord)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("nodes.count: \"1\"\nedge.count: \"0\"\n"), 0o644))
	_, err = Load(ctx, broken)
	require.ErrorIs(t, err, nag.ErrMalformedRecord)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte("{not json"), 0o644))
	_, err = Load(ctx, garbage)
	require.ErrorIs(t, err, nag.ErrMalformedRecord)

	truncated := filepath.Join(dir, "truncated.yaml")
	require.NoError(t, os.WriteFile(truncated, []byte("nodes.count: \"1\"\nnodes.1.resolvent: [cat/a"), 0o644))
	_, err = Load(ctx, truncated)
	require.ErrorIs(t, err, nag.ErrMalformedRecord)
}
