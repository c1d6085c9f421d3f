package resolvent

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "cat/a:1", "cat/a:1", 0},
		{"package first", "cat/a:9", "cat/b:1", -1},
		{"numeric slots", "cat/a:2", "cat/a:10", -1},
		{"dotted slots", "cat/a:3.9", "cat/a:3.12", -1},
		{"same version different text", "cat/a:1.0", "cat/a:1.0.0", -1},
		{"version before word", "cat/a:5", "cat/a:stable", -1},
		{"words lexicographic", "cat/a:beta", "cat/a:alpha", 1},
		{"no slot before slot", "cat/a", "cat/a:0", 1},
		{"destination last", "cat/a:1", "cat/a:1@binaries", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := MustParse(tc.a), MustParse(tc.b)
			assert.Equal(t, tc.want, Compare(a, b))
			assert.Equal(t, -tc.want, Compare(b, a))
		})
	}
}

func TestCompare_SortsDeterministically(t *testing.T) {
	in := []Resolvent{
		MustParse("cat/b:10"),
		MustParse("cat/a:stable"),
		MustParse("cat/b:2"),
		MustParse("cat/a:1@chroot"),
		MustParse("cat/a:1"),
	}
	slices.SortFunc(in, Compare)

	got := make([]string, len(in))
	for i, r := range in {
		got[i] = r.String()
	}
	assert.Equal(t, []string{"cat/a:1", "cat/a:1@chroot", "cat/a:stable", "cat/b:2", "cat/b:10"}, got)
}

func TestHash(t *testing.T) {
	a := MustParse("cat/a:1")
	assert.Equal(t, a.Hash(), New("cat/a", "1").Hash())
	assert.NotEqual(t, a.Hash(), MustParse("cat/a:2").Hash())
}
