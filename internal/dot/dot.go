// Package dot renders an action graph in Graphviz DOT form. Members of the
// same dependency cycle share a fill colour and fetch nodes are drawn as
// boxes.
package dot

import (
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/specialistvlad/nagorder/internal/nag"
)

var cyclePalette = []string{
	"lightsalmon", "lightblue", "palegreen", "khaki", "plum", "lightpink", "lightcyan", "wheat",
}

func nodeHash(n nag.NodeIndex) string { return n.String() }

// Write renders g to w. components may be nil, in which case no cycle is
// highlighted.
func Write(w io.Writer, g *nag.Graph, components nag.SortedStronglyConnectedComponents) error {
	fill := make(map[nag.NodeIndex]string)
	cycles := 0
	for _, c := range components {
		if !c.IsCycle() {
			continue
		}
		colour := cyclePalette[cycles%len(cyclePalette)]
		cycles++
		for _, n := range c.Nodes {
			fill[n] = colour
		}
	}

	out := graph.New(nodeHash, graph.Directed())
	for n := range g.Nodes() {
		var opts []func(*graph.VertexProperties)
		if n.Role == nag.RoleFetched {
			opts = append(opts, graph.VertexAttribute("shape", "box"))
		}
		if colour, ok := fill[n]; ok {
			opts = append(opts,
				graph.VertexAttribute("style", "filled"),
				graph.VertexAttribute("fillcolor", colour))
		}
		if err := out.AddVertex(n, opts...); err != nil {
			return fmt.Errorf("adding vertex %s: %w", n, err)
		}
	}
	for _, e := range g.Edges() {
		var opts []func(*graph.EdgeProperties)
		if label := e.Properties.String(); label != "" {
			opts = append(opts, graph.EdgeAttribute("label", label))
		}
		if err := out.AddEdge(nodeHash(e.From), nodeHash(e.To), opts...); err != nil {
			return fmt.Errorf("adding edge %s -> %s: %w", e.From, e.To, err)
		}
	}

	return draw.DOT(out, w, draw.GraphAttribute("rankdir", "LR"))
}
