package nag

import (
	"errors"
	"fmt"
	"strconv"
)

// Record is the flat, keyed form a Graph is persisted in. Keys are
//
//	nodes.count, nodes.N.resolvent, nodes.N.role
//	edge.count, edge.N.f.*, edge.N.t.*, edge.N.p.<property>
//
// with N counting from 1 and <property> one of always, build, build_all_met,
// run, run_all_met.
type Record map[string]string

var propertyKeys = [...]string{"always", "build", "build_all_met", "run", "run_all_met"}

func (p *EdgeProperties) fields() [5]*bool {
	return [5]*bool{&p.Always, &p.Build, &p.BuildAllMet, &p.Run, &p.RunAllMet}
}

// Serialise writes the graph into a Record. Nodes and edges are written in
// ascending order so equal graphs give equal records.
func (g *Graph) Serialise() Record {
	r := make(Record)

	nodes := g.sortedNodes()
	r["nodes.count"] = strconv.Itoa(len(nodes))
	for i, n := range nodes {
		r.putNode(fmt.Sprintf("nodes.%d", i+1), n)
	}

	edges := g.Edges()
	r["edge.count"] = strconv.Itoa(len(edges))
	for i, e := range edges {
		prefix := fmt.Sprintf("edge.%d", i+1)
		r.putNode(prefix+".f", e.From)
		r.putNode(prefix+".t", e.To)
		props := e.Properties
		for j, field := range props.fields() {
			r[prefix+".p."+propertyKeys[j]] = strconv.FormatBool(*field)
		}
	}
	return r
}

func (r Record) putNode(prefix string, n NodeIndex) {
	r[prefix+".resolvent"] = n.Resolvent.String()
	r[prefix+".role"] = n.Role.String()
}

// Deserialise rebuilds a Graph from a Record: nodes first, then every edge,
// then Verify. Any problem is reported as a *DeserialiseError.
func Deserialise(r Record) (*Graph, error) {
	g := New()

	nodeCount, err := r.count("nodes.count")
	if err != nil {
		return nil, err
	}
	for i := 1; i <= nodeCount; i++ {
		n, err := r.node(fmt.Sprintf("nodes.%d", i))
		if err != nil {
			return nil, err
		}
		g.AddNode(n)
	}

	edgeCount, err := r.count("edge.count")
	if err != nil {
		return nil, err
	}
	for i := 1; i <= edgeCount; i++ {
		prefix := fmt.Sprintf("edge.%d", i)
		from, err := r.node(prefix + ".f")
		if err != nil {
			return nil, err
		}
		to, err := r.node(prefix + ".t")
		if err != nil {
			return nil, err
		}
		p, err := r.properties(prefix + ".p")
		if err != nil {
			return nil, err
		}
		g.AddEdge(from, to, p)
	}

	if err := g.Verify(); err != nil {
		return nil, &DeserialiseError{Err: err}
	}
	return g, nil
}

func (r Record) value(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", &DeserialiseError{Key: key, Err: errors.New("missing")}
	}
	return v, nil
}

func (r Record) count(key string) (int, error) {
	v, err := r.value(key)
	if err != nil {
		return 0, err
	}
	c, err := strconv.Atoi(v)
	if err != nil {
		return 0, &DeserialiseError{Key: key, Err: err}
	}
	if c < 0 {
		return 0, &DeserialiseError{Key: key, Err: fmt.Errorf("negative count %d", c)}
	}
	return c, nil
}

func (r Record) node(prefix string) (NodeIndex, error) {
	rawResolvent, err := r.value(prefix + ".resolvent")
	if err != nil {
		return NodeIndex{}, err
	}
	rawRole, err := r.value(prefix + ".role")
	if err != nil {
		return NodeIndex{}, err
	}
	n, err := ParseNodeIndex(rawResolvent + "#" + rawRole)
	if err != nil {
		return NodeIndex{}, &DeserialiseError{Key: prefix, Err: err}
	}
	return n, nil
}

func (r Record) properties(prefix string) (EdgeProperties, error) {
	var p EdgeProperties
	for i, field := range p.fields() {
		key := prefix + "." + propertyKeys[i]
		v, err := r.value(key)
		if err != nil {
			return EdgeProperties{}, err
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return EdgeProperties{}, &DeserialiseError{Key: key, Err: err}
		}
		*field = b
	}
	return p, nil
}
