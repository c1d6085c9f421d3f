package nag

import (
	"cmp"
	"maps"
	"slices"
)

const (
	baseScoreFetched = 10
	baseScoreDone    = 20
)

// nodeScore is lower for nodes that should run sooner.
func nodeScore(n NodeIndex, orderEarly OrderEarlyFunc) int {
	score := baseScoreDone
	if n.Role == RoleFetched {
		score = baseScoreFetched
	}

	early := Indeterminate
	if orderEarly != nil {
		early = orderEarly(n)
	}
	switch early {
	case True:
		// no bias
	case False:
		score += 2
	default:
		score++
	}
	return score
}

type readyEntry struct {
	score int
	rep   NodeIndex
	id    SccID
}

func compareReady(a, b readyEntry) int {
	if c := cmp.Compare(a.score, b.score); c != 0 {
		return c
	}
	return a.rep.Compare(b.rep)
}

// readySet keeps components whose predecessors are all handled, smallest
// (score, representative) first.
type readySet []readyEntry

func (s *readySet) insert(e readyEntry) {
	i, _ := slices.BinarySearchFunc(*s, e, compareReady)
	*s = slices.Insert(*s, i, e)
}

func (s *readySet) pop() readyEntry {
	e := (*s)[0]
	*s = (*s)[1:]
	return e
}

// Components orders the strongly connected components of g so that every
// component comes after all components it has an edge from. Ties go to the
// lower score and then to the smaller representative. A lone Fetched node is
// held back until just before the first component that needs it.
//
// orderEarly may be nil, which means no node has a preference.
func (g *Graph) Components(orderEarly OrderEarlyFunc) (SortedStronglyConnectedComponents, error) {
	p, err := FindComponents(g)
	if err != nil {
		return nil, err
	}
	return schedule(g, p, orderEarly)
}

func schedule(g *Graph, p *Partition, orderEarly OrderEarlyFunc) (SortedStronglyConnectedComponents, error) {
	comps := p.components
	n := len(comps)

	rep := make(map[NodeIndex]SccID, len(g.nodes))
	for id, c := range comps {
		for _, m := range c.Nodes {
			if prev, dup := rep[m]; dup {
				return nil, internalf("schedule", []NodeIndex{m}, "",
					"node %s in components %d and %d", m, prev, id)
			}
			rep[m] = SccID(id)
		}
	}
	if len(rep) != len(g.nodes) {
		return nil, internalf("schedule", nil, "nodes: "+FormatNodes(g.sortedNodes()),
			"components cover %d nodes, graph has %d", len(rep), len(g.nodes))
	}

	out := make([]map[SccID]struct{}, n)
	in := make([]map[SccID]struct{}, n)
	for from, targets := range g.edges {
		a := rep[from]
		for to := range targets {
			b := rep[to]
			if a == b {
				continue
			}
			if out[a] == nil {
				out[a] = make(map[SccID]struct{})
			}
			out[a][b] = struct{}{}
			if in[b] == nil {
				in[b] = make(map[SccID]struct{})
			}
			in[b][a] = struct{}{}
		}
	}

	scores := make([]int, n)
	remaining := make([]int, n)
	var ready readySet
	for i, c := range comps {
		best := nodeScore(c.Nodes[0], orderEarly)
		for _, m := range c.Nodes[1:] {
			best = min(best, nodeScore(m, orderEarly))
		}
		scores[i] = best
		remaining[i] = len(in[i])
		if remaining[i] == 0 {
			ready.insert(readyEntry{score: best, rep: c.Representative(), id: SccID(i)})
		}
	}

	result := make(SortedStronglyConnectedComponents, 0, n)
	pending := make(map[SccID]struct{})

	pendingOrdered := func() []SccID {
		ids := slices.Collect(maps.Keys(pending))
		slices.SortFunc(ids, func(a, b SccID) int {
			return compareReady(
				readyEntry{score: scores[a], rep: comps[a].Representative()},
				readyEntry{score: scores[b], rep: comps[b].Representative()})
		})
		return ids
	}

	// flush emits every pending fetch feeding target, and before each of
	// those any pending fetch feeding it in turn.
	var flush func(target SccID)
	flush = func(target SccID) {
		for _, f := range pendingOrdered() {
			if _, still := pending[f]; !still {
				continue
			}
			if _, feeds := out[f][target]; !feeds {
				continue
			}
			delete(pending, f)
			flush(f)
			result = append(result, comps[f])
		}
	}

	for len(ready) > 0 {
		cur := ready.pop()
		c := comps[cur.id]

		if len(c.Nodes) == 1 && c.Nodes[0].Role == RoleFetched {
			pending[cur.id] = struct{}{}
		} else {
			flush(cur.id)
			result = append(result, c)
		}

		for t := range out[cur.id] {
			remaining[t]--
			if remaining[t] == 0 {
				ready.insert(readyEntry{score: scores[t], rep: comps[t].Representative(), id: t})
			}
		}
	}

	if len(pending) > 0 {
		var stuck []NodeIndex
		for _, id := range pendingOrdered() {
			stuck = append(stuck, comps[id].Nodes...)
		}
		return nil, internalf("schedule", stuck, "", "fetches never consumed: %s", FormatNodes(stuck))
	}
	if len(result) != n {
		return nil, internalf("schedule", nil, "", "emitted %d components, expected %d", len(result), n)
	}
	return result, nil
}
