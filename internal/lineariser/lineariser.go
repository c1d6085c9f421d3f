package lineariser

import (
	"context"
	"fmt"

	"github.com/specialistvlad/nagorder/internal/ctxlog"
	"github.com/specialistvlad/nagorder/internal/nag"
)

// Lineariser builds a plan from a verified graph.
type Lineariser struct {
	graph *nag.Graph
	opts  Options
	steps []Step
}

// New creates a Lineariser for g.
func New(g *nag.Graph, opts Options) *Lineariser {
	if opts.IsChange == nil {
		opts.IsChange = func(nag.NodeIndex) bool { return true }
	}
	if opts.Uninstall == nil {
		opts.Uninstall = func(nag.NodeIndex) bool { return false }
	}
	return &Lineariser{graph: g, opts: opts}
}

// Linearise walks sorted, which must come from the same graph, and returns
// the resulting steps in order.
func (l *Lineariser) Linearise(ctx context.Context, sorted nag.SortedStronglyConnectedComponents) ([]Step, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Linearising components.", "components", len(sorted))
	l.steps = nil

	for _, scc := range sorted {
		var changes []nag.NodeIndex
		for _, n := range scc.Nodes {
			if l.opts.IsChange(n) {
				changes = append(changes, n)
			}
		}

		switch len(changes) {
		case 0:
			// Only existing packages, nothing to order.
			continue
		case 1:
			l.schedule(changes[0], "")
			continue
		}

		logger.Debug("Breaking dependency cycle.", "members", len(scc.Nodes), "changes", len(changes))
		keep := make(map[nag.NodeIndex]struct{}, len(changes))
		for _, n := range changes {
			keep[n] = struct{}{}
		}
		sub := l.graph.Subgraph(func(n nag.NodeIndex) bool {
			_, ok := keep[n]
			return ok
		})
		subSorted, err := sub.Components(l.opts.OrderEarly)
		if err != nil {
			return nil, fmt.Errorf("sorting cycle %s: %w", nag.FormatNodes(scc.Nodes), err)
		}
		if err := l.lineariseSub(ctx, sub, scc, subSorted, true); err != nil {
			return nil, err
		}
	}

	logger.Debug("Linearisation complete.", "steps", len(l.steps))
	return l.steps, nil
}

func (l *Lineariser) lineariseSub(
	ctx context.Context,
	sub *nag.Graph,
	top nag.StronglyConnectedComponent,
	subSorted nag.SortedStronglyConnectedComponents,
	canRecurse bool,
) error {
	for _, scc := range subSorted {
		switch {
		case !scc.IsCycle():
			var note string
			if canRecurse {
				note = "In dependency cycle with existing packages: " + nag.FormatNodes(collect(sub))
			} else {
				note = "In dependency cycle with: " + nag.FormatNodes(top.Nodes)
			}
			l.schedule(scc.Nodes[0], note)

		case !sub.HasBuildDependencies(scc.Nodes):
			// Run-only cycles can be taken in any order.
			note := "In run dependency cycle with: " + nag.FormatNodes(scc.Nodes)
			if canRecurse {
				note += " in dependency cycle with " + nag.FormatNodes(top.Nodes)
			}
			for _, n := range scc.Nodes {
				l.schedule(n, note)
			}

		case canRecurse:
			members := make(map[nag.NodeIndex]struct{}, len(scc.Nodes))
			for _, n := range scc.Nodes {
				members[n] = struct{}{}
			}
			unmet := sub.Subgraph(func(n nag.NodeIndex) bool {
				_, ok := members[n]
				return ok
			}).WithoutMetDependencies()

			ctxlog.FromContext(ctx).Debug("Retrying cycle without met dependencies.", "members", len(scc.Nodes))
			unmetSorted, err := unmet.Components(l.opts.OrderEarly)
			if err != nil {
				return fmt.Errorf("sorting cycle %s without met dependencies: %w", nag.FormatNodes(scc.Nodes), err)
			}
			if err := l.lineariseSub(ctx, unmet, top, unmetSorted, false); err != nil {
				return err
			}

		default:
			return &CycleError{Nodes: scc.Nodes}
		}
	}
	return nil
}

func (l *Lineariser) schedule(n nag.NodeIndex, note string) {
	action := ActionInstall
	switch {
	case n.Role == nag.RoleFetched:
		action = ActionFetch
	case l.opts.Uninstall(n):
		action = ActionUninstall
	}
	l.steps = append(l.steps, Step{Node: n, Action: action, Note: note})
}

func collect(g *nag.Graph) []nag.NodeIndex {
	var out []nag.NodeIndex
	for n := range g.Nodes() {
		out = append(out, n)
	}
	return out
}
