// This file translates the HCL schema structs into the format-agnostic
// config model.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/nagorder/internal/config"
	"github.com/specialistvlad/nagorder/internal/ctxlog"
	"github.com/specialistvlad/nagorder/internal/nag"
)

// translateNode converts a node block into its config declaration.
func translateNode(ctx context.Context, b *NodeBlock) (*config.Node, error) {
	logger := ctxlog.FromContext(ctx).With("node", b.Index)
	logger.Debug("Translating HCL node to internal config model.")

	idx, err := nag.ParseNodeIndex(b.Index)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", b.Index, err)
	}
	order, err := config.ParseOrder(deref(b.Order))
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", idx, err)
	}

	n := &config.Node{Index: idx, Order: order, Existing: deref(b.Existing)}
	switch action := deref(b.Action); action {
	case "", "install":
	case "uninstall":
		n.Uninstall = true
	default:
		return nil, fmt.Errorf("node %s: unknown action %q (want install or uninstall)", idx, action)
	}
	return n, nil
}

// translateEdge converts an edge block. An omitted all-met flag defaults to
// the negation of its dependency flag: a dependency that is not a build
// dependency is trivially met for building.
func translateEdge(ctx context.Context, b *EdgeBlock) (*config.Edge, error) {
	from, err := nag.ParseNodeIndex(b.From)
	if err != nil {
		return nil, fmt.Errorf("edge source %q: %w", b.From, err)
	}
	to, err := nag.ParseNodeIndex(b.To)
	if err != nil {
		return nil, fmt.Errorf("edge target %q: %w", b.To, err)
	}

	props := nag.EdgeProperties{
		Always: deref(b.Always),
		Build:  deref(b.Build),
		Run:    deref(b.Run),
	}
	if props.BuildAllMet, err = boolExpr(ctx, b.BuildAllMet, "build_all_met", !props.Build); err != nil {
		return nil, fmt.Errorf("edge %s -> %s: %w", from, to, err)
	}
	if props.RunAllMet, err = boolExpr(ctx, b.RunAllMet, "run_all_met", !props.Run); err != nil {
		return nil, fmt.Errorf("edge %s -> %s: %w", from, to, err)
	}

	ctxlog.FromContext(ctx).Debug("Translated HCL edge.", "from", from, "to", to, "properties", props)
	return &config.Edge{From: from, To: to, Properties: props}, nil
}
