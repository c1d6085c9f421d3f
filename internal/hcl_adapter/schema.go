package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is the set of top-level blocks accepted in a description file.
type fileRoot struct {
	Nodes []*NodeBlock `hcl:"node,block"`
	Edges []*EdgeBlock `hcl:"edge,block"`
}

// NodeBlock is the HCL schema of a `node "<index>" {}` block.
type NodeBlock struct {
	Index    string  `hcl:"index,label"`
	Order    *string `hcl:"order,optional"`
	Existing *bool   `hcl:"existing,optional"`
	Action   *string `hcl:"action,optional"`
}

// EdgeBlock is the HCL schema of an `edge "<from>" "<to>" {}` block. The
// all-met flags stay expressions because their default depends on whether
// they were written at all.
type EdgeBlock struct {
	From        string         `hcl:"from,label"`
	To          string         `hcl:"to,label"`
	Always      *bool          `hcl:"always,optional"`
	Build       *bool          `hcl:"build,optional"`
	BuildAllMet hcl.Expression `hcl:"build_all_met,optional"`
	Run         *bool          `hcl:"run,optional"`
	RunAllMet   hcl.Expression `hcl:"run_all_met,optional"`
}
