// Package hcl_adapter loads graph descriptions written in HCL into the
// format-agnostic config.Model.
//
// A description is one `.hcl` file or a directory tree of them. Every file
// may declare `node` blocks, labelled with a node index, and `edge` blocks,
// labelled with the source and target node indices.
package hcl_adapter
