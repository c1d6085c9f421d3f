// Package nag implements the node-action graph used to order the actions a
// dependency resolution produces.
//
// # Model
//
// Every resolved package contributes up to two nodes: a Fetched node for the
// retrieval step and a Done node for the build, install or uninstall step.
// Directed edges point from a node to the nodes that must wait for it, and
// carry EdgeProperties describing why the edge exists. Parallel edges between
// the same ordered pair are merged.
//
// # Lifecycle
//
//  1. **Populated** by the resolver through AddNode and AddEdge, in any order.
//  2. **Verified** once with Verify; a dangling edge endpoint is a bug in the
//     producer and reported as an InternalError.
//  3. **Ordered** with Components, which condenses cycles into strongly
//     connected components (Tarjan) and sorts the condensation
//     deterministically, deferring lone fetch steps until just before the
//     first step that consumes them.
//  4. **Persisted** (optionally) with Serialise and restored with Deserialise.
//
// A Graph is not safe for concurrent mutation. The SortedStronglyConnectedComponents
// returned by Components is never modified afterwards and may be shared freely.
package nag
