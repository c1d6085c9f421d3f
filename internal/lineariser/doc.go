// Package lineariser turns the sorted strongly connected components of a
// node-action graph into a flat list of steps.
//
// Components without cycles map directly onto steps. For a cycle, the
// lineariser first ignores nodes that need no work, then orders whatever is
// left: run-only cycles may be taken in any order, and cycles involving build
// dependencies are retried once with already-met dependencies removed. A
// cycle that survives that is reported as ErrUnresolvableCycle.
package lineariser
