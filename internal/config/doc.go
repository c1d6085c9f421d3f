// Package config defines the format-agnostic model of a graph description:
// the declared nodes with their ordering hints and the declared edges.
//
// The Model is what the loaders produce and what the app turns into a
// nag.Graph plus the classifiers the scheduler and lineariser consult.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
