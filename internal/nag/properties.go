package nag

import "strings"

// EdgeProperties classifies why an edge exists. When parallel edges are
// merged, Always, Build and Run accumulate with OR while BuildAllMet and
// RunAllMet accumulate with AND: a single unmet reason makes the merged
// requirement unmet.
type EdgeProperties struct {
	Always      bool
	Build       bool
	BuildAllMet bool
	Run         bool
	RunAllMet   bool
}

// NoEdgeProperties is the identity element of Merge.
var NoEdgeProperties = EdgeProperties{BuildAllMet: true, RunAllMet: true}

// Merge combines two property sets. It is commutative and associative.
func (p EdgeProperties) Merge(other EdgeProperties) EdgeProperties {
	return EdgeProperties{
		Always:      p.Always || other.Always,
		Build:       p.Build || other.Build,
		BuildAllMet: p.BuildAllMet && other.BuildAllMet,
		Run:         p.Run || other.Run,
		RunAllMet:   p.RunAllMet && other.RunAllMet,
	}
}

func (p EdgeProperties) String() string {
	var set []string
	if p.Always {
		set = append(set, "always")
	}
	if p.Build {
		if p.BuildAllMet {
			set = append(set, "build(met)")
		} else {
			set = append(set, "build")
		}
	}
	if p.Run {
		if p.RunAllMet {
			set = append(set, "run(met)")
		} else {
			set = append(set, "run")
		}
	}
	return strings.Join(set, ",")
}
