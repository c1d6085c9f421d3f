package resolvent

import (
	"cmp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare orders resolvents by package, then slot, then destination. It
// returns -1, 0 or +1 and is consistent with ==.
func Compare(a, b Resolvent) int {
	if c := strings.Compare(a.Package, b.Package); c != 0 {
		return c
	}
	if c := compareSlots(a.Slot, b.Slot); c != 0 {
		return c
	}
	return cmp.Compare(a.Destination, b.Destination)
}

// Less reports whether a sorts before b.
func Less(a, b Resolvent) bool {
	return Compare(a, b) < 0
}

// compareSlots compares version-like slots numerically so that `:2` sorts
// before `:10`. Slots that are not versions sort after those that are.
func compareSlots(a, b string) int {
	if a == b {
		return 0
	}

	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if c := va.Compare(vb); c != 0 {
			return c
		}
		// "1.0" and "1.0.0" are the same version but different slots.
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
