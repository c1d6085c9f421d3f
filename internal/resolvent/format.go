package resolvent

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// String serializes the Resolvent into its canonical text form.
func (r Resolvent) String() string {
	var sb strings.Builder
	sb.WriteString(r.Package)
	if r.Slot != "" {
		sb.WriteByte(':')
		sb.WriteString(r.Slot)
	}
	if r.Destination != DestinationSlash {
		sb.WriteByte('@')
		sb.WriteString(r.Destination.String())
	}
	return sb.String()
}

// Hash returns a stable 64-bit hash of the canonical text form.
func (r Resolvent) Hash() uint64 {
	return xxhash.Sum64String(r.String())
}
