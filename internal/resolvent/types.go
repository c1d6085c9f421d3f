package resolvent

import "fmt"

// Destination says where the resolved action puts its result.
type Destination int

const (
	// DestinationSlash installs into the live filesystem root.
	DestinationSlash Destination = iota
	// DestinationBinaries creates binary packages.
	DestinationBinaries
	// DestinationChroot installs into a chroot.
	DestinationChroot
)

var destinationNames = [...]string{
	DestinationSlash:    "slash",
	DestinationBinaries: "binaries",
	DestinationChroot:   "chroot",
}

func (d Destination) String() string {
	if d < 0 || int(d) >= len(destinationNames) {
		return fmt.Sprintf("Destination(%d)", int(d))
	}
	return destinationNames[d]
}

// ParseDestination converts a destination name into a Destination.
func ParseDestination(s string) (Destination, error) {
	for i, name := range destinationNames {
		if name == s {
			return Destination(i), nil
		}
	}
	return DestinationSlash, fmt.Errorf("unknown destination %q", s)
}

// Resolvent is a package in a particular resolution context. It is a
// comparable value type and may be used as a map key.
type Resolvent struct {
	Package     string
	Slot        string
	Destination Destination
}

// New returns a Resolvent for the default destination.
func New(pkg, slot string) Resolvent {
	return Resolvent{Package: pkg, Slot: slot}
}
