package nag

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/specialistvlad/nagorder/internal/resolvent"
)

// Role identifies which sub-action of a resolvent a node stands for.
type Role int

const (
	// RoleFetched is the retrieval step.
	RoleFetched Role = iota
	// RoleDone is the build, install or uninstall step.
	RoleDone
)

func (r Role) String() string {
	switch r {
	case RoleFetched:
		return "fetched"
	case RoleDone:
		return "done"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole converts the textual form of a role back into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "fetched":
		return RoleFetched, nil
	case "done":
		return RoleDone, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

// NodeIndex identifies a node: a resolvent together with a role.
type NodeIndex struct {
	Resolvent resolvent.Resolvent
	Role      Role
}

// Fetched returns the Fetched node for r.
func Fetched(r resolvent.Resolvent) NodeIndex {
	return NodeIndex{Resolvent: r, Role: RoleFetched}
}

// Done returns the Done node for r.
func Done(r resolvent.Resolvent) NodeIndex {
	return NodeIndex{Resolvent: r, Role: RoleDone}
}

// Compare orders by resolvent first and role second.
func (n NodeIndex) Compare(other NodeIndex) int {
	if c := resolvent.Compare(n.Resolvent, other.Resolvent); c != 0 {
		return c
	}
	return cmp.Compare(n.Role, other.Role)
}

// Less reports whether n sorts before other.
func (n NodeIndex) Less(other NodeIndex) bool {
	return n.Compare(other) < 0
}

// Hash is derived from the resolvent alone, so both roles of a resolvent hash
// identically.
func (n NodeIndex) Hash() uint64 {
	return n.Resolvent.Hash()
}

// String renders the node as `<resolvent>#<role>`.
func (n NodeIndex) String() string {
	return n.Resolvent.String() + "#" + n.Role.String()
}

// ParseNodeIndex is the inverse of NodeIndex.String.
func ParseNodeIndex(raw string) (NodeIndex, error) {
	hash := strings.LastIndexByte(raw, '#')
	if hash < 0 {
		return NodeIndex{}, fmt.Errorf("node %q has no role suffix", raw)
	}
	r, err := resolvent.Parse(raw[:hash])
	if err != nil {
		return NodeIndex{}, err
	}
	role, err := ParseRole(raw[hash+1:])
	if err != nil {
		return NodeIndex{}, fmt.Errorf("node %q: %w", raw, err)
	}
	return NodeIndex{Resolvent: r, Role: role}, nil
}

// MustParseNodeIndex is like ParseNodeIndex but panics on error.
func MustParseNodeIndex(raw string) NodeIndex {
	n, err := ParseNodeIndex(raw)
	if err != nil {
		panic(err)
	}
	return n
}

func compareNodes(a, b NodeIndex) int { return a.Compare(b) }

// FormatNodes renders nodes as a braced, comma-separated set, as used in
// error dumps and cycle notes.
func FormatNodes(nodes []NodeIndex) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Tribool is a three-valued answer.
type Tribool int8

const (
	// Indeterminate means no preference.
	Indeterminate Tribool = iota
	// True means yes, or as early as possible.
	True
	// False means no, or as late as possible.
	False
)

func (t Tribool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "indeterminate"
	}
}

// OrderEarlyFunc classifies a node as wanting to run as early as possible
// (True), as late as possible (False), or having no preference. It must be
// free of side effects.
type OrderEarlyFunc func(NodeIndex) Tribool
