package lineariser

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/nagorder/internal/nag"
)

// ErrUnresolvableCycle is returned when a dependency cycle cannot be broken.
var ErrUnresolvableCycle = errors.New("circular dependencies that cannot be ordered")

// Action is what a step does.
type Action int

const (
	ActionFetch Action = iota
	ActionInstall
	ActionUninstall
)

func (a Action) String() string {
	switch a {
	case ActionFetch:
		return "fetch"
	case ActionInstall:
		return "install"
	case ActionUninstall:
		return "uninstall"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Step is one entry of the final plan.
type Step struct {
	Node   nag.NodeIndex
	Action Action
	// Note explains why the step is where it is when it was part of a cycle.
	Note string
}

func (s Step) String() string {
	if s.Note == "" {
		return fmt.Sprintf("%s %s", s.Action, s.Node.Resolvent)
	}
	return fmt.Sprintf("%s %s (%s)", s.Action, s.Node.Resolvent, s.Note)
}

// Options configures a Lineariser. Every field is optional.
type Options struct {
	// OrderEarly is passed on when cycles are re-sorted.
	OrderEarly nag.OrderEarlyFunc
	// IsChange reports whether a node needs work. Nodes that need none
	// produce no step. Defaults to every node.
	IsChange func(nag.NodeIndex) bool
	// Uninstall reports whether a Done node removes its package rather than
	// installing it.
	Uninstall func(nag.NodeIndex) bool
}

// CycleError names the members of a cycle that could not be broken.
type CycleError struct {
	Nodes []nag.NodeIndex
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnresolvableCycle.Error(), nag.FormatNodes(e.Nodes))
}

func (e *CycleError) Unwrap() error { return ErrUnresolvableCycle }
