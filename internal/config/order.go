package config

import (
	"fmt"

	"github.com/specialistvlad/nagorder/internal/nag"
)

// Order is the declared scheduling preference of a node.
type Order int

const (
	OrderIndifferent Order = iota
	OrderEarly
	OrderLate
)

func (o Order) String() string {
	switch o {
	case OrderEarly:
		return "early"
	case OrderLate:
		return "late"
	default:
		return "indifferent"
	}
}

// ParseOrder accepts "early", "late", "indifferent" or the empty string.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "indifferent":
		return OrderIndifferent, nil
	case "early":
		return OrderEarly, nil
	case "late":
		return OrderLate, nil
	default:
		return OrderIndifferent, fmt.Errorf("unknown order %q (want early, late or indifferent)", s)
	}
}

// Tribool maps the preference onto the answer an OrderEarlyFunc gives.
func (o Order) Tribool() nag.Tribool {
	switch o {
	case OrderEarly:
		return nag.True
	case OrderLate:
		return nag.False
	default:
		return nag.Indeterminate
	}
}
