package resolvent

import (
	"fmt"
	"regexp"
	"strings"
)

// packageRegex matches `category/name`. Both halves follow the usual package
// naming rules: they may not start with a hyphen or a dot.
var packageRegex = regexp.MustCompile(`^[A-Za-z0-9_+][A-Za-z0-9_+.-]*/[A-Za-z0-9_+][A-Za-z0-9_+.-]*$`)

// slotRegex matches a slot, including an optional sub-slot (`3/3.1`).
var slotRegex = regexp.MustCompile(`^[A-Za-z0-9_+][A-Za-z0-9_+.-]*(?:/[A-Za-z0-9_+][A-Za-z0-9_+.-]*)?$`)

// Parse creates a Resolvent from its canonical text form.
func Parse(raw string) (Resolvent, error) {
	if raw == "" {
		return Resolvent{}, fmt.Errorf("resolvent cannot be empty")
	}

	var r Resolvent
	rest := raw
	if at := strings.LastIndexByte(rest, '@'); at >= 0 {
		dest, err := ParseDestination(rest[at+1:])
		if err != nil {
			return Resolvent{}, fmt.Errorf("invalid resolvent %q: %w", raw, err)
		}
		r.Destination = dest
		rest = rest[:at]
	}

	if colon := strings.IndexByte(rest, ':'); colon >= 0 {
		r.Slot = rest[colon+1:]
		rest = rest[:colon]
		if !slotRegex.MatchString(r.Slot) {
			return Resolvent{}, fmt.Errorf("invalid slot %q in resolvent %q", r.Slot, raw)
		}
	}

	if !packageRegex.MatchString(rest) {
		return Resolvent{}, fmt.Errorf("invalid package name %q in resolvent %q", rest, raw)
	}
	r.Package = rest

	return r, nil
}

// MustParse is like Parse but panics on error. It is intended for tests and
// static fixtures.
func MustParse(raw string) Resolvent {
	r, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return r
}
