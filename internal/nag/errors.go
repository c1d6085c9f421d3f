package nag

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal marks a structural inconsistency: a bug in whatever built
	// the graph, never bad user input.
	ErrInternal = errors.New("internal consistency error")
	// ErrMalformedRecord marks a persisted record that cannot be turned back
	// into a graph.
	ErrMalformedRecord = errors.New("malformed graph record")
)

// InternalError carries the context needed to debug a structural failure.
type InternalError struct {
	Op    string
	Msg   string
	Nodes []NodeIndex
	// Dump is a rendering of the relevant node and edge sets.
	Dump string
}

func (e *InternalError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %s: %s", ErrInternal.Error(), e.Op, e.Msg)
	if e.Dump != "" {
		msg += " (" + e.Dump + ")"
	}
	return msg
}

func (e *InternalError) Unwrap() error { return ErrInternal }

func internalf(op string, nodes []NodeIndex, dump string, format string, args ...any) error {
	return &InternalError{Op: op, Msg: fmt.Sprintf(format, args...), Nodes: nodes, Dump: dump}
}

// DeserialiseError reports which record key could not be used.
type DeserialiseError struct {
	Key string
	Err error
}

func (e *DeserialiseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", ErrMalformedRecord.Error(), e.Err)
	}
	return fmt.Sprintf("%s: key %q: %v", ErrMalformedRecord.Error(), e.Key, e.Err)
}

func (e *DeserialiseError) Unwrap() []error { return []error{ErrMalformedRecord, e.Err} }
