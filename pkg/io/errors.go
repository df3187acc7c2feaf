package io

import (
	"errors"
	"fmt"
)

// ErrInvalidRole is returned when a node's type is not one of the defined
// network roles.
var ErrInvalidRole = errors.New("invalid node role")

func errInvalidRole(role string) error {
	return fmt.Errorf("%w: %q", ErrInvalidRole, role)
}

// NodeError wraps a failure while decoding one node, identifying it.
type NodeError struct {
	ID  string
	Err error
}

func (e *NodeError) Error() string { return fmt.Sprintf("node %q: %v", e.ID, e.Err) }

// Unwrap returns the underlying cause.
func (e *NodeError) Unwrap() error { return e.Err }

// EdgeError wraps a failure while decoding one edge, identifying it.
type EdgeError struct {
	From string
	To   string
	Err  error
}

func (e *EdgeError) Error() string { return fmt.Sprintf("edge %s -> %s: %v", e.From, e.To, e.Err) }

// Unwrap returns the underlying cause.
func (e *EdgeError) Unwrap() error { return e.Err }
