// Package walk provides tunable options and error definitions for
// traversals over a core.Tree.
package walk

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arbor/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("walk: tree is nil")

	// ErrRootNotFound is returned when the start handle does not resolve.
	ErrRootNotFound = errors.New("walk: root node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops descending below this depth
	// (the root is depth 0). A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(core.NodeID, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the traversal.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the descent at the given depth (inclusive).
//
//	d > 0: visit nodes at depth ≤ d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order lists node handles in visitation order.
	Order []core.NodeID

	// Depth maps each visited handle to its distance from the root.
	Depth map[core.NodeID]int
}
