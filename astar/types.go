// Package astar defines options, results and sentinel errors
// for A* search over a gridmap.GridMap.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Unreachable is the length reported when the open set is exhausted without
// reaching the target. It is distinct from every valid length, including 0.
const Unreachable = -1

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGridMap indicates that a nil *gridmap.GridMap was passed.
	ErrNilGridMap = errors.New("astar: grid map is nil")

	// ErrInvalidEndpoint indicates that the source or target cell is
	// off the grid or blocked. ErrInvalidSource and ErrInvalidTarget wrap it.
	ErrInvalidEndpoint = errors.New("astar: endpoint is not a valid cell")

	// ErrInvalidSource indicates that the source cell is off the grid or blocked.
	ErrInvalidSource = fmt.Errorf("%w: source", ErrInvalidEndpoint)

	// ErrInvalidTarget indicates that the target cell is off the grid or blocked.
	ErrInvalidTarget = fmt.Errorf("%w: target", ErrInvalidEndpoint)

	// ErrSearchAborted indicates the search stopped before finishing, either
	// because the expansion cap was hit or the context was cancelled.
	ErrSearchAborted = errors.New("astar: search aborted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Result is the outcome of a completed search.
type Result struct {
	// Length is the number of unit moves on a shortest path,
	// or Unreachable if no path exists.
	Length int
	// Found reports whether the target was reached.
	Found bool
	// Expanded counts the nodes moved to the closed set.
	Expanded int
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrSearchAborted after
	// that many nodes have been closed without reaching the target.
	// 0 disables the cap.
	MaxExpansions int

	// OnExpand is called each time a node is moved to the closed set,
	// with its cell, G cost and F cost.
	OnExpand func(c gridmap.Cell, g, f int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion cap
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(gridmap.Cell, int, int) {},
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

// WithMaxExpansions caps the number of closed nodes.
//
//	n > 0: abort with ErrSearchAborted after n expansions
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run whenever a node is closed.
func WithOnExpand(fn func(c gridmap.Cell, g, f int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
