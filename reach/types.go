// Package reach provides tunable options and error definitions
// for step-budgeted flood fill over a grid.Grid.
package reach

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for reach execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("reach: grid is nil")

	// ErrNegativeSteps is returned when the step budget is below zero.
	ErrNegativeSteps = errors.New("reach: step budget must be non-negative")

	// ErrNilPredicate is returned when the blocked predicate is nil.
	ErrNilPredicate = errors.New("reach: blocked predicate is nil")

	// ErrStartOutOfBounds is returned when the start lies outside the grid.
	ErrStartOutOfBounds = errors.New("reach: start is out of bounds")

	// ErrStartBlocked is returned when the start cell itself is impassable.
	ErrStartBlocked = errors.New("reach: start cell is blocked")

	// ErrNoStart is returned by Garden when the map has no 'S' cell.
	ErrNoStart = errors.New("reach: no start cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures flood fill via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one flood fill.
type Options struct {
	// Ctx allows cancellation; checked once per layer.
	Ctx context.Context

	// OnLayer is called after each layer is expanded with the step number
	// (1-based) and the number of distinct cells in that layer.
	OnLayer func(step, size int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLayer: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is recorded as ErrOptionViolation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnLayer registers a per-layer callback.
func WithOnLayer(fn func(step, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}
