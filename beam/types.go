// Package beam simulates a light beam bouncing through a grid of mirrors and
// splitters and counts the cells it energizes.
//
// A beam is a stack of pending (cell, heading) segments. Each step pops one,
// asks the tile for the outgoing heading(s), advances one cell per heading
// and drops any that leave the grid or repeat an already visited
// (cell, heading) pair. The pair space is finite and only grows, so the loop
// ends even when splitters send light around in circles.
//
// Complexity:
//
//   - Energize: O(W×H×4) time and memory.
//   - Best:     O((W+H) × W×H×4) work, spread over Workers goroutines.
package beam

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors for beam simulation.
var (
	// ErrNilGrid indicates a nil grid pointer.
	ErrNilGrid = errors.New("beam: grid is nil")
	// ErrStartOutOfBounds indicates the entry cell is outside the grid.
	ErrStartOutOfBounds = errors.New("beam: entry cell out of bounds")
	// ErrInvalidHeading indicates an entry heading outside Up..Right.
	ErrInvalidHeading = errors.New("beam: invalid entry heading")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("beam: invalid option supplied")
)

// Entry is a beam entering the grid at cell At with heading Heading.
type Entry struct {
	At      geom.Coordinate
	Heading geom.Direction
}

// Options configures Energize and Best.
type Options struct {
	// Ctx cancels a sweep; checked before each simulation.
	Ctx context.Context
	// Workers bounds how many simulations run at once. Default GOMAXPROCS.
	Workers int
	// OnEnergize is called once per newly visited (cell, heading) pair.
	// Best calls it from several goroutines at once.
	OnEnergize func(e Entry)

	err error
}

// Option is a functional option for Energize and Best.
type Option func(*Options)

// DefaultOptions returns a background context, GOMAXPROCS workers and a
// no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    runtime.GOMAXPROCS(0),
		OnEnergize: func(Entry) {},
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

// WithWorkers sets the number of concurrent simulations; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnEnergize registers a hook invoked for every newly visited
// (cell, heading) pair.
func WithOnEnergize(fn func(e Entry)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnergize = fn
		}
	}
}
