// Package crucible defines the search state, configuration options and
// sentinel errors for turn-limited shortest paths on a cost grid.
//
// Options:
//
//	– MinRun / MaxRun: a run is the number of consecutive moves in one
//	  heading. A turn is only allowed once the run reaches MinRun; going
//	  straight is only allowed while the run is below MaxRun. The goal only
//	  counts when reached with a run of at least MinRun.
//	– ReturnPath: keep parent pointers and return the state sequence.
//	– Ctx: cancellation, checked once per settled state.
//	– OnSettle: hook called when a state's cost becomes final.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the cost grid pointer is nil.
//	– ErrOutOfBounds      if from or to lies outside the grid.
//	– ErrNegativeCost     if any cell holds a negative cost.
//	– ErrNoPath           if no admissible route exists.
//	– ErrOptionViolation  if MinRun < 1 or MaxRun < MinRun.
package crucible

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
)

// Sentinel errors returned by Search and MinimumCost.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrOutOfBounds indicates that an endpoint lies outside the grid.
	ErrOutOfBounds = errors.New("crucible: endpoint out of bounds")

	// ErrNegativeCost indicates that a cell holds a negative cost.
	ErrNegativeCost = errors.New("crucible: negative cell cost encountered")

	// ErrNoPath indicates that no admissible route reaches the destination.
	// It is distinct from a zero-cost result.
	ErrNoPath = errors.New("crucible: no admissible path")

	// ErrOptionViolation indicates invalid run limits.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")
)

// State is one node of the expanded search graph. Two states are equal only
// if all three fields match: the same cell entered with a different heading
// or run length is explored separately.
// Run == 0 only for the start state, whose Heading is meaningless.
type State struct {
	At      geom.Coordinate
	Heading geom.Direction
	Run     int
}

// Result is the outcome of Search.
//
//	Cost – total of the cell costs entered along the best path (the start
//	       cell is not charged).
//	Path – states from start to goal inclusive, only with WithReturnPath.
type Result struct {
	Cost int
	Path []State
}

// Options configures Search.
type Options struct {
	MinRun     int             // Moves required before a turn or a finish
	MaxRun     int             // Moves allowed before a forced turn
	ReturnPath bool            // Whether to record parent pointers
	Ctx        context.Context // Cancellation
	OnSettle   func(s State, cost int)

	err error // recorded by option constructors
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns run limits 1..3, no path, background context.
func DefaultOptions() Options {
	return Options{
		MinRun:   1,
		MaxRun:   3,
		Ctx:      context.Background(),
		OnSettle: func(State, int) {},
	}
}

// WithRunLimits sets the minimum and maximum straight run.
// minRun must be ≥ 1 and maxRun ≥ minRun; otherwise Search returns ErrOptionViolation.
func WithRunLimits(minRun, maxRun int) Option {
	return func(o *Options) {
		if minRun < 1 || maxRun < minRun {
			o.err = fmt.Errorf("%w: run limits %d..%d", ErrOptionViolation, minRun, maxRun)
			return
		}
		o.MinRun, o.MaxRun = minRun, maxRun
	}
}

// WithReturnPath enables path reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
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

// WithOnSettle registers a hook invoked once per finalized state.
func WithOnSettle(fn func(s State, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
