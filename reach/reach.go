// Package reach counts the cells a walker can stand on after exactly K
// orthogonal steps from a start cell, never entering blocked cells.
//
// The search advances one whole layer at a time. Layer k is the set of
// distinct coordinates reachable in exactly k moves; a coordinate reached
// twice at the same layer is kept once. Expansion stops at layer K, so the
// answer is "exactly K", not "at most K": with no blocked cells a walker
// that must take 1 step cannot stay on its start.
//
// Complexity: O(K × W×H) time in the worst case, O(W×H) memory.
package reach

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// walker encapsulates mutable flood-fill state for a single call.
type walker[T any] struct {
	g       *grid.Grid[T]
	blocked func(T) bool
	opts    Options
	layer   []geom.Coordinate
	seen    []int // seen[idx] == step once idx has joined layer step
}

// Frontier returns the distinct coordinates reachable from start in exactly
// steps moves, sorted by row then column.
// Returns ErrNilGrid, ErrNilPredicate, ErrNegativeSteps, ErrStartOutOfBounds,
// ErrStartBlocked, ErrOptionViolation, or the context error on cancellation.
func Frontier[T any](g *grid.Grid[T], start geom.Coordinate, blocked func(T) bool, steps int, opts ...Option) ([]geom.Coordinate, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if blocked == nil {
		return nil, ErrNilPredicate
	}
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	if g.IsOutOfBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if blocked(g.Get(start)) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	w := &walker[T]{
		g:       g,
		blocked: blocked,
		opts:    o,
		layer:   []geom.Coordinate{start},
		seen:    make([]int, g.Width()*g.Height()),
	}
	if err := w.loop(steps); err != nil {
		return nil, err
	}
	slices.SortFunc(w.layer, geom.Coordinate.Compare)

	return w.layer, nil
}

// CountAt returns len(Frontier(...)). A zero step budget always yields 1.
func CountAt[T any](g *grid.Grid[T], start geom.Coordinate, blocked func(T) bool, steps int, opts ...Option) (int, error) {
	cells, err := Frontier(g, start, blocked, steps, opts...)
	if err != nil {
		return 0, err
	}

	return len(cells), nil
}

// loop expands layer by layer until the budget is spent or the frontier dies.
func (w *walker[T]) loop(steps int) error {
	for step := 1; step <= steps; step++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.layer = w.expand(step)
		w.opts.OnLayer(step, len(w.layer))
		if len(w.layer) == 0 {
			break
		}
	}

	return nil
}

// expand builds layer step from the current layer.
func (w *walker[T]) expand(step int) []geom.Coordinate {
	next := make([]geom.Coordinate, 0, len(w.layer)*2)
	for _, c := range w.layer {
		for _, n := range w.g.Neighbors(c) {
			if w.blocked(n.Value) {
				continue
			}
			idx := w.g.Index(n.At)
			if w.seen[idx] == step {
				continue
			}
			w.seen[idx] = step
			next = append(next, n.At)
		}
	}

	return next
}
