// Package crucible computes minimum-cost paths across a grid of cell costs
// for a cart that cannot turn freely: it must travel at least MinRun cells
// in a heading before turning and at most MaxRun before it is forced to
// turn, and it may never reverse.
//
// It is Dijkstra over the expanded state graph (cell, heading, run).
// Entering a cell costs that cell's value.
//
// Complexity:
//
//   - Time:  O(S log S) with S = W×H×4×min(MaxRun, max(W, H)) states.
//   - Space: O(S) for the settled table and the heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - We scan all cells upfront (O(W×H)) to reject negative costs.
//   - We use a "lazy" decrease-key: duplicates are pushed and stale entries
//     are skipped when popped.
//   - Equal-cost heap entries pop in insertion order, so a repeated call on
//     the same input settles states in the same order and returns the same
//     path.
package crucible

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// MinimumCost returns the cheapest admissible cost from from to to.
// It returns ErrNoPath when the destination cannot be reached.
func MinimumCost(g *grid.Grid[int], from, to geom.Coordinate, opts ...Option) (int, error) {
	res, err := Search(g, from, to, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Search runs the turn-limited Dijkstra from from to to.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. from and to must be in bounds (ErrOutOfBounds).
//  4. No cell may be negative (ErrNegativeCost).
//
// from == to yields a zero-cost result without moving.
func Search(g *grid.Grid[int], from, to geom.Coordinate, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.IsOutOfBounds(from) || g.IsOutOfBounds(to) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}

	// 2) Pre-scan all cells to detect negative costs. Fail fast.
	for c, v := range g.All() {
		if v < 0 {
			return nil, fmt.Errorf("%w: %v cost=%d", ErrNegativeCost, c, v)
		}
	}

	start := State{At: from}
	if from == to {
		res := &Result{}
		if cfg.ReturnPath {
			res.Path = []State{start}
		}
		return res, nil
	}

	// A straight run never exceeds the grid's longer side, so larger limits
	// only inflate the state table.
	cfg.MaxRun = min(cfg.MaxRun, max(g.Width(), g.Height()))
	if cfg.MinRun > cfg.MaxRun {
		return nil, ErrNoPath
	}

	r := newRunner(g, to, cfg)
	r.push(start, 0, -1)

	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid[int]
	goal    geom.Coordinate
	options Options
	dist    []int   // best known cost per state slot
	done    []bool  // finalized flag per state slot
	prev    []int   // parent slot per state slot; nil unless ReturnPath
	pq      statePQ // min-heap of *stateItem
	seq     int     // insertion counter for tie-breaking
}

func newRunner(g *grid.Grid[int], goal geom.Coordinate, cfg Options) *runner {
	// Slot layout: cell index × 4 headings × (MaxRun+1) runs.
	n := g.Width() * g.Height() * 4 * (cfg.MaxRun + 1)
	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		dist:    make([]int, n),
		done:    make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	heap.Init(&r.pq)

	return r
}

// slot maps a state to its flat table index.
func (r *runner) slot(s State) int {
	return (r.g.Index(s.At)*4+int(s.Heading))*(r.options.MaxRun+1) + s.Run
}

// state is the inverse of slot.
func (r *runner) state(slot int) State {
	runs := r.options.MaxRun + 1
	run := slot % runs
	slot /= runs

	return State{At: r.g.Coordinate(slot / 4), Heading: geom.Direction(slot % 4), Run: run}
}

// push records cost for s if it improves on the best known, and enqueues it.
func (r *runner) push(s State, cost, parent int) {
	i := r.slot(s)
	if cost >= r.dist[i] {
		return
	}
	r.dist[i] = cost
	if r.prev != nil {
		r.prev[i] = parent
	}
	r.seq++
	heap.Push(&r.pq, &stateItem{state: s, cost: cost, seq: r.seq})
}

// process is the core loop. It pops the cheapest state, stops at the first
// admissible goal state, and relaxes the rest.
func (r *runner) process() (*Result, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem)
		s := item.state
		i := r.slot(s)
		if r.done[i] {
			continue // stale entry
		}
		r.done[i] = true
		r.options.OnSettle(s, item.cost)

		if s.At == r.goal && s.Run >= r.options.MinRun {
			return r.result(i, item.cost), nil
		}
		r.relax(s, item.cost, i)
	}

	return nil, ErrNoPath
}

// relax pushes every legal successor of s.
//
//	Run == 0        : start: any heading.
//	Run <  MaxRun   : straight ahead, Run+1.
//	Run >= MinRun   : quarter turn left or right, Run = 1.
//
// Reversing is never generated.
func (r *runner) relax(s State, cost, slot int) {
	if s.Run == 0 {
		for _, d := range geom.Directions {
			r.move(s.At, d, 1, cost, slot)
		}
		return
	}
	if s.Run < r.options.MaxRun {
		r.move(s.At, s.Heading, s.Run+1, cost, slot)
	}
	if s.Run >= r.options.MinRun {
		r.move(s.At, s.Heading.TurnLeft(), 1, cost, slot)
		r.move(s.At, s.Heading.TurnRight(), 1, cost, slot)
	}
}

// move steps one cell from at in heading d; saturated or out-of-bounds
// moves are dropped.
func (r *runner) move(at geom.Coordinate, d geom.Direction, run, cost, parent int) {
	next, moved := d.Step(at)
	if !moved || r.g.IsOutOfBounds(next) {
		return
	}
	r.push(State{At: next, Heading: d, Run: run}, cost+r.g.Get(next), parent)
}

// result builds the Result for the goal slot, walking parents if recorded.
func (r *runner) result(goal, cost int) *Result {
	res := &Result{Cost: cost}
	if r.prev == nil {
		return res
	}
	for at := goal; at >= 0; at = r.prev[at] {
		res.Path = append(res.Path, r.state(at))
	}
	for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
		res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
	}

	return res
}

// stateItem is a heap entry: a state, its cost and its insertion sequence.
type stateItem struct {
	state State
	cost  int
	seq   int
}

// statePQ is a min-heap of *stateItem ordered by cost, then by seq.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs pop first-in first-out.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *stateItem.
func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element.
func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
