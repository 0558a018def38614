package beam

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Energize runs one beam entering at start with heading and returns the
// number of distinct cells it touches, forks included.
// Returns ErrNilGrid, ErrStartOutOfBounds, ErrInvalidHeading or
// ErrOptionViolation.
func Energize(g *grid.Grid[Tile], start geom.Coordinate, heading geom.Direction, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}
	if g == nil {
		return 0, ErrNilGrid
	}
	if g.IsOutOfBounds(start) {
		return 0, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if !heading.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHeading, heading)
	}

	return simulate(g, Entry{At: start, Heading: heading}, cfg.OnEnergize), nil
}

// simulate is the work-stack loop; entry must be in bounds with a valid
// heading.
func simulate(g *grid.Grid[Tile], entry Entry, onEnergize func(Entry)) int {
	visited := make([]bool, g.Width()*g.Height()*4)
	lit := make([]bool, g.Width()*g.Height())
	count := 0

	mark := func(e Entry) bool {
		idx := g.Index(e.At)
		if visited[idx*4+int(e.Heading)] {
			return false
		}
		visited[idx*4+int(e.Heading)] = true
		onEnergize(e)
		if !lit[idx] {
			lit[idx] = true
			count++
		}
		return true
	}

	stack := []Entry{entry}
	mark(entry)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		primary, secondary, split := g.Get(cur.At).Next(cur.Heading)
		outs := []geom.Direction{primary}
		if split {
			outs = append(outs, secondary)
		}
		for _, d := range outs {
			next, moved := d.Step(cur.At)
			if !moved || g.IsOutOfBounds(next) {
				continue
			}
			e := Entry{At: next, Heading: d}
			if mark(e) {
				stack = append(stack, e)
			}
		}
	}

	return count
}

// Entries lists every perimeter entry: each top-row cell heading Down, each
// bottom-row cell heading Up, each left-column cell heading Right and each
// right-column cell heading Left. Corner cells appear twice, once per edge.
func Entries[T any](g *grid.Grid[T]) []Entry {
	out := make([]Entry, 0, 2*(g.Width()+g.Height()))
	for x := 0; x < g.Width(); x++ {
		out = append(out,
			Entry{At: geom.C(x, 0), Heading: geom.Down},
			Entry{At: geom.C(x, g.Height()-1), Heading: geom.Up},
		)
	}
	for y := 0; y < g.Height(); y++ {
		out = append(out,
			Entry{At: geom.C(0, y), Heading: geom.Right},
			Entry{At: geom.C(g.Width()-1, y), Heading: geom.Left},
		)
	}

	return out
}

// Best runs one simulation per perimeter entry and returns the largest
// energized count. Simulations are independent and run concurrently on at
// most Workers goroutines; the result does not depend on scheduling.
func Best(g *grid.Grid[Tile], opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}
	if g == nil {
		return 0, ErrNilGrid
	}

	var best atomic.Int64
	eg, ctx := errgroup.WithContext(cfg.Ctx)
	eg.SetLimit(cfg.Workers)
	for _, e := range Entries(g) {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n := int64(simulate(g, e, cfg.OnEnergize))
			for {
				cur := best.Load()
				if n <= cur || best.CompareAndSwap(cur, n) {
					return nil
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return int(best.Load()), nil
}

// Energized parses a contraption map and runs the top-left, heading-right
// beam.
func Energized(text string, opts ...Option) (int, error) {
	g, err := grid.Parse(text, DecodeTile)
	if err != nil {
		return 0, err
	}

	return Energize(g, geom.C(0, 0), geom.Right, opts...)
}

// BestEnergized parses a contraption map and returns Best.
func BestEnergized(text string, opts ...Option) (int, error) {
	g, err := grid.Parse(text, DecodeTile)
	if err != nil {
		return 0, err
	}

	return Best(g, opts...)
}
