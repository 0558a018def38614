package bricks

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/gridkit/geom"
)

// ParseSnapshot reads one "x,y,z~x,y,z" brick per line. Corners may be given
// in either order.
func ParseSnapshot(text string) ([]Brick, error) {
	var out []Brick
	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "~")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadBrick, i+1, line)
		}
		p, err := geom.ParsePoint3D(a)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadBrick, i+1, err)
		}
		q, err := geom.ParsePoint3D(b)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadBrick, i+1, err)
		}
		br := normalize(p, q)
		if br.Lo.Z < 1 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBelowGround, i+1, line)
		}
		out = append(out, br)
	}

	return out, nil
}

func normalize(p, q geom.Point3D) Brick {
	return Brick{
		Lo: geom.Point3D{X: min(p.X, q.X), Y: min(p.Y, q.Y), Z: min(p.Z, q.Z)},
		Hi: geom.Point3D{X: max(p.X, q.X), Y: max(p.Y, q.Y), Z: max(p.Z, q.Z)},
	}
}

// Height is the number of levels the brick spans.
func (b Brick) Height() int {
	return b.Hi.Z - b.Lo.Z + 1
}

// column records the top of the stack over one floor cell.
type column struct {
	top   int // highest occupied z, 0 for bare floor
	brick int // index of the brick owning top, -1 for bare floor
}

// Settle drops a copy of bricks to rest, lowest first, and builds the
// support graph. The input slice is not modified.
func Settle(bricks []Brick) *Tower {
	order := append([]Brick(nil), bricks...)
	slices.SortStableFunc(order, func(a, b Brick) int { return a.Lo.Z - b.Lo.Z })

	t := &Tower{
		Bricks:      order,
		Supports:    make([][]int, len(order)),
		SupportedBy: make([][]int, len(order)),
	}
	floor := map[[2]int]column{}

	for i := range order {
		b := &order[i]

		rest := 0
		for x := b.Lo.X; x <= b.Hi.X; x++ {
			for y := b.Lo.Y; y <= b.Hi.Y; y++ {
				if c, ok := floor[[2]int{x, y}]; ok && c.top > rest {
					rest = c.top
				}
			}
		}

		h := b.Height()
		b.Lo.Z = rest + 1
		b.Hi.Z = rest + h

		for x := b.Lo.X; x <= b.Hi.X; x++ {
			for y := b.Lo.Y; y <= b.Hi.Y; y++ {
				key := [2]int{x, y}
				if c, ok := floor[key]; ok && rest > 0 && c.top == rest && !slices.Contains(t.SupportedBy[i], c.brick) {
					t.SupportedBy[i] = append(t.SupportedBy[i], c.brick)
					t.Supports[c.brick] = append(t.Supports[c.brick], i)
				}
				floor[key] = column{top: b.Hi.Z, brick: i}
			}
		}
	}

	return t
}

// Disintegrable counts the bricks that can be removed without any other
// brick falling: every brick they support has another supporter.
func (t *Tower) Disintegrable() int {
	n := 0
	for i := range t.Bricks {
		safe := true
		for _, above := range t.Supports[i] {
			if len(t.SupportedBy[above]) < 2 {
				safe = false
				break
			}
		}
		if safe {
			n++
		}
	}

	return n
}

// Falls returns how many other bricks would fall if brick i were removed.
// A brick falls once every one of its supporters has fallen.
func (t *Tower) Falls(i int) int {
	missing := make([]int, len(t.Bricks))
	queue := []int{i}
	fallen := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, above := range t.Supports[cur] {
			missing[above]++
			if missing[above] == len(t.SupportedBy[above]) {
				fallen++
				queue = append(queue, above)
			}
		}
	}

	return fallen
}

// ChainReaction sums Falls over every brick.
func (t *Tower) ChainReaction() int {
	total := 0
	for i := range t.Bricks {
		total += t.Falls(i)
	}

	return total
}

// Analyze parses and settles a snapshot.
func Analyze(text string) (*Tower, error) {
	bricks, err := ParseSnapshot(text)
	if err != nil {
		return nil, err
	}

	return Settle(bricks), nil
}
