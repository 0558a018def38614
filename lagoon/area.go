package lagoon

import "fmt"

// Vertex is a signed lattice point. Plans wander left of and above their
// origin, so unlike geom.Coordinate both components may go negative.
type Vertex struct {
	X, Y int64
}

// Trace replays plan from the origin one unit step at a time and returns the
// boundary points, starting with the first step (the origin appears last
// when the walk closes).
func Trace(plan []Instruction) []Vertex {
	var total int64
	for _, in := range plan {
		total += in.Count
	}
	out := make([]Vertex, 0, total)
	var at Vertex
	for _, in := range plan {
		dx, dy := in.Heading.Delta()
		for i := int64(0); i < in.Count; i++ {
			at.X += int64(dx)
			at.Y += int64(dy)
			out = append(out, at)
		}
	}

	return out
}

// Corners returns the vertex reached after each instruction, and the total
// number of unit steps walked.
func Corners(plan []Instruction) ([]Vertex, int64) {
	out := make([]Vertex, 0, len(plan))
	var at Vertex
	var perimeter int64
	for _, in := range plan {
		dx, dy := in.Heading.Delta()
		at.X += int64(dx) * in.Count
		at.Y += int64(dy) * in.Count
		perimeter += in.Count
		out = append(out, at)
	}

	return out, perimeter
}

// ShoelaceArea returns twice the absolute area of the closed polygon vs.
// The doubled form is exact for lattice points.
func ShoelaceArea(vs []Vertex) int64 {
	var sum int64
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}

	return sum
}

// LatticeArea returns the number of lattice cells enclosed by the plan's
// walk, the boundary cells included: A + B/2 + 1.
func LatticeArea(plan []Instruction) (int64, error) {
	if len(plan) == 0 {
		return 0, ErrEmptyPlan
	}
	vs, perimeter := Corners(plan)
	if end := vs[len(vs)-1]; end != (Vertex{}) {
		return 0, fmt.Errorf("%w: ends at (%d,%d)", ErrOpenWalk, end.X, end.Y)
	}

	return (ShoelaceArea(vs)+perimeter)/2 + 1, nil
}

// Lagoon parses a plan literally and returns its LatticeArea.
func Lagoon(text string) (int64, error) {
	plan, err := ParsePlan(text)
	if err != nil {
		return 0, err
	}

	return LatticeArea(plan)
}

// HexLagoon parses a plan from its colour codes and returns its LatticeArea.
func HexLagoon(text string) (int64, error) {
	plan, err := ParseHexPlan(text)
	if err != nil {
		return 0, err
	}

	return LatticeArea(plan)
}
