// Package lagoon measures the lattice area enclosed by a dig plan: a closed
// walk of unit moves given as (heading, count) instructions.
//
// What:
//
//   - ParsePlan reads "R 6 (#70c710)" lines as (Right, 6).
//   - ParseHexPlan reads the same lines but decodes the colour code instead:
//     five hex digits of distance and one digit of heading (0=R 1=D 2=L 3=U).
//   - Trace replays a plan one unit step at a time; Corners keeps only the
//     vertex after each instruction.
//   - LatticeArea applies the shoelace formula to the corners and corrects
//     with Pick's theorem for the cells on the boundary itself:
//
//	total = A + B/2 + 1
//
// where A is the enclosed area and B the number of unit boundary edges.
//
// Because the shoelace sum over unit steps equals the sum over the corners
// alone, LatticeArea does not need to materialize Trace, which matters for
// hex plans whose boundary has millions of points. Arithmetic is int64.
//
// Errors:
//
//   - ErrBadInstruction: a line is not "<U|D|L|R> <count> (#rrggbb)".
//   - ErrEmptyPlan: no instructions.
//   - ErrOpenWalk: the walk does not return to its origin.
package lagoon
