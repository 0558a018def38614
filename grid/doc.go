// Package grid provides Grid[T], a rectangular 2-D map of typed cells built
// from puzzle text, with O(1) lookups, 4-neighbor enumeration and
// transposition.
//
// What:
//
//   - Parse splits text into lines and maps each rune to T with a
//     caller-supplied Decoder. An unmapped rune is a decoding bug and fails
//     the whole parse with ErrUnknownCell.
//   - New wraps an existing [][]T after validating it is rectangular.
//   - Get, Lookup, IsOutOfBounds and Neighbors serve every traversal in
//     gridkit (reach, crucible, beam).
//   - Transpose derives a copy with rows and columns swapped.
//
// Contract:
//
//   - Grids are immutable once built. Rows returns a deep copy.
//   - Get panics on an out-of-bounds coordinate. That is a programming
//     error, not an input error: callers check IsOutOfBounds (or use
//     Lookup) first.
//
// Complexity:
//
//   - Parse / New / Transpose: O(W×H) time and memory.
//   - Get / Lookup / IsOutOfBounds: O(1).
//   - Neighbors: O(1), at most 4 entries.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: the decoder rejected a rune.
//   - ErrOutOfBounds: text of the Get panic.
package grid
