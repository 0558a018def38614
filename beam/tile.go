package beam

import (
	"fmt"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Tile is the content of one contraption cell.
type Tile int

const (
	// Empty passes the beam through unchanged ('.').
	Empty Tile = iota
	// MirrorSlash reflects like '/'.
	MirrorSlash
	// MirrorBackslash reflects like '\'.
	MirrorBackslash
	// SplitVertical splits horizontal beams up and down ('|').
	SplitVertical
	// SplitHorizontal splits vertical beams left and right ('-').
	SplitHorizontal
)

// DecodeTile is the grid.Decoder for contraption maps.
func DecodeTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return Empty, nil
	case '/':
		return MirrorSlash, nil
	case '\\':
		return MirrorBackslash, nil
	case '|':
		return SplitVertical, nil
	case '-':
		return SplitHorizontal, nil
	}

	return 0, fmt.Errorf("%w: %q is not a contraption tile", grid.ErrUnknownCell, r)
}

// Next returns the outgoing heading(s) for a beam entering t with heading in.
// split is true when the beam forks; secondary is only meaningful then.
func (t Tile) Next(in geom.Direction) (primary, secondary geom.Direction, split bool) {
	switch t {
	case MirrorSlash:
		switch in {
		case geom.Up:
			return geom.Right, 0, false
		case geom.Down:
			return geom.Left, 0, false
		case geom.Left:
			return geom.Down, 0, false
		default:
			return geom.Up, 0, false
		}
	case MirrorBackslash:
		switch in {
		case geom.Up:
			return geom.Left, 0, false
		case geom.Down:
			return geom.Right, 0, false
		case geom.Left:
			return geom.Up, 0, false
		default:
			return geom.Down, 0, false
		}
	case SplitVertical:
		if in.Horizontal() {
			return geom.Up, geom.Down, true
		}
	case SplitHorizontal:
		if !in.Horizontal() {
			return geom.Left, geom.Right, true
		}
	}

	return in, 0, false
}

// String returns the map rune for t.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "."
	case MirrorSlash:
		return "/"
	case MirrorBackslash:
		return `\`
	case SplitVertical:
		return "|"
	case SplitHorizontal:
		return "-"
	}

	return fmt.Sprintf("Tile(%d)", int(t))
}
