package grid

import "fmt"

// Runes is the identity decoder: every rune is its own cell.
func Runes(r rune) (rune, error) {
	return r, nil
}

// Digits decodes '0'..'9' to 0..9, used for cost maps.
func Digits(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("%w: %q is not a digit", ErrUnknownCell, r)
	}

	return int(r - '0'), nil
}

// Table builds a Decoder from a fixed rune→value table. Runes missing from the
// table are rejected with ErrUnknownCell.
func Table[T any](table map[rune]T) Decoder[T] {
	return func(r rune) (T, error) {
		v, ok := table[r]
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: %q", ErrUnknownCell, r)
		}

		return v, nil
	}
}
