package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadPoint is returned when a 3-D point literal is not "x,y,z".
var ErrBadPoint = errors.New("geom: malformed 3-D point")

// Point3D is an integer position in space; Z is height.
type Point3D struct {
	X, Y, Z int
}

// ParsePoint3D decodes "x,y,z". Surrounding whitespace on each component is
// ignored.
func ParsePoint3D(s string) (Point3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Point3D{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Point3D{}, fmt.Errorf("%w: %q: %v", ErrBadPoint, s, err)
		}
		v[i] = n
	}

	return Point3D{X: v[0], Y: v[1], Z: v[2]}, nil
}

// String renders the point back in "x,y,z" form.
func (p Point3D) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}
