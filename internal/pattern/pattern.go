// Package pattern maps (coordinate, elapsed time) to colors. Patterns
// are total functions: every valid coordinate and time produces a valid
// working color, with no error path.
package pattern

import (
	"github.com/strandkit/strandkit/internal/color"
	"github.com/strandkit/strandkit/internal/geom"
)

// Pattern evaluates a visual function over a resolved layout. Render
// fills dst with one color per coordinate; it must be deterministic for
// a fixed timeMs so repeated calls within one tick agree, and must not
// allocate.
type Pattern interface {
	// Dims reports the dimensionality the pattern expects of its
	// layout (1, 2 or 3).
	Dims() int

	// Render evaluates the pattern at every point. len(dst) == len(pts).
	Render(dst []color.LinearRGB, pts []geom.Point, timeMs uint64)
}

// project collapses a point to the scalar the sweep patterns animate
// over: the mean of the active axes for the given dimensionality.
func project(p geom.Point, dims int) float64 {
	switch dims {
	case 1:
		return p.X
	case 2:
		return (p.X + p.Y) / 2
	default:
		return (p.X + p.Y + p.Z) / 3
	}
}
