// Package layout resolves declared LED arrangements into fixed,
// order-stable coordinate sequences, one coordinate per physical LED in
// wiring order.
package layout

import (
	"fmt"

	"github.com/strandkit/strandkit/internal/geom"
)

// Layout is the resolved coordinate sequence for a strip or array. It
// is immutable after New: the pipeline reads the same points every tick.
type Layout struct {
	dims   int
	points []geom.Point
}

// New resolves shapes in declaration order into a layout of exactly
// pixelCount coordinates. A count mismatch or an empty shape is a
// configuration error; resolution itself cannot fail.
func New(dims, pixelCount int, shapes ...Shape) (*Layout, error) {
	if dims < 1 || dims > 3 {
		return nil, fmt.Errorf("layout: dims must be 1, 2 or 3, got %d", dims)
	}
	if pixelCount <= 0 {
		return nil, fmt.Errorf("layout: pixel count must be positive, got %d", pixelCount)
	}
	if len(shapes) == 0 {
		return nil, fmt.Errorf("layout: no shapes declared")
	}
	total := 0
	for i, s := range shapes {
		n := s.Count()
		if n <= 0 {
			return nil, fmt.Errorf("layout: shape %d resolves to %d pixels", i, n)
		}
		total += n
	}
	if total != pixelCount {
		return nil, fmt.Errorf("layout: shapes cover %d pixels, wiring expects %d", total, pixelCount)
	}

	points := make([]geom.Point, pixelCount)
	off := 0
	for _, s := range shapes {
		n := s.Count()
		s.resolve(points[off : off+n])
		off += n
	}
	return &Layout{dims: dims, points: points}, nil
}

// Dims reports the declared dimensionality (1, 2 or 3).
func (l *Layout) Dims() int { return l.dims }

// PixelCount reports the number of LEDs the layout covers.
func (l *Layout) PixelCount() int { return len(l.points) }

// Points returns the resolved coordinates in wiring order. Callers must
// treat the slice as read-only.
func (l *Layout) Points() []geom.Point { return l.points }
