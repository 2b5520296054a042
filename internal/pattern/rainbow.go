package pattern

import (
	"math"

	"github.com/strandkit/strandkit/internal/color"
	"github.com/strandkit/strandkit/internal/geom"
)

// RainbowParams tunes the cyclic hue sweep.
type RainbowParams struct {
	// PositionScalar is hue cycles per unit of projected position.
	PositionScalar float64
	// TimeScalar is hue cycles per millisecond.
	TimeScalar float64
}

// DefaultRainbowParams sweeps one hue cycle across two position units
// and one cycle every ten seconds.
func DefaultRainbowParams() RainbowParams {
	return RainbowParams{
		PositionScalar: 0.5,
		TimeScalar:     0.0001,
	}
}

// Rainbow is a cyclic hue sweep at full saturation and value. Hue at a
// point is position*PositionScalar + time*TimeScalar, wrapped mod 1.
type Rainbow struct {
	dims   int
	params RainbowParams
}

func NewRainbow(dims int, params RainbowParams) *Rainbow {
	return &Rainbow{dims: dims, params: params}
}

func (r *Rainbow) Dims() int { return r.dims }

func (r *Rainbow) Render(dst []color.LinearRGB, pts []geom.Point, timeMs uint64) {
	phase := float64(timeMs) * r.params.TimeScalar
	for i := range dst {
		hue := r.params.PositionScalar*project(pts[i], r.dims) + phase
		hue = hue - math.Floor(hue)
		dst[i] = color.HSV(hue, 1, 1)
	}
}
