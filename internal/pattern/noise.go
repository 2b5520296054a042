package pattern

import (
	"github.com/strandkit/strandkit/internal/color"
	"github.com/strandkit/strandkit/internal/geom"
)

// Gradient maps the noise scalar to a blend between two colors instead
// of the default hue mapping.
type Gradient struct {
	From, To color.LinearRGB
}

// NoiseParams tunes the coherent noise pattern.
type NoiseParams struct {
	// PositionScalar scales coordinates before sampling the field.
	PositionScalar float64
	// TimeScalar scales elapsed milliseconds into the field's time axis.
	TimeScalar float64
	// Gradient, when non-nil, replaces the hue mapping.
	Gradient *Gradient
}

// DefaultNoiseParams matches a slow, broad drift.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		PositionScalar: 0.5,
		TimeScalar:     0.00075,
	}
}

// Noise samples a coherent noise field at (point*scale, time*scale).
// The field's scalar output in [-1, 1] maps to a hue, or to a gradient
// blend when configured.
type Noise struct {
	dims   int
	field  Field
	params NoiseParams
}

func NewNoise(dims int, field Field, params NoiseParams) *Noise {
	return &Noise{dims: dims, field: field, params: params}
}

func (n *Noise) Dims() int { return n.dims }

func (n *Noise) Render(dst []color.LinearRGB, pts []geom.Point, timeMs uint64) {
	ps := n.params.PositionScalar
	ft := float64(timeMs) * n.params.TimeScalar
	for i := range dst {
		p := pts[i]
		var v float64
		switch n.dims {
		case 1:
			v = n.field.Eval2(ps*p.X, ft)
		case 2:
			v = n.field.Eval3(ps*p.X, ps*p.Y, ft)
		default:
			v = n.field.Eval4(ps*p.X, ps*p.Y, ps*p.Z, ft)
		}
		dst[i] = n.colorize(v)
	}
}

func (n *Noise) colorize(v float64) color.LinearRGB {
	// Map [-1,1] to [0,1].
	t := (v + 1) / 2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if g := n.params.Gradient; g != nil {
		return g.From.Lerp(g.To, float32(t))
	}
	return color.HSV(t, 1, 1)
}
