package color

import "math"

// HSV converts hue/saturation/value to a working RGB color. Hue is
// cyclic in [0, 1) (wrapped, not clamped); saturation and value are
// clamped to [0, 1].
func HSV(h, s, v float64) LinearRGB {
	h = h - math.Floor(h)
	s = math.Min(1, math.Max(0, s))
	v = math.Min(1, math.Max(0, v))

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return LinearRGB{float32(r), float32(g), float32(b)}
}
