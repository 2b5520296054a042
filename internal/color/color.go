// Package color holds the two color representations of the pipeline: a
// linear floating working color used by patterns and correction, and the
// 8-bit-per-channel output color the protocol encoders transmit.
package color

// LinearRGB is the working representation. Channels are linear light in
// [0, 1]; values outside the range are tolerated until Clamp.
type LinearRGB struct {
	R, G, B float32
}

// RGB8 is the quantized output representation, one byte per channel.
type RGB8 struct {
	R, G, B uint8
}

// Clamp saturates all channels into [0, 1].
func (c LinearRGB) Clamp() LinearRGB {
	return LinearRGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Scale multiplies all channels by s.
func (c LinearRGB) Scale(s float32) LinearRGB {
	return LinearRGB{c.R * s, c.G * s, c.B * s}
}

// Lerp blends c toward d by t in [0, 1].
func (c LinearRGB) Lerp(d LinearRGB, t float32) LinearRGB {
	u := 1 - t
	return LinearRGB{c.R*u + d.R*t, c.G*u + d.G*t, c.B*u + d.B*t}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
