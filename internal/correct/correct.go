// Package correct converts working colors into chipset drive values:
// brightness scaling, per-channel trim, gamma mapping, then temporal
// error-diffusion dithering down to 8 bits per channel.
package correct

import (
	"fmt"
	"math"

	"github.com/strandkit/strandkit/internal/color"
)

// DefaultGamma suits most WS2812/APA102-class chipsets.
const DefaultGamma = 2.8

// Opts configures a Corrector. The zero value of a field selects its
// default.
type Opts struct {
	// Gamma is the power-law exponent mapping perceptual values to
	// chipset-linear drive values. Defaults to DefaultGamma.
	Gamma float64

	// ChannelScale trims individual channels, e.g. to rein in a strip
	// with a hot blue die. Defaults to {1, 1, 1}.
	ChannelScale color.LinearRGB
}

// Corrector owns the dithering residual for one pipeline. The residual
// is the only state carried between ticks: quantization error deferred,
// never dropped, so the time-averaged output converges on the true
// value.
type Corrector struct {
	gamma    float64
	scale    color.LinearRGB
	residual []float32 // 3 entries per pixel, each in [0, 1)
}

// New sizes a Corrector for a fixed pixel count.
func New(pixelCount int, opts Opts) (*Corrector, error) {
	if pixelCount <= 0 {
		return nil, fmt.Errorf("correct: pixel count must be positive, got %d", pixelCount)
	}
	if opts.Gamma == 0 {
		opts.Gamma = DefaultGamma
	}
	if opts.Gamma < 0 {
		return nil, fmt.Errorf("correct: gamma must be positive, got %v", opts.Gamma)
	}
	if (opts.ChannelScale == color.LinearRGB{}) {
		opts.ChannelScale = color.LinearRGB{R: 1, G: 1, B: 1}
	}
	return &Corrector{
		gamma:    opts.Gamma,
		scale:    opts.ChannelScale,
		residual: make([]float32, 3*pixelCount),
	}, nil
}

// Apply corrects src into dst. brightness is clamped to [0, 1] and
// applied before gamma; out-of-range channel inputs are saturated, not
// rejected. len(dst) and len(src) must equal the pixel count from New.
func (c *Corrector) Apply(dst []color.RGB8, src []color.LinearRGB, brightness float32) {
	if brightness < 0 {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	for i := range src {
		in := src[i].Clamp()
		dst[i] = color.RGB8{
			R: c.channel(3*i+0, in.R*c.scale.R*brightness),
			G: c.channel(3*i+1, in.G*c.scale.G*brightness),
			B: c.channel(3*i+2, in.B*c.scale.B*brightness),
		}
	}
}

// channel gammas one value, adds the carried residual, truncates to a
// byte and carries the remainder into the next tick.
func (c *Corrector) channel(ri int, v float32) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	drive := float32(math.Pow(float64(v), c.gamma)) * 255
	scaled := drive + c.residual[ri]
	q := float32(math.Floor(float64(scaled)))
	if q > 255 {
		q = 255
	}
	c.residual[ri] = scaled - q
	return uint8(q)
}

// Reset zeroes the carried residual, e.g. after a blackout.
func (c *Corrector) Reset() {
	for i := range c.residual {
		c.residual[i] = 0
	}
}
