// Package control composes layout, pattern, correction and driver into
// the per-tick render-and-transmit pipeline.
package control

import (
	"fmt"

	"github.com/strandkit/strandkit/internal/color"
	"github.com/strandkit/strandkit/internal/correct"
	"github.com/strandkit/strandkit/internal/driver"
	"github.com/strandkit/strandkit/internal/layout"
	"github.com/strandkit/strandkit/internal/pattern"
)

// BuildError reports a configuration inconsistency caught before the
// first tick. It is fatal: a Control is never constructed from an
// invalid configuration.
type BuildError struct {
	msg string
}

func (e *BuildError) Error() string { return "control: " + e.msg }

func buildErrf(format string, args ...any) error {
	return &BuildError{msg: fmt.Sprintf(format, args...)}
}

// Builder accumulates pipeline configuration. Cross-field validation
// happens once, in Build; there is no partially-configured runtime
// state.
type Builder struct {
	layout       *layout.Layout
	pat          pattern.Pattern
	drv          driver.Driver
	brightness   float64
	gamma        float64
	channelScale color.LinearRGB
}

// NewBuilder starts an empty configuration with brightness 1.0 and the
// correction stage defaults.
func NewBuilder() *Builder {
	return &Builder{brightness: 1}
}

func (b *Builder) WithLayout(l *layout.Layout) *Builder {
	b.layout = l
	return b
}

func (b *Builder) WithPattern(p pattern.Pattern) *Builder {
	b.pat = p
	return b
}

func (b *Builder) WithDriver(d driver.Driver) *Builder {
	b.drv = d
	return b
}

// WithBrightness sets the initial global brightness, clamped to [0, 1].
func (b *Builder) WithBrightness(v float64) *Builder {
	b.brightness = v
	return b
}

// WithGamma overrides the correction stage's gamma exponent.
func (b *Builder) WithGamma(g float64) *Builder {
	b.gamma = g
	return b
}

// WithChannelScale sets per-channel trim factors.
func (b *Builder) WithChannelScale(s color.LinearRGB) *Builder {
	b.channelScale = s
	return b
}

// Build validates the accumulated configuration and allocates every
// buffer the tick loop needs. After Build, no allocation happens per
// tick.
func (b *Builder) Build() (*Control, error) {
	if b.layout == nil {
		return nil, buildErrf("no layout configured")
	}
	if b.pat == nil {
		return nil, buildErrf("no pattern configured")
	}
	if b.drv == nil {
		return nil, buildErrf("no driver configured")
	}
	if ld, pd := b.layout.Dims(), b.pat.Dims(); ld != pd {
		return nil, buildErrf("layout is %dD but pattern expects %dD", ld, pd)
	}
	if ln, dn := b.layout.PixelCount(), b.drv.PixelCount(); ln != dn {
		return nil, buildErrf("layout has %d pixels but driver is sized for %d", ln, dn)
	}

	n := b.layout.PixelCount()
	corr, err := correct.New(n, correct.Opts{Gamma: b.gamma, ChannelScale: b.channelScale})
	if err != nil {
		return nil, buildErrf("correction stage: %v", err)
	}
	c := &Control{
		layout: b.layout,
		pat:    b.pat,
		drv:    b.drv,
		corr:   corr,
		work:   make([]color.LinearRGB, n),
		out:    make([]color.RGB8, n),
	}
	c.SetBrightness(b.brightness)
	return c, nil
}

// Control is the built, immutable pipeline. It loops on Tick for the
// process lifetime; brightness is the only knob a caller may turn
// between ticks.
type Control struct {
	layout     *layout.Layout
	pat        pattern.Pattern
	drv        driver.Driver
	corr       *correct.Corrector
	work       []color.LinearRGB
	out        []color.RGB8
	brightness float32
}

// Tick runs the whole pipeline once for the given elapsed time:
// pattern over every resolved coordinate, correction, then encode and
// transmit. A transmission failure is returned as-is; the frame is
// dropped, never retried, since a stale frame is worse than a missing
// one.
func (c *Control) Tick(timeMs uint64) error {
	c.pat.Render(c.work, c.layout.Points(), timeMs)
	c.corr.Apply(c.out, c.work, c.brightness)
	return c.drv.Write(c.out)
}

// SetBrightness updates the global brightness, clamped to [0, 1].
// Safe to call between ticks.
func (c *Control) SetBrightness(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	c.brightness = float32(v)
}

// Brightness reports the current global brightness.
func (c *Control) Brightness() float64 { return float64(c.brightness) }

// PixelCount reports the pipeline's fixed frame length.
func (c *Control) PixelCount() int { return len(c.out) }

// Close releases the driver's transmission channel.
func (c *Control) Close() error { return c.drv.Close() }
