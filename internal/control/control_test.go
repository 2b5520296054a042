package control

import (
	"errors"
	"testing"

	"github.com/strandkit/strandkit/internal/color"
	"github.com/strandkit/strandkit/internal/geom"
	"github.com/strandkit/strandkit/internal/layout"
	"github.com/strandkit/strandkit/internal/pattern"
)

// solidPattern renders a constant color.
type solidPattern struct {
	dims int
	c    color.LinearRGB
}

func (p *solidPattern) Dims() int { return p.dims }
func (p *solidPattern) Render(dst []color.LinearRGB, pts []geom.Point, timeMs uint64) {
	for i := range dst {
		dst[i] = p.c
	}
}

// captureDriver records the frames it is asked to transmit.
type captureDriver struct {
	n      int
	last   []color.RGB8
	writes int
	err    error
}

func (d *captureDriver) PixelCount() int { return d.n }
func (d *captureDriver) Write(frame []color.RGB8) error {
	if d.err != nil {
		return d.err
	}
	d.last = append(d.last[:0], frame...)
	d.writes++
	return nil
}
func (d *captureDriver) Close() error { return nil }

func lineLayout(t *testing.T, n int) *layout.Layout {
	t.Helper()
	l, err := layout.New(1, n, layout.Line{Start: geom.P1(-1), End: geom.P1(1), N: n})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestBuildRequiresAllParts(t *testing.T) {
	l := lineLayout(t, 4)
	p := &solidPattern{dims: 1}
	d := &captureDriver{n: 4}

	cases := []*Builder{
		NewBuilder().WithPattern(p).WithDriver(d),
		NewBuilder().WithLayout(l).WithDriver(d),
		NewBuilder().WithLayout(l).WithPattern(p),
	}
	for i, b := range cases {
		_, err := b.Build()
		var be *BuildError
		if !errors.As(err, &be) {
			t.Fatalf("case %d: expected BuildError, got %v", i, err)
		}
	}
}

func TestBuildRejectsDimensionMismatch(t *testing.T) {
	b := NewBuilder().
		WithLayout(lineLayout(t, 4)).
		WithPattern(&solidPattern{dims: 2}).
		WithDriver(&captureDriver{n: 4})
	if _, err := b.Build(); err == nil {
		t.Fatal("expected dimensionality mismatch error")
	}
}

func TestBuildRejectsPixelCountMismatch(t *testing.T) {
	b := NewBuilder().
		WithLayout(lineLayout(t, 4)).
		WithPattern(&solidPattern{dims: 1}).
		WithDriver(&captureDriver{n: 5})
	if _, err := b.Build(); err == nil {
		t.Fatal("expected pixel count mismatch error")
	}
}

func TestTickPipelineEndToEnd(t *testing.T) {
	d := &captureDriver{n: 3}
	c, err := NewBuilder().
		WithLayout(lineLayout(t, 3)).
		WithPattern(&solidPattern{dims: 1, c: color.LinearRGB{R: 1}}).
		WithDriver(d).
		WithGamma(1).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Tick(0); err != nil {
		t.Fatal(err)
	}
	if d.writes != 1 || len(d.last) != 3 {
		t.Fatalf("driver saw %d writes of %d pixels", d.writes, len(d.last))
	}
	for i, px := range d.last {
		if px.R != 255 || px.G != 0 || px.B != 0 {
			t.Fatalf("pixel %d: got %v, want full red", i, px)
		}
	}
}

func TestBrightnessZeroBlanksOutput(t *testing.T) {
	d := &captureDriver{n: 2}
	c, err := NewBuilder().
		WithLayout(lineLayout(t, 2)).
		WithPattern(&solidPattern{dims: 1, c: color.LinearRGB{R: 1, G: 1, B: 1}}).
		WithDriver(d).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	c.SetBrightness(0)
	if err := c.Tick(100); err != nil {
		t.Fatal(err)
	}
	for i, px := range d.last {
		if px != (color.RGB8{}) {
			t.Fatalf("pixel %d lit at zero brightness: %v", i, px)
		}
	}
}

func TestTransmissionErrorSurfacesAndTickingContinues(t *testing.T) {
	d := &captureDriver{n: 1}
	c, err := NewBuilder().
		WithLayout(lineLayout(t, 1)).
		WithPattern(&solidPattern{dims: 1, c: color.LinearRGB{G: 1}}).
		WithDriver(d).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	d.err = errors.New("bus stall")
	if err := c.Tick(0); err == nil {
		t.Fatal("expected transmission error")
	}
	// Caller may keep ticking after a dropped frame.
	d.err = nil
	if err := c.Tick(16); err != nil {
		t.Fatalf("tick after recovery: %v", err)
	}
}

func TestSetBrightnessClamps(t *testing.T) {
	d := &captureDriver{n: 1}
	c, err := NewBuilder().
		WithLayout(lineLayout(t, 1)).
		WithPattern(&solidPattern{dims: 1}).
		WithDriver(d).
		WithBrightness(2.5).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if c.Brightness() != 1 {
		t.Fatalf("brightness not clamped: %v", c.Brightness())
	}
	c.SetBrightness(-3)
	if c.Brightness() != 0 {
		t.Fatalf("brightness not clamped low: %v", c.Brightness())
	}
}

func TestRainbowThroughPipeline(t *testing.T) {
	d := &captureDriver{n: 8}
	c, err := NewBuilder().
		WithLayout(lineLayout(t, 8)).
		WithPattern(pattern.NewRainbow(1, pattern.DefaultRainbowParams())).
		WithDriver(d).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Tick(0); err != nil {
		t.Fatal(err)
	}
	// A hue sweep across the strip cannot be uniform.
	uniform := true
	for _, px := range d.last[1:] {
		if px != d.last[0] {
			uniform = false
			break
		}
	}
	if uniform {
		t.Fatal("rainbow produced a uniform frame")
	}
}
