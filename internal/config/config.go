// Package config maps a YAML file onto a built pipeline: shapes,
// pattern, chipset and correction settings, resolved and cross-checked
// through the control builder.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/strandkit/strandkit/internal/control"
	"github.com/strandkit/strandkit/internal/driver"
	"github.com/strandkit/strandkit/internal/geom"
	"github.com/strandkit/strandkit/internal/layout"
	"github.com/strandkit/strandkit/internal/pattern"
)

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y,omitempty"`
	Z float64 `yaml:"z,omitempty"`
}

func (v Vec) point() geom.Point { return geom.Point{X: v.X, Y: v.Y, Z: v.Z} }

// ShapeCfg is one declared shape. Kind selects which fields apply.
type ShapeCfg struct {
	Kind string `yaml:"kind"` // point | line | grid | arc | points

	At     Vec     `yaml:"at,omitempty"`
	Start  Vec     `yaml:"start,omitempty"`
	End    Vec     `yaml:"end,omitempty"`
	RowEnd Vec     `yaml:"row_end,omitempty"`
	ColEnd Vec     `yaml:"col_end,omitempty"`
	Count  int     `yaml:"count,omitempty"`
	Rows   int     `yaml:"rows,omitempty"`
	Cols   int     `yaml:"cols,omitempty"`
	Serp   bool    `yaml:"serpentine,omitempty"`
	Center Vec     `yaml:"center,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	From   float64 `yaml:"from,omitempty"`
	To     float64 `yaml:"to,omitempty"`
	Points []Vec   `yaml:"points,omitempty"`
}

type PatternCfg struct {
	Kind           string  `yaml:"kind"` // rainbow | noise
	PositionScalar float64 `yaml:"position_scalar,omitempty"`
	TimeScalar     float64 `yaml:"time_scalar,omitempty"`
	Noise          string  `yaml:"noise,omitempty"` // opensimplex | perlin
	Seed           int64   `yaml:"seed,omitempty"`
}

type DriverCfg struct {
	Chipset     string `yaml:"chipset"` // apa102 | ws2812
	SPIDev      string `yaml:"spi_dev,omitempty"`
	SpeedHz     int    `yaml:"speed_hz,omitempty"`
	ColorOrder  string `yaml:"color_order,omitempty"`
	Brightness5 *uint8 `yaml:"brightness5,omitempty"` // APA102 marker field 0..31, nil = full
	ResetUs     int    `yaml:"reset_us,omitempty"`    // WS2812 SPI latch
}

type Config struct {
	Pixels     int        `yaml:"pixels"`
	Dims       int        `yaml:"dims"`
	Shapes     []ShapeCfg `yaml:"shapes"`
	Pattern    PatternCfg `yaml:"pattern"`
	Driver     DriverCfg  `yaml:"driver"`
	Brightness float64    `yaml:"brightness"`
	Gamma      float64    `yaml:"gamma,omitempty"`
	FPS        int        `yaml:"fps,omitempty"`
}

// Load reads a config file. Defaults are prefilled before unmarshaling
// so an absent key gets the default while an explicit zero (a valid
// brightness) is kept as written.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Config{Brightness: 1, FPS: 60}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.FPS <= 0 {
		return nil, fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Layout resolves the declared shapes.
func (c *Config) Layout() (*layout.Layout, error) {
	shapes := make([]layout.Shape, 0, len(c.Shapes))
	for i, s := range c.Shapes {
		switch s.Kind {
		case "point":
			n := s.Count
			if n == 0 {
				n = 1
			}
			shapes = append(shapes, layout.Point{At: s.At.point(), N: n})
		case "line":
			shapes = append(shapes, layout.Line{Start: s.Start.point(), End: s.End.point(), N: s.Count})
		case "grid":
			shapes = append(shapes, layout.Grid{
				Start:      s.Start.point(),
				RowEnd:     s.RowEnd.point(),
				ColEnd:     s.ColEnd.point(),
				Rows:       s.Rows,
				Cols:       s.Cols,
				Serpentine: s.Serp,
			})
		case "arc":
			shapes = append(shapes, layout.Arc{
				Center: s.Center.point(),
				Radius: s.Radius,
				From:   s.From,
				To:     s.To,
				N:      s.Count,
			})
		case "points":
			pl := make(layout.PointList, len(s.Points))
			for j, v := range s.Points {
				pl[j] = v.point()
			}
			shapes = append(shapes, pl)
		default:
			return nil, fmt.Errorf("config: shape %d has unknown kind %q", i, s.Kind)
		}
	}
	return layout.New(c.Dims, c.Pixels, shapes...)
}

// BuildPattern constructs the configured pattern.
func (c *Config) BuildPattern() (pattern.Pattern, error) {
	switch c.Pattern.Kind {
	case "", "rainbow":
		p := pattern.DefaultRainbowParams()
		if c.Pattern.PositionScalar != 0 {
			p.PositionScalar = c.Pattern.PositionScalar
		}
		if c.Pattern.TimeScalar != 0 {
			p.TimeScalar = c.Pattern.TimeScalar
		}
		return pattern.NewRainbow(c.Dims, p), nil
	case "noise":
		var f pattern.Field
		switch c.Pattern.Noise {
		case "", "opensimplex":
			f = pattern.OpenSimplex(c.Pattern.Seed)
		case "perlin":
			f = pattern.Perlin(c.Pattern.Seed)
		default:
			return nil, fmt.Errorf("config: unknown noise backend %q", c.Pattern.Noise)
		}
		p := pattern.DefaultNoiseParams()
		if c.Pattern.PositionScalar != 0 {
			p.PositionScalar = c.Pattern.PositionScalar
		}
		if c.Pattern.TimeScalar != 0 {
			p.TimeScalar = c.Pattern.TimeScalar
		}
		return pattern.NewNoise(c.Dims, f, p), nil
	default:
		return nil, fmt.Errorf("config: unknown pattern kind %q", c.Pattern.Kind)
	}
}

// BuildDriver encodes for the configured chipset over the given SPI port.
func (c *Config) BuildDriver(p spi.Port) (driver.Driver, error) {
	order := driver.OrderDefault
	if c.Driver.ColorOrder != "" {
		o, ok := driver.ParseOrder(c.Driver.ColorOrder)
		if !ok {
			return nil, fmt.Errorf("config: unknown color order %q", c.Driver.ColorOrder)
		}
		order = o
	}
	freq := physic.Frequency(0)
	if c.Driver.SpeedHz > 0 {
		freq = physic.Frequency(c.Driver.SpeedHz) * physic.Hertz
	}
	switch c.Driver.Chipset {
	case "apa102":
		return driver.NewAPA102(p, c.Pixels, driver.APA102Opts{
			Freq:       freq,
			Brightness: c.Driver.Brightness5,
			Order:      order,
		})
	case "", "ws2812":
		opts := driver.WS2812Opts{Order: order, Freq: freq}
		if c.Driver.ResetUs > 0 {
			opts.SPIReset = time.Duration(c.Driver.ResetUs) * time.Microsecond
		}
		return driver.NewWS2812SPI(p, c.Pixels, opts)
	default:
		return nil, fmt.Errorf("config: unknown chipset %q", c.Driver.Chipset)
	}
}

// Assemble builds the complete pipeline from this configuration.
func (c *Config) Assemble(port spi.Port) (*control.Control, error) {
	drv, err := c.BuildDriver(port)
	if err != nil {
		return nil, err
	}
	return c.AssembleWith(drv)
}

// AssembleWith builds the pipeline around an already-constructed
// driver, e.g. a console preview sink.
func (c *Config) AssembleWith(drv driver.Driver) (*control.Control, error) {
	l, err := c.Layout()
	if err != nil {
		return nil, err
	}
	pat, err := c.BuildPattern()
	if err != nil {
		return nil, err
	}
	return control.NewBuilder().
		WithLayout(l).
		WithPattern(pat).
		WithDriver(drv).
		WithBrightness(c.Brightness).
		WithGamma(c.Gamma).
		Build()
}
