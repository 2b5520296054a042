package driver

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/strandkit/strandkit/internal/color"
)

// Drawer adapts a periph display.Drawer into a Driver, so a hardware
// offload device (nrzled over SPI) or a console preview screen can sit
// at the end of the same pipeline. Frames render as a 1×N image strip.
type Drawer struct {
	dev display.Drawer
	n   int
	img *image.NRGBA
}

func NewDrawer(dev display.Drawer, pixelCount int) (*Drawer, error) {
	if pixelCount <= 0 {
		return nil, fmt.Errorf("drawer: pixel count must be positive, got %d", pixelCount)
	}
	return &Drawer{
		dev: dev,
		n:   pixelCount,
		img: image.NewNRGBA(image.Rect(0, 0, pixelCount, 1)),
	}, nil
}

func (d *Drawer) PixelCount() int { return d.n }

func (d *Drawer) Write(frame []color.RGB8) error {
	if len(frame) != d.n {
		return fmt.Errorf("drawer: frame has %d pixels, driver sized for %d", len(frame), d.n)
	}
	for x, c := range frame {
		i := d.img.PixOffset(x, 0)
		d.img.Pix[i+0] = c.R
		d.img.Pix[i+1] = c.G
		d.img.Pix[i+2] = c.B
		d.img.Pix[i+3] = 0xFF
	}
	if err := d.dev.Draw(d.dev.Bounds(), d.img, image.Point{}); err != nil {
		return fmt.Errorf("drawer: transmit: %w", err)
	}
	return nil
}

func (d *Drawer) Close() error { return d.dev.Halt() }
