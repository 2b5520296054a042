package driver

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/strandkit/strandkit/internal/color"
)

// APA102Opts configures the clock-data encoder.
type APA102Opts struct {
	// Freq is the SPI clock rate. Defaults to 4MHz; APA102-class chips
	// tolerate well above 10MHz on short runs.
	Freq physic.Frequency

	// Brightness is the 5-bit per-pixel brightness field (0..31)
	// packed into every marker byte. Nil selects 31 (full); global
	// brightness belongs to the correction stage, not here.
	Brightness *uint8

	// Order is the wire order of the color bytes after the marker.
	// OrderDefault selects BGR per the APA102 datasheet.
	Order Order
}

// APA102 drives APA102/SK9822-class chipsets over a clocked SPI bus.
//
// Frame layout: 4 zero start bytes, then per pixel a marker byte
// 0b111bbbbb followed by the three color bytes, then (n+15)/16 zero
// end bytes to clock the last pixel through the daisy chain.
type APA102 struct {
	conn  spi.Conn
	port  spi.Port
	n     int
	buf   []byte
	mark  byte
	order Order
}

// NewAPA102 connects to the port and preallocates the frame buffer.
func NewAPA102(p spi.Port, pixelCount int, opts APA102Opts) (*APA102, error) {
	if pixelCount <= 0 {
		return nil, fmt.Errorf("apa102: pixel count must be positive, got %d", pixelCount)
	}
	if opts.Freq == 0 {
		opts.Freq = 4 * physic.MegaHertz
	}
	bright := uint8(31)
	if opts.Brightness != nil {
		if *opts.Brightness > 31 {
			return nil, fmt.Errorf("apa102: brightness %d exceeds 5-bit range", *opts.Brightness)
		}
		bright = *opts.Brightness
	}
	if opts.Order == OrderDefault {
		opts.Order = BGR
	}
	conn, err := p.Connect(opts.Freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("apa102: connect: %w", err)
	}
	d := &APA102{
		conn:  conn,
		port:  p,
		n:     pixelCount,
		buf:   make([]byte, 4+4*pixelCount+endFrameLen(pixelCount)),
		mark:  0b11100000 | bright,
		order: opts.Order,
	}
	return d, nil
}

func (d *APA102) PixelCount() int { return d.n }

func (d *APA102) Write(frame []color.RGB8) error {
	if len(frame) != d.n {
		return fmt.Errorf("apa102: frame has %d pixels, driver sized for %d", len(frame), d.n)
	}
	// Start frame already zero; rewrite pixel groups in place.
	off := 4
	for _, c := range frame {
		ch := d.order.reorder(c)
		d.buf[off] = d.mark
		d.buf[off+1] = ch[0]
		d.buf[off+2] = ch[1]
		d.buf[off+3] = ch[2]
		off += 4
	}
	if err := d.conn.Tx(d.buf, nil); err != nil {
		return fmt.Errorf("apa102: transmit: %w", err)
	}
	return nil
}

func (d *APA102) Close() error {
	if c, ok := d.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// endFrameLen is the documented baseline padding: enough trailing zero
// bits to latch pixelCount pixels through the chain. Chipset revisions
// vary; verify against the target's datasheet.
func endFrameLen(pixelCount int) int {
	return (pixelCount + 15) / 16
}
