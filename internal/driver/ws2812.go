package driver

import (
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/strandkit/strandkit/internal/color"
)

// Timings is the pulse table of a single-wire self-clocked chipset. A
// logical 1 is high for T1H then low for T1L; a logical 0 is high for
// T0H then low for T0L. Reset holds the line low to latch the frame.
type Timings struct {
	T0H, T0L time.Duration
	T1H, T1L time.Duration
	Reset    time.Duration
}

// WS2812Timings is the WS2812B datasheet table (tolerance ±150ns).
func WS2812Timings() Timings {
	return Timings{
		T0H:   400 * time.Nanosecond,
		T0L:   850 * time.Nanosecond,
		T1H:   800 * time.Nanosecond,
		T1L:   450 * time.Nanosecond,
		Reset: 50 * time.Microsecond,
	}
}

// Pulse is one high-then-low period on the data line.
type Pulse struct {
	HighNs, LowNs uint32
}

// PulseWriter transmits a pulse train through a peripheral that can
// reproduce it without software-loop jitter (an RMT/PIO-style unit).
// WritePulses blocks until the whole train is on the wire.
type PulseWriter interface {
	WritePulses(pulses []Pulse) error
}

// WS2812Opts configures either WS2812 transport.
type WS2812Opts struct {
	// Order is the wire channel order. OrderDefault selects GRB.
	Order Order

	// Timings override the WS2812B table, e.g. for SK6812 variants.
	// Zero value selects WS2812Timings.
	Timings Timings

	// Freq is the SPI clock for the bit-expansion transport. Defaults
	// to 2400kHz, which makes each expanded bit cell 1250ns with a
	// 417/833ns high/low split inside WS2812 tolerance.
	Freq physic.Frequency

	// SPIReset extends the latch tail of the SPI transport. Defaults
	// to 300µs, a safe margin over every chipset revision's minimum.
	SPIReset time.Duration
}

func (o *WS2812Opts) defaults() {
	if o.Timings == (Timings{}) {
		o.Timings = WS2812Timings()
	}
	if o.Freq == 0 {
		o.Freq = 2400 * physic.KiloHertz
	}
	if o.SPIReset == 0 {
		o.SPIReset = 300 * time.Microsecond
	}
	if o.Order == OrderDefault {
		o.Order = GRB
	}
}

// WS2812Pulse encodes frames as explicit pulse trains for a hardware
// pulse generator. Each pixel is 24 pulses (channel bytes in wire
// order, MSB first); the train ends with a single all-low reset pulse.
type WS2812Pulse struct {
	w      PulseWriter
	n      int
	order  Order
	t      Timings
	pulses []Pulse
}

func NewWS2812Pulse(w PulseWriter, pixelCount int, opts WS2812Opts) (*WS2812Pulse, error) {
	if pixelCount <= 0 {
		return nil, fmt.Errorf("ws2812: pixel count must be positive, got %d", pixelCount)
	}
	opts.defaults()
	return &WS2812Pulse{
		w:      w,
		n:      pixelCount,
		order:  opts.Order,
		t:      opts.Timings,
		pulses: make([]Pulse, 24*pixelCount+1),
	}, nil
}

func (d *WS2812Pulse) PixelCount() int { return d.n }

func (d *WS2812Pulse) Write(frame []color.RGB8) error {
	if len(frame) != d.n {
		return fmt.Errorf("ws2812: frame has %d pixels, driver sized for %d", len(frame), d.n)
	}
	one := Pulse{HighNs: uint32(d.t.T1H.Nanoseconds()), LowNs: uint32(d.t.T1L.Nanoseconds())}
	zero := Pulse{HighNs: uint32(d.t.T0H.Nanoseconds()), LowNs: uint32(d.t.T0L.Nanoseconds())}
	i := 0
	for _, c := range frame {
		for _, b := range d.order.reorder(c) {
			for mask := byte(0x80); mask != 0; mask >>= 1 {
				if b&mask != 0 {
					d.pulses[i] = one
				} else {
					d.pulses[i] = zero
				}
				i++
			}
		}
	}
	d.pulses[i] = Pulse{HighNs: 0, LowNs: uint32(d.t.Reset.Nanoseconds())}
	if err := d.w.WritePulses(d.pulses); err != nil {
		return fmt.Errorf("ws2812: transmit: %w", err)
	}
	return nil
}

func (d *WS2812Pulse) Close() error {
	if c, ok := d.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// WS2812SPI encodes frames for an SPI peripheral whose clock rate makes
// each output bit a third of a WS2812 bit cell: data bit 1 expands to
// 0b110, 0 to 0b100, so the MOSI line reproduces the required high/low
// split without bit-banging. The latch is a tail of zero bytes holding
// the line low past the reset threshold.
type WS2812SPI struct {
	conn  spi.Conn
	port  spi.Port
	n     int
	order Order
	buf   []byte // 9 bytes per pixel + latch tail
	lut   [256][3]byte
}

func NewWS2812SPI(p spi.Port, pixelCount int, opts WS2812Opts) (*WS2812SPI, error) {
	if pixelCount <= 0 {
		return nil, fmt.Errorf("ws2812: pixel count must be positive, got %d", pixelCount)
	}
	opts.defaults()
	conn, err := p.Connect(opts.Freq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ws2812: connect: %w", err)
	}
	d := &WS2812SPI{
		conn:  conn,
		port:  p,
		n:     pixelCount,
		order: opts.Order,
		buf:   make([]byte, 9*pixelCount+latchLen(opts.Freq, opts.SPIReset)),
	}
	// Expand each byte MSB-first, three SPI bits per data bit, packed
	// into 24 bits = 3 bytes.
	for v := 0; v < 256; v++ {
		var out uint32
		for bit := 7; bit >= 0; bit-- {
			out <<= 3
			if v>>uint(bit)&1 == 1 {
				out |= 0b110
			} else {
				out |= 0b100
			}
		}
		d.lut[v] = [3]byte{byte(out >> 16), byte(out >> 8), byte(out)}
	}
	return d, nil
}

func (d *WS2812SPI) PixelCount() int { return d.n }

func (d *WS2812SPI) Write(frame []color.RGB8) error {
	if len(frame) != d.n {
		return fmt.Errorf("ws2812: frame has %d pixels, driver sized for %d", len(frame), d.n)
	}
	off := 0
	for _, c := range frame {
		for _, b := range d.order.reorder(c) {
			e := d.lut[b]
			d.buf[off] = e[0]
			d.buf[off+1] = e[1]
			d.buf[off+2] = e[2]
			off += 3
		}
	}
	// Latch tail stays zero from allocation.
	if err := d.conn.Tx(d.buf, nil); err != nil {
		return fmt.Errorf("ws2812: transmit: %w", err)
	}
	return nil
}

func (d *WS2812SPI) Close() error {
	if c, ok := d.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// latchLen converts the reset hold into whole zero bytes at the given
// clock rate, rounding up.
func latchLen(freq physic.Frequency, reset time.Duration) int {
	hz := int64(freq / physic.Hertz)
	bits := (reset.Nanoseconds()*hz + 1e9 - 1) / 1e9
	return int((bits + 7) / 8)
}
