// Package driver serializes corrected frames into the exact wire format
// an LED chipset expects and pushes them through a transmission channel.
// Encoders never retry: a channel failure surfaces to the caller, who
// decides whether to drop the frame or tick again.
package driver

import "github.com/strandkit/strandkit/internal/color"

// Driver is the output sink of the pipeline.
type Driver interface {
	// PixelCount reports how many LEDs one frame covers. The control
	// layer validates this against the layout at build time.
	PixelCount() int

	// Write encodes and transmits one frame. len(frame) must equal
	// PixelCount. Blocks until the frame is fully handed off.
	Write(frame []color.RGB8) error

	// Close releases the underlying channel, if owned.
	Close() error
}

// Order is the on-wire sequence of color channels. The zero value
// OrderDefault defers to each encoder's chipset-native order, so an
// explicit RGB stays distinguishable from "not configured".
type Order int

const (
	OrderDefault Order = iota
	RGB
	RBG
	GRB
	GBR
	BRG
	BGR
)

// reorder returns the channels of c in wire order. Encoders resolve
// OrderDefault at construction; it never reaches here.
func (o Order) reorder(c color.RGB8) [3]byte {
	switch o {
	case RBG:
		return [3]byte{c.R, c.B, c.G}
	case GRB:
		return [3]byte{c.G, c.R, c.B}
	case GBR:
		return [3]byte{c.G, c.B, c.R}
	case BRG:
		return [3]byte{c.B, c.R, c.G}
	case BGR:
		return [3]byte{c.B, c.G, c.R}
	default:
		return [3]byte{c.R, c.G, c.B}
	}
}

// String implements fmt.Stringer for config and logs.
func (o Order) String() string {
	switch o {
	case RGB:
		return "RGB"
	case RBG:
		return "RBG"
	case GRB:
		return "GRB"
	case GBR:
		return "GBR"
	case BRG:
		return "BRG"
	case BGR:
		return "BGR"
	default:
		return "default"
	}
}

// ParseOrder maps a config string like "GRB" to an Order.
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "RGB":
		return RGB, true
	case "RBG":
		return RBG, true
	case "GRB":
		return GRB, true
	case "GBR":
		return GBR, true
	case "BRG":
		return BRG, true
	case "BGR":
		return BGR, true
	}
	return OrderDefault, false
}
