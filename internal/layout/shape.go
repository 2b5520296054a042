package layout

import (
	"math"

	"github.com/strandkit/strandkit/internal/geom"
)

// Shape is a declarative piece of LED geometry. Shapes only describe an
// arrangement; Layout resolves them into concrete coordinates in wiring
// order.
type Shape interface {
	// Count reports how many LEDs the shape covers.
	Count() int

	// resolve fills dst with exactly Count() coordinates.
	resolve(dst []geom.Point)
}

// Point places N co-located LEDs at a single coordinate.
type Point struct {
	At geom.Point
	N  int
}

func (s Point) Count() int { return s.N }

func (s Point) resolve(dst []geom.Point) {
	for i := range dst {
		dst[i] = s.At
	}
}

// Line places N LEDs linearly interpolated from Start to End inclusive.
// N == 1 yields Start.
type Line struct {
	Start, End geom.Point
	N          int
}

func (s Line) Count() int { return s.N }

func (s Line) resolve(dst []geom.Point) {
	if s.N == 1 {
		dst[0] = s.Start
		return
	}
	for i := range dst {
		t := float64(i) / float64(s.N-1)
		dst[i] = s.Start.Lerp(s.End, t)
	}
}

// Grid places Rows*Cols LEDs bilinearly interpolated between three
// corners: Start, RowEnd (last row's start) and ColEnd (first row's
// end). With Serpentine, odd rows traverse columns in reverse so the
// wiring can snake without a coordinate discontinuity.
type Grid struct {
	Start, RowEnd, ColEnd geom.Point
	Rows, Cols            int
	Serpentine            bool
}

func (s Grid) Count() int { return s.Rows * s.Cols }

func (s Grid) resolve(dst []geom.Point) {
	rowAxis := s.RowEnd.Sub(s.Start)
	colAxis := s.ColEnd.Sub(s.Start)
	i := 0
	for r := 0; r < s.Rows; r++ {
		fr := frac(r, s.Rows)
		for c := 0; c < s.Cols; c++ {
			cc := c
			if s.Serpentine && r%2 == 1 {
				cc = s.Cols - 1 - c
			}
			fc := frac(cc, s.Cols)
			dst[i] = s.Start.Add(rowAxis.Scale(fr)).Add(colAxis.Scale(fc))
			i++
		}
	}
}

// Arc places N LEDs evenly spaced by angle across [From, To) radians,
// projected onto the XY plane around Center. The end angle is exclusive
// so a full 2π arc does not double up its first point.
type Arc struct {
	Center   geom.Point
	Radius   float64
	From, To float64
	N        int
}

func (s Arc) Count() int { return s.N }

func (s Arc) resolve(dst []geom.Point) {
	step := (s.To - s.From) / float64(s.N)
	for i := range dst {
		theta := s.From + float64(i)*step
		dst[i] = s.Center.Add(geom.P2(s.Radius*math.Cos(theta), s.Radius*math.Sin(theta)))
	}
}

// PointList places LEDs at explicit coordinates, order preserved.
type PointList []geom.Point

func (s PointList) Count() int { return len(s) }

func (s PointList) resolve(dst []geom.Point) {
	copy(dst, s)
}

// frac maps index i of n steps onto [0, 1]; a single step collapses to 0.
func frac(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
