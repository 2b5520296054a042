// Package geom provides the normalized coordinate space the layout and
// pattern stages work in. Positions are value types; all math is pure.
package geom

import "math"

// Point is a position in normalized space, typically within [-1, 1] per
// axis. The same type serves 1D, 2D and 3D layouts; axes beyond the
// layout's dimensionality stay zero. Dimensionality is tracked by the
// layout and pattern, not the point itself.
type Point struct {
	X, Y, Z float64
}

// P1 returns a 1D point.
func P1(x float64) Point { return Point{X: x} }

// P2 returns a 2D point.
func P2(x, y float64) Point { return Point{X: x, Y: y} }

// P3 returns a 3D point.
func P3(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s}
}

// Lerp interpolates from p to q by t, where t=0 yields p and t=1
// yields q. t is not clamped.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}
