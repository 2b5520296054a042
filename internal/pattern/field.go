package pattern

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Field is a coherent noise source. Implementations return roughly
// [-1, 1] for any input; the noise pattern tolerates backends that
// undershoot that range.
type Field interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
	Eval4(x, y, z, w float64) float64
}

// OpenSimplex returns an OpenSimplex noise field. This is the default
// backend; it supports all layout dimensionalities natively.
func OpenSimplex(seed int64) Field {
	return opensimplex.New(seed)
}

// perlinField adapts aquilax/go-perlin, which tops out at three input
// dimensions. Eval4 folds the fourth axis into the third, which keeps
// the field coherent in time at the cost of drift along Z.
type perlinField struct {
	p *perlin.Perlin
}

// Perlin returns a Perlin noise field.
func Perlin(seed int64) Field {
	const (
		alpha = 2.0
		beta  = 2.0
		iters = 3
	)
	return perlinField{p: perlin.NewPerlin(alpha, beta, iters, seed)}
}

func (f perlinField) Eval2(x, y float64) float64 { return f.p.Noise2D(x, y) }

func (f perlinField) Eval3(x, y, z float64) float64 { return f.p.Noise3D(x, y, z) }

func (f perlinField) Eval4(x, y, z, w float64) float64 { return f.p.Noise3D(x, y, z+w) }
