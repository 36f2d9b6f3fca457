// Package noise provides deterministic 2D noise primitives and a fractal
// (Brownian) sum over them.
package noise

import (
	"fmt"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a 2D noise function. Output is roughly in [-1, 1] and depends
// only on the seed the source was built with and the sample point.
type Source interface {
	Eval2(x, y float64) float64
}

// Kind selects a noise primitive.
type Kind string

// Supported primitives.
const (
	OpenSimplex Kind = "opensimplex"
	Perlin      Kind = "perlin"
)

// ParseKind validates a primitive name from configuration.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case OpenSimplex, Perlin:
		return Kind(s), nil
	case "":
		return OpenSimplex, nil
	default:
		return "", fmt.Errorf("unknown noise kind %q", s)
	}
}

// New builds the primitive of the given kind.
func New(kind Kind, seed uint32) (Source, error) {
	switch kind {
	case OpenSimplex, "":
		return NewOpenSimplex(seed), nil
	case Perlin:
		return NewPerlin(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise kind %q", kind)
	}
}

// NewOpenSimplex returns OpenSimplex noise seeded with seed.
func NewOpenSimplex(seed uint32) Source {
	return opensimplex.New(int64(seed))
}

type perlinSource struct {
	p *perlin.Perlin
}

// NewPerlin returns single-octave Perlin noise seeded with seed. Octaves
// are summed by Fractal, not by the generator itself.
func NewPerlin(seed uint32) Source {
	return perlinSource{p: perlin.NewPerlin(2, 2, 1, int64(seed))}
}

func (s perlinSource) Eval2(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}
