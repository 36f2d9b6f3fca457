package terrain

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/heightfield/internal/logger"
	"github.com/Faultbox/heightfield/pkg/grid"
	"github.com/Faultbox/heightfield/pkg/noise"
)

// Noise shape shared by every generated terrain.
const (
	Octaves     = 8
	Wavelength  = 240.0
	Persistence = 0.5
)

// GenerateParams describes a terrain to generate.
type GenerateParams struct {
	Samples   [2]grid.NonZero // sample counts along X and Z
	Seed      uint32
	Area      Area
	MaxHeight float32
	Noise     noise.Kind // defaults to OpenSimplex
}

// Generate samples fractal noise over p.Area into a heightmap with heights
// in [0, p.MaxHeight]. The result has a FixedHeight layout and is a pure
// function of p.
func Generate(p GenerateParams) (*Heightmap, error) {
	if !p.Samples[0].Valid() || !p.Samples[1].Valid() {
		return nil, fmt.Errorf("samples: %w", grid.ErrZero)
	}

	src, err := noise.New(p.Noise, p.Seed)
	if err != nil {
		return nil, err
	}
	fractal := noise.NewFractal(src, Octaves, Wavelength, Persistence)
	ampl := float32(fractal.Amplitude())

	w, h := p.Samples[0].Int(), p.Samples[1].Int()
	dim := grid.NewFixedHeight(p.Samples[1])

	heights := make([]float32, 0, w*h)
	for c := range dim.Coords(w * h) {
		x := (float32(c[0])/float32(w))*p.Area.W + p.Area.X
		y := (float32(c[1])/float32(h))*p.Area.H + p.Area.Y
		v := float32(fractal.Eval2(float64(x), float64(y)))
		v = MapRange(v, [2]float32{-ampl, ampl}, [2]float32{0, p.MaxHeight})
		heights = append(heights, math32.Min(math32.Max(v, 0), p.MaxHeight))
	}

	hm, err := grid.New(heights, dim)
	if err != nil {
		return nil, fmt.Errorf("heightmap: %w", err)
	}

	lo, hi := heightRange(heights)
	logger.Debug("terrain generated",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Uint32("seed", p.Seed),
		zap.String("noise", string(kindOrDefault(p.Noise))),
		zap.Float32("min", lo),
		zap.Float32("max", hi),
	)
	return hm, nil
}

// MapRange linearly maps v from the range from onto the range to.
func MapRange(v float32, from, to [2]float32) float32 {
	return (v-from[0])/(from[1]-from[0])*(to[1]-to[0]) + to[0]
}

func heightRange(hs []float32) (lo, hi float32) {
	if len(hs) == 0 {
		return 0, 0
	}
	lo, hi = hs[0], hs[0]
	for _, v := range hs[1:] {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	return lo, hi
}

func kindOrDefault(k noise.Kind) noise.Kind {
	if k == "" {
		return noise.OpenSimplex
	}
	return k
}
