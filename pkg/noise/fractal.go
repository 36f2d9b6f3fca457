package noise

import "math"

// Fractal sums octaves of a Source at increasing frequency and decreasing
// amplitude (fractional Brownian motion).
type Fractal struct {
	Source      Source
	Octaves     int
	Wavelength  float64 // world units per cycle of the first octave
	Persistence float64 // amplitude factor between octaves
	Lacunarity  float64 // frequency factor between octaves
}

// NewFractal returns a Fractal with lacunarity 2.
func NewFractal(src Source, octaves int, wavelength, persistence float64) Fractal {
	return Fractal{
		Source:      src,
		Octaves:     octaves,
		Wavelength:  wavelength,
		Persistence: persistence,
		Lacunarity:  2,
	}
}

// Eval2 samples the fractal at (x, y).
func (f Fractal) Eval2(x, y float64) float64 {
	freq := 1 / f.Wavelength
	amp := 1.0
	var sum float64
	for range f.Octaves {
		sum += f.Source.Eval2(x*freq, y*freq) * amp
		amp *= f.Persistence
		freq *= f.Lacunarity
	}
	return sum
}

// Amplitude returns the theoretical bound A of |Eval2|, assuming the source
// stays within [-1, 1]. It covers every octave that Eval2 sums.
func (f Fractal) Amplitude() float64 {
	var a float64
	for i := range f.Octaves {
		a += math.Pow(f.Persistence, float64(i))
	}
	return a
}
