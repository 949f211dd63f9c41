package noise

import (
	"fmt"
	"math"
)

// Fractal sums several octaves of a Source. Each octave multiplies the
// frequency by Lacunarity and the amplitude by Persistence. The sum is
// divided by the total amplitude so the result stays in [0, 1].
type Fractal struct {
	source      Source
	octaves     int
	persistence float64
	lacunarity  float64
	total       float64
}

// NewFractal wraps source with octave summation.
func NewFractal(source Source, octaves int, persistence, lacunarity float64) (*Fractal, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: fractal source is nil", ErrConfiguration)
	}
	if octaves <= 0 {
		return nil, fmt.Errorf("%w: octaves must be positive (got %d)", ErrConfiguration, octaves)
	}
	if !finite(persistence) || persistence <= 0 {
		return nil, fmt.Errorf("%w: persistence must be positive and finite (got %g)", ErrConfiguration, persistence)
	}
	if !finite(lacunarity) || lacunarity <= 0 {
		return nil, fmt.Errorf("%w: lacunarity must be positive and finite (got %g)", ErrConfiguration, lacunarity)
	}

	total := 0.0
	amplitude := 1.0
	for i := 0; i < octaves; i++ {
		total += amplitude
		amplitude *= persistence
	}
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: %d octaves at persistence %g overflow the amplitude sum", ErrConfiguration, octaves, persistence)
	}

	return &Fractal{
		source:      source,
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
		total:       total,
	}, nil
}

// Octaves returns the number of summed octaves.
func (f *Fractal) Octaves() int {
	return f.octaves
}

// Sample implements Source.
func (f *Fractal) Sample(x, y, z float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < f.octaves; i++ {
		sum += f.source.Sample(x*frequency, y*frequency, z*frequency) * amplitude
		amplitude *= f.persistence
		frequency *= f.lacunarity
	}
	return clamp01(sum / f.total)
}
