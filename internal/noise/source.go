package noise

import (
	"fmt"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a scalar field sampled for terrain heights.
// Implementations return values in [0, 1] and must be safe for concurrent use.
type Source interface {
	Sample(x, y, z float64) float64
}

// Algorithm names accepted by NewSource.
const (
	AlgorithmPerlin  = "perlin"
	AlgorithmSimplex = "simplex"
	AlgorithmClassic = "classic"
)

// NewSource creates a seeded Source by algorithm name.
// An empty name selects AlgorithmPerlin.
func NewSource(algorithm string, seed int64) (Source, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmPerlin:
		return NewField(seed), nil
	case AlgorithmSimplex:
		return NewSimplex(seed), nil
	case AlgorithmClassic:
		return NewClassic(seed), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrConfiguration, algorithm)
	}
}

// NewRandomSource creates a Source by algorithm name with a time-based seed.
// The seed is returned so the run can be reproduced.
func NewRandomSource(algorithm string) (Source, int64, error) {
	seed := RandomSeed()
	src, err := NewSource(algorithm, seed)
	if err != nil {
		return nil, 0, err
	}
	return src, seed, nil
}

// Simplex adapts OpenSimplex noise to Source.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a Simplex source. Output is already in [0, 1).
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.NewNormalized(seed)}
}

// Sample implements Source.
func (s *Simplex) Sample(x, y, z float64) float64 {
	return clamp01(s.noise.Eval3(x, y, z))
}

// Classic adapts the original 1985 Perlin noise (summed over a few
// harmonics) to Source.
type Classic struct {
	noise *perlin.Perlin
}

// Harmonic parameters for Classic.
const (
	classicAlpha = 2.0
	classicBeta  = 2.0
	classicN     = 3
)

// NewClassic creates a Classic source.
func NewClassic(seed int64) *Classic {
	return &Classic{noise: perlin.NewPerlin(classicAlpha, classicBeta, classicN, seed)}
}

// Sample implements Source.
func (c *Classic) Sample(x, y, z float64) float64 {
	return normalize(c.noise.Noise3D(x, y, z))
}
