// Package noise provides seeded gradient noise for terrain height generation.
package noise

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrConfiguration is returned when a noise source cannot be constructed
// from the supplied parameters.
var ErrConfiguration = errors.New("noise: invalid configuration")

const (
	tableSize = 256
	tableMask = tableSize - 1
)

// Field is a classic 3D Perlin lattice noise generator.
// A Field is immutable after construction and safe for concurrent use.
type Field struct {
	perm [tableSize]int
	p    [tableSize * 2]int // perm duplicated so corner hashing never wraps
}

// NewField creates a Field whose permutation is a Fisher-Yates shuffle
// of 0..255 driven by seed.
func NewField(seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))

	var perm [tableSize]int
	for i := range perm {
		perm[i] = i
	}
	for i := tableSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return newField(perm)
}

// RandomSeed returns a time-based seed for callers that did not pick one.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

// NewFieldFromPermutation creates a Field from a caller-supplied table.
// The table must contain each value 0..255 exactly once.
func NewFieldFromPermutation(perm []int) (*Field, error) {
	if len(perm) != tableSize {
		return nil, fmt.Errorf("%w: permutation has %d entries, want %d", ErrConfiguration, len(perm), tableSize)
	}

	var seen [tableSize]bool
	var table [tableSize]int
	for i, v := range perm {
		if v < 0 || v > tableMask {
			return nil, fmt.Errorf("%w: permutation[%d] = %d out of range 0..255", ErrConfiguration, i, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: permutation value %d repeats at index %d", ErrConfiguration, v, i)
		}
		seen[v] = true
		table[i] = v
	}

	return newField(table), nil
}

func newField(perm [tableSize]int) *Field {
	f := &Field{perm: perm}
	for i := 0; i < tableSize; i++ {
		f.p[i] = perm[i]
		f.p[i+tableSize] = perm[i]
	}
	return f
}

// Permutation returns a copy of the 256-entry permutation table.
func (f *Field) Permutation() [tableSize]int {
	return f.perm
}

// Sample returns the noise value at (x, y, z) in [0, 1].
// Non-finite coordinates have no lattice cell and sample as 0.5.
func (f *Field) Sample(x, y, z float64) float64 {
	if !finite(x) || !finite(y) || !finite(z) {
		return 0.5
	}

	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)

	// Lattice cell, wrapped to the table size
	X := int(fx) & tableMask
	Y := int(fy) & tableMask
	Z := int(fz) & tableMask

	// Position inside the cell
	x -= fx
	y -= fy
	z -= fz

	u := fade(x)
	v := fade(y)
	w := fade(z)

	p := &f.p
	aaa := p[p[p[X]+Y]+Z]
	aba := p[p[p[X]+Y+1]+Z]
	aab := p[p[p[X]+Y]+Z+1]
	abb := p[p[p[X]+Y+1]+Z+1]
	baa := p[p[p[X+1]+Y]+Z]
	bba := p[p[p[X+1]+Y+1]+Z]
	bab := p[p[p[X+1]+Y]+Z+1]
	bbb := p[p[p[X+1]+Y+1]+Z+1]

	x1 := lerp(u, grad(aaa, x, y, z), grad(baa, x-1, y, z))
	x2 := lerp(u, grad(aba, x, y-1, z), grad(bba, x-1, y-1, z))
	y1 := lerp(v, x1, x2)

	x1 = lerp(u, grad(aab, x, y, z-1), grad(bab, x-1, y, z-1))
	x2 = lerp(u, grad(abb, x, y-1, z-1), grad(bbb, x-1, y-1, z-1))
	y2 := lerp(v, x1, x2)

	return normalize(lerp(w, y1, y2))
}

// Sample2D returns the noise value on the z = 0 plane.
func (f *Field) Sample2D(x, y float64) float64 {
	return f.Sample(x, y, 0)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3 easing curve.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad selects one of 16 gradient directions (12 cube edges, 4 repeated)
// from the low 4 bits of hash and dots it with (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15

	u := y
	if h < 8 {
		u = x
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// normalize maps a raw [-1, 1] result to [0, 1].
func normalize(n float64) float64 {
	return clamp01((n + 1) / 2)
}

// clamp01 limits v to [0, 1]; NaN maps to the midpoint.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
