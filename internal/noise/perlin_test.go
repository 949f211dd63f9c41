package noise

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityPermutation() []int {
	perm := make([]int, tableSize)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func TestNewFieldPermutationIsBijection(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -7, math.MaxInt64} {
		perm := NewField(seed).Permutation()

		var seen [tableSize]bool
		for i, v := range perm {
			require.GreaterOrEqual(t, v, 0, "seed %d index %d", seed, i)
			require.Less(t, v, tableSize, "seed %d index %d", seed, i)
			require.False(t, seen[v], "seed %d: value %d repeats", seed, v)
			seen[v] = true
		}
	}
}

func TestNewFieldDuplicatesTable(t *testing.T) {
	f := NewField(42)
	for i := 0; i < tableSize; i++ {
		assert.Equal(t, f.p[i], f.p[i+tableSize])
		assert.Equal(t, f.perm[i], f.p[i])
	}
}

func TestNewFieldSeedIsDeterministic(t *testing.T) {
	assert.Equal(t, NewField(42).Permutation(), NewField(42).Permutation())
	assert.NotEqual(t, NewField(42).Permutation(), NewField(43).Permutation())
}

func TestSampleNonFiniteCoordinates(t *testing.T) {
	f := NewField(42)
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"x +inf", math.Inf(1), 0, 0},
		{"x nan", math.NaN(), 0, 0},
		{"y -inf", 0.5, math.Inf(-1), 0.5},
		{"z nan", 0.5, 0.5, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.5, f.Sample(tt.x, tt.y, tt.z))
		})
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.1))
	assert.Equal(t, 1.0, clamp01(1.1))
	assert.Equal(t, 0.25, clamp01(0.25))
	assert.Equal(t, 0.5, clamp01(math.NaN()))
}

func TestNewFieldFromPermutation(t *testing.T) {
	tests := []struct {
		name    string
		perm    func() []int
		wantErr bool
	}{
		{"identity", identityPermutation, false},
		{"reversed", func() []int {
			p := identityPermutation()
			for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
				p[i], p[j] = p[j], p[i]
			}
			return p
		}, false},
		{"nil", func() []int { return nil }, true},
		{"too short", func() []int { return identityPermutation()[:255] }, true},
		{"too long", func() []int { return append(identityPermutation(), 0) }, true},
		{"duplicate", func() []int {
			p := identityPermutation()
			p[10] = 11
			return p
		}, true},
		{"negative", func() []int {
			p := identityPermutation()
			p[0] = -1
			return p
		}, true},
		{"out of range", func() []int {
			p := identityPermutation()
			p[255] = 256
			return p
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFieldFromPermutation(tt.perm())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConfiguration), "error %v should wrap ErrConfiguration", err)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
		})
	}
}

func TestNewFieldFromPermutationCopiesInput(t *testing.T) {
	perm := identityPermutation()
	f, err := NewFieldFromPermutation(perm)
	require.NoError(t, err)

	before := f.Sample(0.3, 0.6, 0.9)
	perm[0], perm[1] = perm[1], perm[0]
	assert.Equal(t, before, f.Sample(0.3, 0.6, 0.9))
}

func TestSampleDeterministic(t *testing.T) {
	a := NewField(42)
	b := NewField(42)
	for _, c := range [][3]float64{{0.1, 0.2, 0.3}, {12.75, -3.5, 8.125}, {-100.01, 55.5, 0}} {
		first := a.Sample(c[0], c[1], c[2])
		assert.Equal(t, math.Float64bits(first), math.Float64bits(a.Sample(c[0], c[1], c[2])))
		assert.Equal(t, math.Float64bits(first), math.Float64bits(b.Sample(c[0], c[1], c[2])))
	}
}

func TestSampleBounded(t *testing.T) {
	f := NewField(7)
	for x := -20.0; x < 20; x += 0.37 {
		for y := -5.0; y < 5; y += 0.53 {
			for _, z := range []float64{-1.3, 0, 0.5, 2.71} {
				v := f.Sample(x, y, z)
				if v < 0 || v > 1 {
					t.Fatalf("Sample(%v, %v, %v) = %v, want value in [0, 1]", x, y, z, v)
				}
			}
		}
	}
}

func TestSampleLatticePoints(t *testing.T) {
	// Every corner gradient is dotted with a zero offset at lattice points.
	f := NewField(42)
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			assert.Equal(t, 0.5, f.Sample(float64(x), 0, float64(z)), "lattice point (%d, 0, %d)", x, z)
		}
	}
}

func TestSampleContinuousAcrossCells(t *testing.T) {
	f := NewField(3)
	const eps = 1e-9
	for _, b := range []float64{1, 2, 17, -4} {
		for _, other := range []float64{0.25, 0.5, 3.75} {
			below := f.Sample(b-eps, other, other)
			above := f.Sample(b+eps, other, other)
			assert.InDelta(t, below, above, 1e-6, "x boundary at %v", b)

			below = f.Sample(other, b-eps, other)
			above = f.Sample(other, b+eps, other)
			assert.InDelta(t, below, above, 1e-6, "y boundary at %v", b)

			below = f.Sample(other, other, b-eps)
			above = f.Sample(other, other, b+eps)
			assert.InDelta(t, below, above, 1e-6, "z boundary at %v", b)
		}
	}
}

func TestSampleWrapsEvery256(t *testing.T) {
	f := NewField(99)
	// Dyadic fractions keep the shifted coordinates exactly representable.
	coords := [][3]float64{{0.25, 0.5, 0.75}, {3.125, 10.375, 0.0625}, {-2.5, 7.75, 1.5}}
	for _, c := range coords {
		want := f.Sample(c[0], c[1], c[2])
		assert.Equal(t, want, f.Sample(c[0]+256, c[1], c[2]))
		assert.Equal(t, want, f.Sample(c[0], c[1]+256, c[2]))
		assert.Equal(t, want, f.Sample(c[0], c[1], c[2]+256))
		assert.Equal(t, want, f.Sample(c[0]-256, c[1]-256, c[2]-256))
	}
}

func TestSampleVaries(t *testing.T) {
	f := NewField(42)
	seen := make(map[float64]bool)
	for i := 0; i < 50; i++ {
		seen[f.Sample(float64(i)*0.37+0.1, 0.2, 0.3)] = true
	}
	assert.Greater(t, len(seen), 40)
}

func TestSample2D(t *testing.T) {
	f := NewField(5)
	assert.Equal(t, f.Sample(1.3, 4.7, 0), f.Sample2D(1.3, 4.7))
}

func TestFade(t *testing.T) {
	assert.Equal(t, 0.0, fade(0))
	assert.Equal(t, 1.0, fade(1))
	assert.Equal(t, 0.5, fade(0.5))
}

func TestGrad(t *testing.T) {
	tests := []struct {
		hash int
		want float64
	}{
		{0, 1 + 2},   // x + y
		{1, -1 + 2},  // -x + y
		{2, 1 - 2},   // x - y
		{3, -1 - 2},  // -x - y
		{4, 1 + 3},   // x + z
		{8, 2 + 3},   // y + z
		{12, 2 + 1},  // y + x
		{14, 2 - 1},  // y - x
		{13, -2 + 3}, // -y + z
		{15, -2 - 3}, // -y - z
		{16, 1 + 2},  // only the low 4 bits count
	}
	for _, tt := range tests {
		got := grad(tt.hash, 1, 2, 3)
		if got != tt.want {
			t.Errorf("grad(%d, 1, 2, 3) = %v, want %v", tt.hash, got, tt.want)
		}
	}
}
