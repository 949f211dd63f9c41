package terrain

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/Faultbox/terrarium/internal/noise"
)

// BuildGrid samples src on a width x depth lattice. The height at (x, z) is
// src.Sample(x*scale, 0, z*scale) * heightMultiplier.
// Rows are sampled concurrently; each row owns a disjoint slice of Heights.
func BuildGrid(width, depth int, scale, heightMultiplier float64, src noise.Source) (*HeightGrid, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive (got %d)", ErrInvalidArgument, width)
	}
	if depth <= 0 {
		return nil, fmt.Errorf("%w: depth must be positive (got %d)", ErrInvalidArgument, depth)
	}
	if !finite(scale) || scale <= 0 {
		return nil, fmt.Errorf("%w: scale must be finite and greater than zero (got %g)", ErrInvalidArgument, scale)
	}
	if !finite(heightMultiplier) {
		return nil, fmt.Errorf("%w: height multiplier must be finite (got %g)", ErrInvalidArgument, heightMultiplier)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: noise source is nil", ErrInvalidArgument)
	}

	heights := make([]float32, width*depth)
	parallel.For(depth, func(z, _ int) {
		row := heights[z*width : (z+1)*width]
		sz := float64(z) * scale
		for x := range row {
			row[x] = float32(src.Sample(float64(x)*scale, 0, sz) * heightMultiplier)
		}
	})

	grid := &HeightGrid{
		Width:   width,
		Depth:   depth,
		Heights: heights,
	}
	// A huge multiplier can still overflow float32.
	if err := grid.validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// NewHeightGrid wraps existing samples laid out row by row.
func NewHeightGrid(width, depth int, heights []float32) (*HeightGrid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidArgument, width, depth)
	}
	grid := &HeightGrid{Width: width, Depth: depth, Heights: heights}
	if err := grid.validate(); err != nil {
		return nil, err
	}
	return grid, nil
}

// At returns the height at lattice point (x, z).
func (g *HeightGrid) At(x, z int) float32 {
	return g.Heights[z*g.Width+x]
}

// MinMax returns the lowest and highest sample in the grid.
func (g *HeightGrid) MinMax() (lo, hi float32) {
	if len(g.Heights) == 0 {
		return 0, 0
	}
	lo, hi = g.Heights[0], g.Heights[0]
	for _, h := range g.Heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}

// validate reports whether the grid is internally consistent and every
// height is finite.
func (g *HeightGrid) validate() error {
	if g == nil {
		return fmt.Errorf("%w: grid is nil", ErrInvalidArgument)
	}
	if g.Width <= 0 || g.Depth <= 0 {
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidArgument, g.Width, g.Depth)
	}
	if len(g.Heights) != g.Width*g.Depth {
		return fmt.Errorf("%w: %d heights for a %dx%d grid", ErrInvalidArgument, len(g.Heights), g.Width, g.Depth)
	}
	for i, h := range g.Heights {
		if !finite(float64(h)) {
			return fmt.Errorf("%w: height at (%d, %d) is %g", ErrInvalidArgument, i%g.Width, i/g.Width, h)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
