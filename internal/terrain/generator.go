package terrain

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrarium/internal/noise"
)

// GridParams describes how a height grid is sampled.
type GridParams struct {
	Width            int
	Depth            int
	Scale            float64
	HeightMultiplier float64
}

// Result is the output of one Generator run.
type Result struct {
	Grid *HeightGrid
	Mesh *Mesh

	GridTime time.Duration
	MeshTime time.Duration
}

// Generator runs the noise -> grid -> mesh pipeline.
type Generator struct {
	source noise.Source
	params GridParams
	log    *zap.Logger
}

// NewGenerator creates a Generator. A nil logger disables logging.
func NewGenerator(source noise.Source, params GridParams, log *zap.Logger) (*Generator, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: noise source is nil", ErrInvalidArgument)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{source: source, params: params, log: log}, nil
}

// Params returns the grid parameters.
func (g *Generator) Params() GridParams {
	return g.params
}

// Generate builds the height grid and its mesh.
// ctx is checked before each stage; the stages themselves run to completion.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	p := g.params

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	grid, err := BuildGrid(p.Width, p.Depth, p.Scale, p.HeightMultiplier, g.source)
	if err != nil {
		return nil, fmt.Errorf("building height grid: %w", err)
	}
	gridTime := time.Since(start)

	lo, hi := grid.MinMax()
	g.log.Debug("height grid built",
		zap.Int("width", grid.Width),
		zap.Int("depth", grid.Depth),
		zap.Float64("scale", p.Scale),
		zap.Float32("min", lo),
		zap.Float32("max", hi),
		zap.Duration("elapsed", gridTime))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	mesh, err := BuildMesh(grid)
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}
	meshTime := time.Since(start)

	g.log.Debug("mesh built",
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Duration("elapsed", meshTime))

	return &Result{
		Grid:     grid,
		Mesh:     mesh,
		GridTime: gridTime,
		MeshTime: meshTime,
	}, nil
}
