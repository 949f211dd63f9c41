// Package main is the entry point for the terrarium terrain generator.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/terrarium/internal/config"
	"github.com/Faultbox/terrarium/internal/export"
	"github.com/Faultbox/terrarium/internal/logger"
	"github.com/Faultbox/terrarium/internal/noise"
	"github.com/Faultbox/terrarium/internal/terrain"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Terrarium ===")
	logger.Debug("config loaded",
		zap.Any("terrain", cfg.Terrain),
		zap.Any("output", cfg.Output))

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Sugar.Infof("Config saved to %s", path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	src, seed, err := newSource(cfg.Terrain)
	if err != nil {
		return err
	}
	logger.Info("noise source ready",
		zap.String("algorithm", cfg.Terrain.Algorithm),
		zap.Int64("seed", seed),
		zap.Int("octaves", cfg.Terrain.Octaves))

	gen, err := terrain.NewGenerator(src, terrain.GridParams{
		Width:            cfg.Terrain.Width,
		Depth:            cfg.Terrain.Depth,
		Scale:            cfg.Terrain.Scale,
		HeightMultiplier: cfg.Terrain.HeightMultiplier,
	}, logger.Named("terrain"))
	if err != nil {
		return err
	}

	res, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	size := res.Mesh.Bounds.Size()
	logger.Info("terrain generated",
		zap.Int("vertices", len(res.Mesh.Vertices)),
		zap.Int("triangles", res.Mesh.TriangleCount()),
		zap.Float32("relief", size.Y),
		zap.Duration("elapsed", res.GridTime+res.MeshTime))

	if path := cfg.Output.Heightmap; path != "" {
		format := export.FormatFromPath(path, cfg.Output.HeightmapFormat)
		err := export.SaveFile(path, func(w io.Writer) error {
			return export.WriteHeightmap(w, res.Grid, format)
		})
		if err != nil {
			return fmt.Errorf("writing heightmap: %w", err)
		}
		logger.Info("heightmap written", zap.String("path", path), zap.String("format", format))
	}

	if path := cfg.Output.Mesh; path != "" {
		err := export.SaveFile(path, func(w io.Writer) error {
			return export.WriteOBJ(w, res.Mesh)
		})
		if err != nil {
			return fmt.Errorf("writing mesh: %w", err)
		}
		logger.Info("mesh written", zap.String("path", path))
	}

	return nil
}

// newSource builds the configured noise source. Without a configured seed a
// random one is chosen and returned so the run can be reproduced.
func newSource(tc config.TerrainConfig) (noise.Source, int64, error) {
	var (
		src  noise.Source
		seed int64
		err  error
	)
	if tc.Seed != nil {
		seed = *tc.Seed
		src, err = noise.NewSource(tc.Algorithm, seed)
	} else {
		src, seed, err = noise.NewRandomSource(tc.Algorithm)
		if err == nil {
			logger.Warn("no seed configured, output will not repeat", zap.Int64("seed", seed))
		}
	}
	if err != nil {
		return nil, 0, err
	}
	if tc.Octaves > 1 {
		src, err = noise.NewFractal(src, tc.Octaves, tc.Persistence, tc.Lacunarity)
		if err != nil {
			return nil, 0, err
		}
	}
	return src, seed, nil
}
