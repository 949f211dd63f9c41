package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Grid width in vertices")
	flagDepth     = flag.Int("depth", 0, "Grid depth in vertices")
	flagScale     = flag.Float64("scale", 0, "Noise units per grid step")
	flagHeight    = flag.Float64("height", 0, "Height multiplier")
	flagSeed      = flag.Int64("seed", 0, "Noise seed (0 keeps the configured seed)")
	flagAlgorithm = flag.String("algorithm", "", "Noise algorithm: perlin, simplex or classic")
	flagOctaves   = flag.Int("octaves", 0, "Number of fractal octaves")
	flagHeightmap = flag.String("heightmap", "", "Write the heightmap image to this path")
	flagMesh      = flag.String("mesh", "", "Write the mesh as OBJ to this path")
	flagSave      = flag.Bool("save", false, "Save the effective config to the user config directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Terrain.Width = *flagWidth
	}
	if *flagDepth > 0 {
		cfg.Terrain.Depth = *flagDepth
	}
	if *flagScale > 0 {
		cfg.Terrain.Scale = *flagScale
	}
	if *flagHeight != 0 {
		cfg.Terrain.HeightMultiplier = *flagHeight
	}
	if *flagSeed != 0 {
		seed := *flagSeed
		cfg.Terrain.Seed = &seed
	}
	if *flagAlgorithm != "" {
		cfg.Terrain.Algorithm = *flagAlgorithm
	}
	if *flagOctaves > 0 {
		cfg.Terrain.Octaves = *flagOctaves
	}
	if *flagHeightmap != "" {
		cfg.Output.Heightmap = *flagHeightmap
	}
	if *flagMesh != "" {
		cfg.Output.Mesh = *flagMesh
	}
}
