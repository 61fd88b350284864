// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	AssetRoot string         `yaml:"asset_root"`
	Graphics  GraphicsConfig `yaml:"graphics"`
	Terrain   TerrainConfig  `yaml:"terrain"`
	Grass     GrassConfig    `yaml:"grass"`
	Logging   LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds terrain asset paths and scales. MaterialPath points
// at a material file inside the asset root; when empty, a material is
// synthesized from HeightmapPath.
type TerrainConfig struct {
	MaterialPath  string  `yaml:"material_path"`
	HeightmapPath string  `yaml:"heightmap_path"`
	XZScale       float32 `yaml:"xz_scale"`
	YScale        float32 `yaml:"y_scale"`
}

// GrassConfig holds grass layer settings.
type GrassConfig struct {
	Enabled   bool    `yaml:"enabled"`
	ModelPath string  `yaml:"model_path"` // empty = built-in cross quad mesh
	Density   int     `yaml:"density"`
	Distance  float32 `yaml:"distance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		AssetRoot: "assets",
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			HeightmapPath: "data/heightmap.png",
			XZScale:       1.0,
			YScale:        50.0,
		},
		Grass: GrassConfig{
			Enabled:  true,
			Density:  10,
			Distance: 50.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
