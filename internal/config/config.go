// Package config handles shadow viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shadow   ShadowConfig   `yaml:"shadow"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ShadowConfig holds the default parameters fed to the shadow generator.
type ShadowConfig struct {
	// Diameter of the demo object's shadow in world units.
	Scale float32 `yaml:"scale"`
	// Opacity 0-255 before distance falloff.
	Solidity uint8 `yaml:"solidity"`
	// Draw toggles shadow rendering entirely.
	Draw bool `yaml:"draw"`
	// MaxQuads sizes the per-frame shadow pool.
	MaxQuads int `yaml:"max_quads"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Shadow: ShadowConfig{
			Scale:    160,
			Solidity: 180,
			Draw:     true,
			MaxQuads: 64,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
