package orion

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/oliverbestmann/roxy/pulse"
)

// Config holds the settings read from the environment. No variable
// is required, the defaults match DefaultConfig.
type Config struct {
	// Level of the default slog logger
	LogLevel slog.Level `env:"ROXY_LOG_LEVEL" envDefault:"info"`

	// Color the screen is cleared to, either an srgb hex value
	// like "#1a334d" or linear components like "0.1,0.2,0.3,1"
	ClearColor pulse.Color `env:"ROXY_CLEAR_COLOR" envDefault:"0.1,0.2,0.3,1"`

	// Present frames in sync with the vertical blank
	VSync bool `env:"ROXY_VSYNC" envDefault:"true"`

	// Profile to record while the game is running, one of
	// cpu, mem, block, mutex or trace. Empty disables profiling.
	Profile string `env:"ROXY_PROFILE"`

	// Log level of the native webgpu library
	WGPULogLevel string `env:"WGPU_LOG_LEVEL"`

	// Use the software adapter instead of the hardware one
	ForceFallbackAdapter bool `env:"WGPU_FORCE_FALLBACK_ADAPTER"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:   slog.LevelInfo,
		ClearColor: pulse.ColorPortalBlue,
		VSync:      true,
	}
}

// LoadConfig parses the Config from environment variables.
func LoadConfig() (Config, error) {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if conf.Profile != "" && !slices.Contains(profileModes, conf.Profile) {
		return Config{}, fmt.Errorf("unknown profile %q, expected one of %v", conf.Profile, profileModes)
	}

	return conf, nil
}
