// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is the desktop game's runtime configuration.
type Config struct {
	SettingsPath string  `env:"KITCHEN_SETTINGS_PATH"`
	RecipesPath  string  `env:"KITCHEN_RECIPES_PATH"`
	LogLevel     string  `env:"KITCHEN_LOG_LEVEL" envDefault:"info"`
	LogEncoding  string  `env:"KITCHEN_LOG_ENCODING" envDefault:"console"`
	LogOutput    string  `env:"KITCHEN_LOG_OUTPUT" envDefault:"stderr"`
	PlayingTime  float64 `env:"KITCHEN_PLAYING_TIME" envDefault:"90"`
	MoveSpeed    float64 `env:"KITCHEN_MOVE_SPEED" envDefault:"7"`
	Mute         bool    `env:"KITCHEN_MUTE" envDefault:"false"`
	WindowWidth  int     `env:"KITCHEN_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int     `env:"KITCHEN_WINDOW_HEIGHT" envDefault:"720"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment and fills in derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SettingsPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("settings path: %w", err)
		}
		cfg.SettingsPath = filepath.Join(dir, "kitchen", "settings.db")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	if c.PlayingTime <= 0 {
		return fmt.Errorf("KITCHEN_PLAYING_TIME must be positive, got %v", c.PlayingTime)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("KITCHEN_MOVE_SPEED must be positive, got %v", c.MoveSpeed)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
