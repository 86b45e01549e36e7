// Package config loads the optional snake.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"snake/internal/domain"
	"snake/internal/log"
	"snake/internal/storage"
)

const DefaultFile = "snake.yaml"

type Config struct {
	Game domain.GameConfig `yaml:"game"`

	HighScoreFile string `yaml:"high_score_file"`

	// CellSize is the edge of one grid cell in window pixels.
	CellSize int `yaml:"cell_size"`
	// FontPaths are tried in order for the text overlay.
	FontPaths []string `yaml:"font_paths"`
	// BuiltinFont allows falling back to the fonts compiled into the binary
	// when none of FontPaths loads. Without it the overlay is simply skipped.
	BuiltinFont bool `yaml:"builtin_font"`

	LogLevel string `yaml:"log_level"`
	// LogFile receives log output from the terminal frontend.
	LogFile string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Game:          *domain.DefaultGameConfig(),
		HighScoreFile: storage.DefaultHighScoreFile,
		CellSize:      20,
		FontPaths: []string{
			"arial.ttf",
			"C:/Windows/Fonts/arial.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/System/Library/Fonts/Helvetica.ttc",
		},
		BuiltinFont: true,
		LogLevel:    "info",
		LogFile:     "snake.log",
	}
}

// Load reads path on top of the defaults. A missing file is not an error. On
// any other failure the defaults are returned together with the error so the
// caller can log it and carry on.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if c.CellSize < 4 || c.CellSize > 64 {
		return fmt.Errorf("cell size %d out of range [4, 64]", c.CellSize)
	}
	if c.HighScoreFile == "" {
		return errors.New("high score file must not be empty")
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
