package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	SaveDir  string `env:"RELGAME_SAVE_DIR" envDefault:".saves"`
	SaveFile string `env:"RELGAME_SAVE_FILE" envDefault:"savegame.yaml"`

	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64 `env:"RELGAME_SEED" envDefault:"0"`

	LogFile string `env:"RELGAME_LOG_FILE" envDefault:"relgame.log"`
	Debug   bool   `env:"RELGAME_DEBUG"`

	// GeminiAPIKey is optional. Without it dialogue comes from the built-in lines.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// SavePath is the full path of the save file.
func (c *Config) SavePath() string {
	return filepath.Join(c.SaveDir, c.SaveFile)
}
