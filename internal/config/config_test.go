package config

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SaveFile != "savegame.yaml" {
		t.Errorf("Expected savegame.yaml, got %q", cfg.SaveFile)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("Unexpected model %q", cfg.GeminiModel)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RELGAME_SAVE_DIR", "/tmp/relgame")
	t.Setenv("RELGAME_SEED", "42")
	t.Setenv("RELGAME_DEBUG", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 42 || !cfg.Debug {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if got, want := cfg.SavePath(), filepath.Join("/tmp/relgame", "savegame.yaml"); got != want {
		t.Errorf("SavePath = %q, want %q", got, want)
	}
}

func TestLoadConfigRejectsBadSeed(t *testing.T) {
	t.Setenv("RELGAME_SEED", "lots")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error for a non-numeric seed")
	}
}
