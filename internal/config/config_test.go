package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("default window = %dx%d, want 1280x720", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Shadow.Scale != 160 {
		t.Errorf("default shadow scale = %v, want 160", cfg.Shadow.Scale)
	}
	if cfg.Shadow.Solidity != 180 {
		t.Errorf("default shadow solidity = %d, want 180", cfg.Shadow.Solidity)
	}
	if !cfg.Shadow.Draw {
		t.Error("shadows disabled by default")
	}
	if cfg.Shadow.MaxQuads != 64 {
		t.Errorf("default shadow pool = %d quads, want 64", cfg.Shadow.MaxQuads)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Shadow.Solidity = 99
	cfg.Shadow.Draw = false
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}

	if loaded.Graphics.Width != 1920 {
		t.Errorf("loaded width = %d, want 1920", loaded.Graphics.Width)
	}
	if loaded.Shadow.Solidity != 99 {
		t.Errorf("loaded solidity = %d, want 99", loaded.Shadow.Solidity)
	}
	if loaded.Shadow.Draw {
		t.Error("loaded config re-enabled shadows")
	}
	// Untouched sections keep their defaults.
	if loaded.Shadow.Scale != 160 {
		t.Errorf("loaded scale = %v, want the 160 default", loaded.Shadow.Scale)
	}
}

func TestLoadFromFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := []byte("shadow:\n  max_quads: 8\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if cfg.Shadow.MaxQuads != 8 {
		t.Errorf("max quads = %d, want 8", cfg.Shadow.MaxQuads)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("width = %d, want the 1280 default", cfg.Graphics.Width)
	}
}
