package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on missing file failed: %v", err)
	}

	defaults := DefaultConfig()
	if config.BaseURL != defaults.BaseURL {
		t.Errorf("BaseURL = %q, want default %q", config.BaseURL, defaults.BaseURL)
	}
	if config.CachePath != defaults.CachePath {
		t.Errorf("CachePath = %q, want default %q", config.CachePath, defaults.CachePath)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("cache_path: other.csv\noutput_path: out.png\ntimeout_seconds: 10\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.CachePath != "other.csv" {
		t.Errorf("CachePath = %q, want %q", config.CachePath, "other.csv")
	}
	if config.OutputPath != "out.png" {
		t.Errorf("OutputPath = %q, want %q", config.OutputPath, "out.png")
	}
	if config.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", config.TimeoutSeconds)
	}
	// Untouched keys keep their defaults.
	if config.BaseURL != DefaultConfig().BaseURL {
		t.Errorf("BaseURL = %q, want default", config.BaseURL)
	}
	if len(config.Palette) != 6 {
		t.Errorf("Palette has %d colors, want 6", len(config.Palette))
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "wrong threshold count", content: "thresholds: [0.5, 1]\n"},
		{name: "non-ascending thresholds", content: "thresholds: [0.25, 0.5, 0.5, 1.5, 2]\n"},
		{name: "wrong palette size", content: "palette: ['#ffffff']\n"},
		{name: "not yaml", content: "::: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() succeeded, want error")
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}
