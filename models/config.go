package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config externalizes the constants the pipeline runs on: the scrape
// endpoint, the tier thresholds and palette, and the fixed output
// paths. Defaults are built in; an optional YAML file overlays them.
type Config struct {
	BaseURL        string    `yaml:"base_url"`
	UserAgent      string    `yaml:"user_agent"`
	TimeoutSeconds int       `yaml:"timeout_seconds"`
	CachePath      string    `yaml:"cache_path"`
	OutputPath     string    `yaml:"output_path"`
	DataDir        string    `yaml:"data_dir"`
	DBPath         string    `yaml:"db_path"`
	Thresholds     []float64 `yaml:"thresholds"`
	Palette        []string  `yaml:"palette"`
	Unclassified   string    `yaml:"unclassified"`
	LegendLabels   []string  `yaml:"legend_labels"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://forebears.io",
		UserAgent:      "Mozilla/5.0",
		TimeoutSeconds: 30,
		CachePath:      "data.csv",
		OutputPath:     "world_map.png",
		DataDir:        "nameatlas-data",
		DBPath:         "nameatlas.db",
		Thresholds:     []float64{0.25, 0.5, 1, 1.5, 2},
		Palette:        []string{"#3b7b80", "#68999d", "#89afb4", "#f1a85f", "#ee9133", "#db780b"},
		Unclassified:   "#ffffff",
		LegendLabels: []string{
			"Many more surnames",
			"More surnames",
			"Moderately more surnames",
			"Moderately more forenames",
			"More forenames",
			"Many more forenames",
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults. A missing
// file is not an error: the defaults apply as-is.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the invariants the classifier and renderer rely on.
func (c *Config) Validate() error {
	if len(c.Thresholds) != 5 {
		return fmt.Errorf("config: want 5 tier thresholds, got %d", len(c.Thresholds))
	}
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i] <= c.Thresholds[i-1] {
			return fmt.Errorf("config: tier thresholds must be strictly ascending")
		}
	}
	if len(c.Palette) != 6 {
		return fmt.Errorf("config: want 6 palette colors, got %d", len(c.Palette))
	}
	if len(c.LegendLabels) != 6 {
		return fmt.Errorf("config: want 6 legend labels, got %d", len(c.LegendLabels))
	}
	return nil
}
