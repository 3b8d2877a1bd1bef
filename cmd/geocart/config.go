package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML arc-list file.
type Config struct {
	Arcs []ArcConfig `yaml:"arcs"`
}

// ArcConfig describes one named great-circle arc, endpoints in degrees.
type ArcConfig struct {
	Name     string   `yaml:"name"`
	From     Position `yaml:"from"`
	To       Position `yaml:"to"`
	Segments int      `yaml:"segments,omitempty"`
}

type Position struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// LoadConfig reads and parses the YAML arc-list file at the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
