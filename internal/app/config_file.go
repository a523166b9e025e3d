package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections improve readability and map naturally to flags.
type FileConfig struct {
	Dir   string `yaml:"dir" json:"dir"`
	Title string `yaml:"title" json:"title"`

	Providers struct {
		Table string `yaml:"table" json:"table"`
	} `yaml:"providers" json:"providers"`

	Composite struct {
		PDF string `yaml:"pdf" json:"pdf"`
	} `yaml:"composite" json:"composite"`

	Force   bool `yaml:"force" json:"force"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that are currently unset/zero in cfg. Flags should already have been
// parsed; this lets file config supply defaults while preserving explicit
// flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.Dir == "" && fc.Dir != "" {
		cfg.Dir = fc.Dir
	}
	if cfg.Title == "" && fc.Title != "" {
		cfg.Title = fc.Title
	}
	if cfg.ProviderTablePath == "" && fc.Providers.Table != "" {
		cfg.ProviderTablePath = fc.Providers.Table
	}
	if cfg.CompositePDF == "" && fc.Composite.PDF != "" {
		cfg.CompositePDF = fc.Composite.PDF
	}
	if !cfg.Force && fc.Force {
		cfg.Force = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
