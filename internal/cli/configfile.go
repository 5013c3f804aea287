package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig holds the persistent defaults read from the powpow config file.
// Location: POWPOW_CONFIG_PATH env var, or ~/.powpow.yaml.
type FileConfig struct {
	Highlight   *bool  `yaml:"highlight"`
	LineNumbers *bool  `yaml:"line_numbers"`
	Color       string `yaml:"color"`
}

// LoadFileConfig reads the powpow config file. A missing file is not an
// error; it just yields an empty config.
func LoadFileConfig() (FileConfig, error) {
	path := os.Getenv("POWPOW_CONFIG_PATH")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return FileConfig{}, nil
		}
		path = filepath.Join(home, ".powpow.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// ApplyTo overlays the file defaults onto cfg for the knobs the user did not
// set on the command line.
func (fc FileConfig) ApplyTo(cfg *Config, highlightSet, lineNumbersSet, colorSet bool) {
	if !highlightSet && fc.Highlight != nil {
		cfg.Highlight = *fc.Highlight
	}
	if !lineNumbersSet && fc.LineNumbers != nil {
		cfg.LineNumbers = *fc.LineNumbers
	}
	if !colorSet && fc.Color != "" {
		if mode, err := ParseColorMode(fc.Color); err == nil {
			cfg.Color = mode
		}
	}
}
