package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "pocmirror.yml"

// Settings controls where a build reads from and writes to.
type Settings struct {
	Catalog   string `yaml:"catalog"`
	SourceDir string `yaml:"source_dir"`
	OutputDir string `yaml:"output_dir"`
	Title     string `yaml:"title,omitempty"`
	WriteSum  bool   `yaml:"write_sum"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the settings used when no settings file exists.
func Default() *Settings {
	return &Settings{
		Catalog:   "config.json",
		SourceDir: "files",
		OutputDir: "public",
		WriteSum:  true,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the settings file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings that would make a build ambiguous.
func (s *Settings) Validate() error {
	if s.Catalog == "" {
		return errors.New("catalog must not be empty")
	}
	if s.SourceDir == "" {
		return errors.New("source_dir must not be empty")
	}
	if s.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	return nil
}

// Save writes the settings to path.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
