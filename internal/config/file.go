package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape. Pointer fields distinguish "unset"
// from an explicit false so defaults survive partial files.
type fileConfig struct {
	DryRun   *bool    `yaml:"dry_run"`
	Verbose  *bool    `yaml:"verbose"`
	ShowDiff *bool    `yaml:"show_diff"`
	Progress *bool    `yaml:"progress"`
	Color    string   `yaml:"color"`
	LogFile  string   `yaml:"log_file"`
	Ignore   []string `yaml:"ignore"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/sortbox/config.yaml (or the
// platform equivalent from os.UserConfigDir).
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "sortbox", "config.yaml"), nil
}

// LoadFile applies the YAML file at path to cfg. When optional is true a
// missing file is not an error.
func LoadFile(cfg *Config, path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	fc.apply(cfg)
	cfg.ConfigFile = path
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.ShowDiff != nil {
		cfg.ShowDiff = *fc.ShowDiff
	}
	if fc.Progress != nil {
		cfg.Progress = *fc.Progress
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(strings.ToLower(fc.Color))
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if len(fc.Ignore) > 0 {
		cfg.Ignore = append([]string(nil), fc.Ignore...)
	}
}
