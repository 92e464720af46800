// Package config loads the mdsite.yaml settings of a source tree.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/mdsite/internal/logging"
	"github.com/taigrr/mdsite/internal/pathfilter"
	"github.com/taigrr/mdsite/internal/types"
)

const (
	// FileName is the config file looked up in the source root.
	FileName = "mdsite.yaml"

	DefaultFooter = "Generated with love"
	DefaultAddr   = "127.0.0.1:8080"
)

// Config holds the settings for building and serving one source tree.
type Config struct {
	Root      string `yaml:"-"`
	Title     string `yaml:"title"`
	Footer    string `yaml:"footer"`
	OutputDir string `yaml:"outputDir"`
	Addr      string `yaml:"addr"`
	Workers   int    `yaml:"workers"`
	Clean     bool   `yaml:"clean"`
	Progress  bool   `yaml:"progress"`

	types.PathFilterConfig `yaml:",inline"`

	Log logging.Config `yaml:"log"`
}

// Default returns the configuration used when root has no config file.
func Default(root string) Config {
	cfg := Config{Root: root}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file for root. An empty path means root/mdsite.yaml,
// which may be absent. An explicitly named file must exist.
func Load(root, path string) (Config, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve source directory: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(absRoot, FileName)
	}

	cfg := Default(absRoot)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.Root = absRoot
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = filepath.Base(c.Root)
	}
	if c.Footer == "" {
		c.Footer = DefaultFooter
	}
	if c.OutputDir == "" {
		c.OutputDir = pathfilter.DefaultOutputDir
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
}

// Validate checks values that cannot be corrected by defaults.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	out := filepath.ToSlash(filepath.Clean(c.OutputDir))
	if filepath.IsAbs(c.OutputDir) || out == "." || out == ".." || strings.HasPrefix(out, "../") {
		return fmt.Errorf("outputDir must be a directory inside the source root, got %q", c.OutputDir)
	}
	return nil
}

// OutputPath is the absolute path of the generated site.
func (c Config) OutputPath() string {
	return filepath.Join(c.Root, filepath.FromSlash(c.OutputDir))
}

// Filter returns the path filter configuration, with the output directory
// ignored so generated files are never scanned.
func (c Config) Filter() *types.PathFilterConfig {
	out := filepath.ToSlash(filepath.Clean(c.OutputDir))
	return &types.PathFilterConfig{
		IgnoredPatterns:   append(append([]string(nil), c.IgnoredPatterns...), out+"/**"),
		AllowedExtensions: append([]string(nil), c.AllowedExtensions...),
	}
}
