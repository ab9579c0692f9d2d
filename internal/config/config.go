// Package config holds the process-wide defaults of the report generator and
// loads overrides from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTemplatePath is where the container image ships the report template.
	DefaultTemplatePath = "/app/templates/report_template.html"
	// UnknownValue is used for repository and commit when the caller supplies none.
	UnknownValue = "Unknown"
	// DefaultToolVersionLabel is reported as the analyzer version.
	DefaultToolVersionLabel = "Latest"
	// DefaultScanDateLayout renders as YYYY-MM-DD HH:MM:SS UTC.
	DefaultScanDateLayout = "2006-01-02 15:04:05 UTC"
)

// Config is the set of values the generator would otherwise hard-code.
type Config struct {
	TemplatePath         string `yaml:"template_path"`
	DefaultRepositoryURL string `yaml:"default_repository_url"`
	DefaultCommitSHA     string `yaml:"default_commit_sha"`
	ToolVersionLabel     string `yaml:"tool_version_label"`
	ScanDateLayout       string `yaml:"scan_date_layout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TemplatePath:         DefaultTemplatePath,
		DefaultRepositoryURL: UnknownValue,
		DefaultCommitSHA:     UnknownValue,
		ToolVersionLabel:     DefaultToolVersionLabel,
		ScanDateLayout:       DefaultScanDateLayout,
	}
}

// Load reads a YAML file and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return cfg.WithDefaults(), nil
}

// WithDefaults returns c with every blank field set from Default.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.TemplatePath == "" {
		c.TemplatePath = d.TemplatePath
	}
	if c.DefaultRepositoryURL == "" {
		c.DefaultRepositoryURL = d.DefaultRepositoryURL
	}
	if c.DefaultCommitSHA == "" {
		c.DefaultCommitSHA = d.DefaultCommitSHA
	}
	if c.ToolVersionLabel == "" {
		c.ToolVersionLabel = d.ToolVersionLabel
	}
	if c.ScanDateLayout == "" {
		c.ScanDateLayout = d.ScanDateLayout
	}
	return c
}
