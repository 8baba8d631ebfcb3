// Package config loads the hpxml-mapper configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is looked up in the working directory when no path is given.
	DefaultFile = "hpxml-mapper.yaml"

	defaultXMLLint  = "xmllint"
	defaultLogLevel = "info"
	dirPerm         = 0o755
	filePerm        = 0o644
)

// Config holds the settings shared by every command.
type Config struct {
	// BuildingID selects one building of a container document.
	BuildingID string `yaml:"building_id,omitempty"`
	// MultiUnit keeps every building when no BuildingID is given.
	MultiUnit bool `yaml:"multi_unit,omitempty"`

	// Rules are YAML rule-set files run against every document.
	Rules []string `yaml:"rules,omitempty"`
	// XSD is the schema passed to xmllint. Empty disables schema validation.
	XSD string `yaml:"xsd,omitempty"`
	// XMLLint is the xmllint binary.
	XMLLint string `yaml:"xmllint,omitempty"`

	// TempDir receives the temporary single-building documents.
	TempDir string `yaml:"temp_dir,omitempty"`

	CollapseSurfaces bool `yaml:"collapse_surfaces,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`
	// Concurrency bounds the number of documents processed at once.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.XMLLint == "" {
		c.XMLLint = defaultXMLLint
	}

	if c.TempDir == "" {
		c.TempDir = os.TempDir()
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if c.Concurrency <= 0 {
		c.Concurrency = runtime.GOMAXPROCS(0)
	}
}

// LoadFile loads the configuration at path. Relative rule and schema paths
// are resolved against the directory of the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)

	for i, r := range c.Rules {
		c.Rules[i] = resolve(dir, r)
	}

	if c.XSD != "" {
		c.XSD = resolve(dir, c.XSD)
	}

	return c, nil
}

// Load loads path, or DefaultFile when path is empty and it exists, or
// returns the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		return LoadFile(DefaultFile)
	}

	return DefaultConfig(), nil
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if c.BuildingID != "" && c.MultiUnit {
		return fmt.Errorf("building_id and multi_unit are mutually exclusive")
	}

	return nil
}

// SaveToFile writes the configuration to path.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
