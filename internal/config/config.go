// File: config.go
// Title: Configuration Management
// Description: Implements loading, merging, and validating the shellmarks
//              configuration from TOML and YAML files with format
//              auto-detection by file extension.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	smerror "github.com/shellmarks/shellmarks/internal/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Outputs selects which shell-integration files to write. Every field is
// optional, but a valid configuration selects at least one.
type Outputs struct {
	Lf      string `toml:"lf" yaml:"lf"`
	ZshHash string `toml:"zsh" yaml:"zsh"`
	CdAlias string `toml:"cd_alias" yaml:"cd_alias"`
}

// Any reports whether at least one output target is selected
func (o Outputs) Any() bool {
	return o.Lf != "" || o.ZshHash != "" || o.CdAlias != ""
}

// Config is the full configuration surface of shellmarks
type Config struct {
	Input   string  `toml:"input" yaml:"input"`
	Outputs Outputs `toml:"outputs" yaml:"outputs"`
}

// Load loads configuration from a file, auto-detecting TOML or YAML from
// the file extension.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, smerror.New("config file path cannot be empty").
			WithCode(smerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, smerror.Newf("config file not found: %s", path).
			WithCode(smerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	format := detectFormat(path)
	if format == FormatAuto {
		return nil, smerror.Newf("cannot detect config format from extension: %s", path).
			WithCode(smerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, smerror.Wrap(err, "cannot read config file").
			WithCode(smerror.CodeIOError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, smerror.Wrap(err, "cannot parse config file").
			WithCode(smerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("format", format.String())
	}

	return &cfg, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Merge overlays the non-empty fields of other onto c. Command-line flags
// are merged last so they win over config-file values.
func (c *Config) Merge(other Config) {
	if other.Input != "" {
		c.Input = other.Input
	}
	if other.Outputs.Lf != "" {
		c.Outputs.Lf = other.Outputs.Lf
	}
	if other.Outputs.ZshHash != "" {
		c.Outputs.ZshHash = other.Outputs.ZshHash
	}
	if other.Outputs.CdAlias != "" {
		c.Outputs.CdAlias = other.Outputs.CdAlias
	}
}

// Validate checks that the configuration is complete: an input file and at
// least one output target.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Input, validation.Required.Error("input bookmarks file is required")),
		validation.Field(&c.Outputs, validation.By(atLeastOneTarget)),
	)
	if err != nil {
		return smerror.Wrap(err, "invalid configuration").
			WithCode(smerror.CodeConfigError).
			WithOperation("config.Validate")
	}
	return nil
}

func atLeastOneTarget(value interface{}) error {
	outputs, ok := value.(Outputs)
	if !ok {
		return errors.New("must be an outputs section")
	}
	if !outputs.Any() {
		return errors.New("at least one output target must be selected")
	}
	return nil
}
