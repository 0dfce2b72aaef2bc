// Package config loads and validates the autofiler configuration.
// Configuration is layered: built-in defaults, then the config file
// (YAML or TOML, picked by extension), then AUTOFILER_* environment
// variables. Any schema violation is fatal: the engine's correctness
// depends on valid field rules and trees, so no run starts without
// them.
package config

import (
	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/fields"
	"github.com/autofiler/autofiler/pkg/paths"
	"github.com/autofiler/autofiler/pkg/types"
)

// Config is the full autofiler configuration
type Config struct {
	Fields fields.Rules `koanf:"fields" yaml:"fields" toml:"fields"`
	Source SourceConfig `koanf:"source" yaml:"source" toml:"source"`
	Target TargetConfig `koanf:"target" yaml:"target" toml:"target"`
}

// SourceConfig describes the tree to scan
type SourceConfig struct {
	Path      string   `koanf:"path" yaml:"path" toml:"path"`
	Recursive bool     `koanf:"recursive" yaml:"recursive" toml:"recursive"`
	Ignore    []string `koanf:"ignore" yaml:"ignore" toml:"ignore"`
}

// TargetConfig describes the tree to file into. ParentDir and SubDir
// name the fields used for the two resolution stages.
type TargetConfig struct {
	Path      string   `koanf:"path" yaml:"path" toml:"path"`
	Ignore    []string `koanf:"ignore" yaml:"ignore" toml:"ignore"`
	ParentDir string   `koanf:"parent_dir" yaml:"parent_dir" toml:"parent_dir"`
	SubDir    string   `koanf:"sub_dir" yaml:"sub_dir" toml:"sub_dir"`
}

// Validate checks the configuration against the filesystem. Every
// violation here aborts the run before any matching starts.
func (c *Config) Validate(fsys types.FS) error {
	if err := c.Fields.Validate(); err != nil {
		return err
	}

	if err := paths.ValidateDir(fsys, c.Source.Path, errors.ErrSourceInvalid); err != nil {
		return err
	}
	if err := paths.ValidateDir(fsys, c.Target.Path, errors.ErrTargetInvalid); err != nil {
		return err
	}

	if c.Target.ParentDir == "" {
		return errors.New(errors.ErrConfigValid, "target.parent_dir is not set")
	}
	if !c.Fields.Has(c.Target.ParentDir) {
		return errors.Newf(errors.ErrConfigValid,
			"target.parent_dir %q is not a declared field", c.Target.ParentDir)
	}
	if c.Target.SubDir == "" {
		return errors.New(errors.ErrConfigValid, "target.sub_dir is not set")
	}
	if !c.Fields.Has(c.Target.SubDir) {
		return errors.Newf(errors.ErrConfigValid,
			"target.sub_dir %q is not a declared field", c.Target.SubDir)
	}

	return nil
}

// Starter returns the example configuration written by "autofiler init"
func Starter() *Config {
	return &Config{
		Fields: fields.Rules{
			{Name: "client", Allowed: []string{"ACME", "GLOBEX"}},
			{Name: "year", Allowed: nil},
		},
		Source: SourceConfig{
			Path:      "/path/to/inbox",
			Recursive: true,
			Ignore:    []string{"archive"},
		},
		Target: TargetConfig{
			Path:      "/path/to/clients",
			Ignore:    nil,
			ParentDir: "client",
			SubDir:    "year",
		},
	}
}
