package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/fields"
	"github.com/autofiler/autofiler/pkg/testutil"
)

func validConfig() *Config {
	return &Config{
		Fields: fields.Rules{
			{Name: "client", Allowed: []string{"ACME"}},
			{Name: "year"},
		},
		Source: SourceConfig{Path: "/in", Recursive: true},
		Target: TargetConfig{Path: "/out", ParentDir: "client", SubDir: "year"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantCode errors.ErrorCode
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:     "no fields",
			mutate:   func(c *Config) { c.Fields = nil },
			wantCode: errors.ErrConfigValid,
		},
		{
			name:     "missing source path",
			mutate:   func(c *Config) { c.Source.Path = "" },
			wantCode: errors.ErrSourceInvalid,
		},
		{
			name:     "source path does not exist",
			mutate:   func(c *Config) { c.Source.Path = "/missing" },
			wantCode: errors.ErrSourceInvalid,
		},
		{
			name:     "target path does not exist",
			mutate:   func(c *Config) { c.Target.Path = "/missing" },
			wantCode: errors.ErrTargetInvalid,
		},
		{
			name:     "parent_dir not set",
			mutate:   func(c *Config) { c.Target.ParentDir = "" },
			wantCode: errors.ErrConfigValid,
		},
		{
			name:     "parent_dir names an undeclared field",
			mutate:   func(c *Config) { c.Target.ParentDir = "vendor" },
			wantCode: errors.ErrConfigValid,
		},
		{
			name:     "sub_dir names an undeclared field",
			mutate:   func(c *Config) { c.Target.SubDir = "month" },
			wantCode: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys, mem := testutil.NewMemoryFS()
			testutil.MkDirs(t, mem, "/in", "/out")

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate(fsys)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode),
				"want %s, got %v", tt.wantCode, err)
		})
	}
}

func TestStarterIsValidRules(t *testing.T) {
	assert.NoError(t, Starter().Fields.Validate())
}
