package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/autofiler/autofiler/pkg/errors"
	"github.com/autofiler/autofiler/pkg/logging"
)

// envPrefix is stripped from environment variables before they are
// mapped onto config keys (AUTOFILER_SOURCE_PATH -> source.path)
const envPrefix = "AUTOFILER_"

// defaults applied beneath the config file
func systemDefaults() map[string]interface{} {
	return map[string]interface{}{
		"source.recursive": true,
	}
}

// Load reads the configuration from the given file path. An empty
// path falls back to the default search locations. Validation against
// the filesystem is a separate step, see Config.Validate.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	resolved, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(systemDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file, parser picked by extension
	parser, err := parserFor(resolved)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(resolved), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"failed to parse config file %q", resolved)
	}

	// 3. Environment overrides. Only the first underscore separates the
	// section from the key, later ones belong to the key itself
	// (AUTOFILER_TARGET_PARENT_DIR -> target.parent_dir)
	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"config file %q does not match the expected schema", resolved)
	}

	logger.Debug().
		Str("path", resolved).
		Int("fields", len(cfg.Fields)).
		Msg("configuration loaded")

	return &cfg, nil
}

// resolveConfigPath picks the config file: the explicit path when
// given, otherwise the first default location that exists
func resolveConfigPath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad,
				"configuration file %q cannot be found", path)
		}
		return path, nil
	}

	candidates := []string{
		"autofiler.yaml",
		"autofiler.toml",
		filepath.Join(xdg.ConfigHome, "autofiler", "config.yaml"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigLoad,
		"no configuration file found, looked for %s", strings.Join(candidates, ", "))
}

// parserFor maps a config file extension to its koanf parser
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config file extension %q, use .yaml, .yml or .toml", filepath.Ext(path))
	}
}
