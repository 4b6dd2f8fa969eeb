package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "SYNTHSCREEN"

// newViper builds a pre-configured Viper instance: YAML file type,
// SYNTHSCREEN_ env prefix, automatic env binding, and a key replacer mapping
// "." → "_" so that "results.dir" resolves to "SYNTHSCREEN_RESULTS_DIR".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only sees env overrides for keys viper already knows about,
	// so register every scalar key up front.
	for _, key := range []string{
		"log.level", "log.format",
		"data.elements", "data.materials",
		"results.dir", "results.charts", "results.metrics",
		"screen.target.ion", "screen.target.coordination", "screen.target.charge",
		"screen.template", "screen.label",
	} {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges any SYNTHSCREEN_*
// environment variable overrides, applies defaults for unset fields, and
// validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from SYNTHSCREEN_* environment
// variables and defaults, with no config file required.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// WriteDefault marshals the default configuration to YAML at path.  Unless
// force is set, an existing file is left untouched and an error returned.
// Used by `synthscreen init` to produce a starter config.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %q already exists (use force to overwrite)", path)
		}
	}
	out, err := yaml.Marshal(NewDefaultConfig())
	if err != nil {
		return fmt.Errorf("config: failed to marshal default configuration: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %q: %w", path, err)
	}
	return nil
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// Intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
