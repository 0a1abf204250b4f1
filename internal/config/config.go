// Package config loads the application configuration for the tagfilter CLI.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"tagfilter/internal/common"

	"github.com/spf13/viper"
)

const EnvPrefix = "TAGFILTER"

const (
	SegmentorMecab  = "mecab"
	SegmentorKagome = "kagome"
)

type Config struct {
	Segmentor string         `mapstructure:"segmentor"`
	Log       LogConfig      `mapstructure:"log"`
	Filters   []FilterConfig `mapstructure:"filters"`
}

type LogConfig struct {
	Env   string `mapstructure:"env"`   // dev, prod
	Level string `mapstructure:"level"` // debug, info, warn, error
	Debug bool   `mapstructure:"debug"`
}

// FilterConfig names a registered token filter and carries its arguments,
// e.g. kind: japanese_stop_tags with args: {tags: [助詞, 記号]}.
type FilterConfig struct {
	Kind string         `mapstructure:"kind"`
	Args map[string]any `mapstructure:"args"`
}

// ArgsJSON re-encodes the arguments into the JSON form filters are built from.
func (f FilterConfig) ArgsJSON() ([]byte, error) {
	b, err := json.Marshal(f.Args)
	if err != nil {
		return nil, common.Deserialize.WithError(err)
	}
	return b, nil
}

// Load reads the file at path (YAML, JSON or TOML by extension) and applies
// TAGFILTER_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("segmentor", SegmentorMecab)
	v.SetDefault("log.env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.debug", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, common.Io.WithError(fmt.Errorf("failed to read config file: %w", err))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, common.Deserialize.WithError(fmt.Errorf("failed to parse config: %w", err))
	}

	if err := cfg.validate(); err != nil {
		return nil, common.Args.WithError(fmt.Errorf("invalid configuration: %w", err))
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Segmentor {
	case SegmentorMecab, SegmentorKagome:
	default:
		return fmt.Errorf("unknown segmentor %q", c.Segmentor)
	}

	for i, f := range c.Filters {
		if f.Kind == "" {
			return fmt.Errorf("filters[%d]: kind is required", i)
		}
	}
	return nil
}
