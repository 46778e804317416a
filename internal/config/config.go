// Package config loads floorgrid settings from an optional YAML file and
// FLOORGRID_* environment variables. Environment values win.
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/floorgrid/converter"
)

// EnvPrefix is the prefix shared by all recognised environment variables.
const EnvPrefix = "FLOORGRID_"

const defaultLogLevel = "info"

// Config holds command settings.
type Config struct {
	Log      Log     `koanf:"log"`
	CellSize float64 `koanf:"cellSize"`
	Plan     string  `koanf:"plan"`
}

// Log configures the zap logger.
type Log struct {
	Level string `koanf:"level"`
}

// env var suffix -> koanf key
var envKeys = map[string]string{
	"LOG_LEVEL": "log.level",
	"CELL_SIZE": "cellSize",
	"PLAN":      "plan",
}

// Load reads path (skipped when empty), then overlays FLOORGRID_LOG_LEVEL,
// FLOORGRID_CELL_SIZE and FLOORGRID_PLAN. Unset values get defaults: info
// logging and converter.DefaultCellSize.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKeys[strings.TrimPrefix(key, EnvPrefix)], value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if !(c.CellSize > 0) {
		c.CellSize = converter.DefaultCellSize
	}
	c.Plan = strings.TrimSpace(c.Plan)
}
