// Package config loads the nwgerr CLI configuration.
package config

import (
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

// EnvVarPrefix is the prefix of environment overrides, e.g. NWGERR_LOG_LEVEL.
const EnvVarPrefix = "NWGERR_"

type Config struct {
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

type LogConfig struct {
	Level  string `koanf:"level" default:"warn" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty" default:"true"`
	Format string `koanf:"format" default:"json" validate:"oneof=json ecs"`
}

type OutputConfig struct {
	Format string `koanf:"format" default:"text" validate:"oneof=text json"`
}

type LoadOptions struct {
	YamlFilePaths []string
	EnvVarPrefix  string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds a Config from defaults, then the YAML files in order, then the
// environment, and validates the result.
func Load(options LoadOptions) (*Config, error) {
	errorBuilder := oops.
		In("config").
		Tags("loader")

	if options.EnvVarPrefix == "" {
		options.EnvVarPrefix = EnvVarPrefix
	}

	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, errorBuilder.Wrapf(err, "failed to set config defaults")
	}

	// Env values are strings; a strict merge would reject them over typed
	// YAML values, so rely on the weakly typed unmarshal instead.
	k := koanf.New(".")

	for _, path := range options.YamlFilePaths {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errorBuilder.With("path", path).Wrapf(err, "failed to load config file %s", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: options.EnvVarPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, options.EnvVarPrefix)
			key = strings.NewReplacer("__", "_", "_", ".").Replace(key)
			return strings.ToLower(key), value
		},
	}), nil)
	if err != nil {
		return nil, errorBuilder.Wrapf(err, "failed to load environment variables")
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errorBuilder.Wrapf(err, "failed to unmarshal config")
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, errorBuilder.Wrapf(err, "failed to validate config")
	}

	return &cfg, nil
}
