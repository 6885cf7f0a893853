// Package config resolves the converter's fixed paths, optionally
// overridden by a menuconv.yaml file in the working directory.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const (
	DefaultInputPath  = "./input/Restaurant Menu Nutrients.xlsx"
	DefaultOutputPath = "./output/results.json"
	DefaultLogPath    = "./logs/log.log"
	DefaultIndent     = "    "
	DefaultLogLevel   = "info"
)

type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type InputConfig struct {
	Path string `mapstructure:"path"`
}

type OutputConfig struct {
	Path   string `mapstructure:"path"`
	Indent string `mapstructure:"indent"`
}

type LoggingConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Load reads menuconv.yaml from dir if present. A missing file yields the defaults.
// Environment variables are not consulted.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("menuconv")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", DefaultInputPath)
	v.SetDefault("output.path", DefaultOutputPath)
	v.SetDefault("output.indent", DefaultIndent)
	v.SetDefault("logging.path", DefaultLogPath)
	v.SetDefault("logging.level", DefaultLogLevel)
}

func validate(cfg *Config) error {
	if cfg.Input.Path == "" {
		return errors.New("input.path is empty")
	}
	if cfg.Output.Path == "" {
		return errors.New("output.path is empty")
	}
	if cfg.Input.Path == cfg.Output.Path {
		return fmt.Errorf("input and output both point at %s", cfg.Input.Path)
	}
	return nil
}
