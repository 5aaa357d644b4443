package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SURVEYSHELL_"

// Config is the runtime configuration of the shell.
type Config struct {
	Addr         string           `mapstructure:"addr" yaml:"addr"`
	StaticDir    string           `mapstructure:"static_dir" yaml:"static_dir"` // empty serves the embedded assets
	LogLevel     string           `mapstructure:"log_level" yaml:"log_level"`
	MaxInputSize int              `mapstructure:"max_input_size" yaml:"max_input_size"`
	Navigation   NavigationConfig `mapstructure:"navigation" yaml:"navigation"`
	Redis        RedisConfig      `mapstructure:"redis" yaml:"redis"`
}

// NavigationConfig seeds the guard's state.
type NavigationConfig struct {
	// Initialized starts the shell past the survey gate.
	Initialized bool `mapstructure:"initialized" yaml:"initialized"`
}

// RedisConfig enables the source cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		LogLevel:     "info",
		MaxInputSize: 4096,
		Redis: RedisConfig{
			TTL:    5 * time.Minute,
			Prefix: "surveyshell:source:",
		},
	}
}

// envKeys maps environment variable suffixes to config keys.
var envKeys = map[string][]string{
	"ADDR":           {"addr"},
	"STATIC_DIR":     {"static_dir"},
	"LOG_LEVEL":      {"log_level"},
	"MAX_INPUT_SIZE": {"max_input_size"},
	"INITIALIZED":    {"navigation", "initialized"},
	"REDIS_ADDR":     {"redis", "addr"},
	"REDIS_PASSWORD": {"redis", "password"},
	"REDIS_DB":       {"redis", "db"},
	"REDIS_TTL":      {"redis", "ttl"},
	"REDIS_PREFIX":   {"redis", "prefix"},
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then SURVEYSHELL_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if err := decode(raw, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	if err := decode(envOverrides(), cfg); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOverrides() map[string]any {
	out := make(map[string]any)
	for suffix, keys := range envKeys {
		val, ok := os.LookupEnv(EnvPrefix + suffix)
		if !ok {
			continue
		}
		node := out
		for _, k := range keys[:len(keys)-1] {
			child, ok := node[k].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[k] = child
			}
			node = child
		}
		node[keys[len(keys)-1]] = val
	}
	return out
}

func decode(raw map[string]any, cfg *Config) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.MaxInputSize <= 0 {
		errs = append(errs, fmt.Errorf("max_input_size must be positive, got %d", c.MaxInputSize))
	}
	if c.Redis.TTL < 0 {
		errs = append(errs, fmt.Errorf("redis.ttl must not be negative, got %s", c.Redis.TTL))
	}
	return errors.Join(errs...)
}
