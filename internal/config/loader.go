package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Overrides are highest-priority values from CLI flags, keyed by config key.
	Overrides map[string]any
}

type envBinding struct {
	Env  string
	Key  string
	Kind string
}

var envBindings = []envBinding{
	{"SCRUBBY_STABLE_PLACEHOLDERS", "stable_placeholders", "bool"},
	{"SCRUBBY_FORMAT", "format", "string"},
	{"SCRUBBY_INTERVAL_MS", "interval_ms", "int"},
	{"SCRUBBY_ENTROPY_THRESHOLD", "entropy_threshold", "float"},
	{"SCRUBBY_LOG_LEVEL", "log_level", "string"},
}

// Load returns the effective configuration after applying precedence:
// defaults < file < env (SCRUBBY_*) < flags.
func Load(opts LoadOptions) (Config, error) {
	path, err := ResolvePath(opts.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	if err := mergeConfigFile(v, path, opts.ConfigPath != ""); err != nil {
		return Config{}, err
	}
	if err := applyEnvOverrides(v); err != nil {
		return Config{}, err
	}
	for k, val := range opts.Overrides {
		v.Set(k, val)
	}
	return decode(v, path)
}

// LoadFile returns the defaults merged with the file at path only, ignoring
// env and flags. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := mergeConfigFile(v, path, false); err != nil {
		return Config{}, err
	}
	return decode(v, path)
}

func decode(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if err := v.UnmarshalExact(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("stable_placeholders", def.StablePlaceholders)
	v.SetDefault("json_report", def.JSONReport)
	v.SetDefault("format", def.Format)
	v.SetDefault("interval_ms", def.IntervalMs)
	v.SetDefault("entropy_threshold", def.EntropyThreshold)
	v.SetDefault("redact_paths", def.RedactPaths)
	v.SetDefault("log_level", def.LogLevel)
}

// mergeConfigFile merges the TOML config file. A missing file is only an
// error when the path was given explicitly.
func mergeConfigFile(v *viper.Viper, path string, explicit bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("merge config %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(v *viper.Viper) error {
	for _, binding := range envBindings {
		val := os.Getenv(binding.Env)
		if val == "" {
			continue
		}
		parsed, err := parseValueByKind(val, binding.Kind)
		if err != nil {
			return fmt.Errorf("env %s: %w", binding.Env, err)
		}
		v.Set(binding.Key, parsed)
	}
	return nil
}

func parseValueByKind(raw, kind string) (any, error) {
	switch kind {
	case "bool":
		return strconv.ParseBool(raw)
	case "int":
		return strconv.Atoi(raw)
	case "float":
		return strconv.ParseFloat(raw, 64)
	default:
		return raw, nil
	}
}

// Watch follows the config file named by opts and calls onChange with the
// reloaded configuration, or with the load error, after every write. It
// reports false when there is no file to watch. The watch lasts for the
// life of the process.
func Watch(opts LoadOptions, onChange func(Config, error)) (bool, error) {
	path, err := ResolvePath(opts.ConfigPath)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat config %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(Load(LoadOptions{ConfigPath: path, Overrides: opts.Overrides}))
	})
	v.WatchConfig()
	return true, nil
}
