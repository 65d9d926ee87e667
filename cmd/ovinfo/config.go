package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the ovinfo settings after merging flags, OVINFO_* environment
// variables and the optional config file, in that order of precedence.
type Config struct {
	Lib        string   `mapstructure:"lib"`
	Config     string   `mapstructure:"config"`
	Model      string   `mapstructure:"model"`
	Weights    string   `mapstructure:"weights"`
	Device     string   `mapstructure:"device"`
	LogLevel   string   `mapstructure:"log-level"`
	Properties []string `mapstructure:"properties"`
	Format     string   `mapstructure:"format"`
}

const envPrefix = "OVINFO"

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ovinfo", pflag.ContinueOnError)
	fs.String("lib", "", "path to the OpenVINO C library (default: $OPENVINO_LIB_PATH or the system library)")
	fs.String("config", "", "path to a plugins XML configuration file")
	fs.StringP("model", "m", "", "model file to read and compile")
	fs.String("weights", "", "weights file for IR models (default: same stem as the model)")
	fs.StringP("device", "d", "", "device to compile the model for (default: AUTO)")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.StringSlice("properties", []string{"FULL_DEVICE_NAME"}, "device properties to print")
	fs.StringP("format", "o", "text", "output format: text, json or yaml")
	fs.String("config-file", "", "YAML, TOML or JSON file with default settings")
	return fs
}

// loadConfig parses args and resolves the final configuration.
// getenv is used for the OPENVINO_LIB_PATH fallback.
func loadConfig(args []string, getenv func(string) string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := v.GetString("config-file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Lib == "" {
		cfg.Lib = getenv("OPENVINO_LIB_PATH")
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return &cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
