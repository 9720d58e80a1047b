package ruleconf

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// RunConfig holds the settings of a CLI run. Values come from flags, the
// VOXCA_* environment and an optional YAML config file, in that order of
// precedence.
type RunConfig struct {
	Program     string            `mapstructure:"program"`
	Preset      string            `mapstructure:"preset"`
	Seed        int64             `mapstructure:"seed"`
	Workers     int               `mapstructure:"workers"`
	LogLevel    string            `mapstructure:"log-level"`
	LogFormat   string            `mapstructure:"log-format"`
	MetricsFile string            `mapstructure:"metrics-file"`
	Print       bool              `mapstructure:"print"`
	Set         map[string]string `mapstructure:"set"`
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("VOXCA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("program", "")
	v.SetDefault("preset", "")
	v.SetDefault("seed", 0)
	v.SetDefault("workers", 1)
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")
	v.SetDefault("metrics-file", "")
	v.SetDefault("print", false)
	return v
}

// LoadRunConfig reads configFile (when non-empty) into v and decodes the
// merged settings.
func LoadRunConfig(v *viper.Viper, configFile string) (RunConfig, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return RunConfig{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	var rc RunConfig
	if err := v.Unmarshal(&rc); err != nil {
		return RunConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if rc.Program == "" && rc.Preset == "" {
		return RunConfig{}, fmt.Errorf("either program or preset must be set")
	}
	if rc.Program != "" && rc.Preset != "" {
		return RunConfig{}, fmt.Errorf("program and preset are mutually exclusive")
	}
	if rc.Workers < 1 {
		rc.Workers = 1
	}
	return rc, nil
}

// Logger builds the slog logger described by the config.
func (rc RunConfig) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(rc.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", rc.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch rc.LogFormat {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", rc.LogFormat)
	}
}
