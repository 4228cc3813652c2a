// Package config loads voxtrace settings from a YAML file with VOXKIT_* environment
// overrides applied on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/zeusync/voxkit/internal/core/observability/log"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "VOXKIT_"

type Config struct {
	Log   LogConfig   `yaml:"log" envPrefix:"LOG_"`
	Trace TraceConfig `yaml:"trace" envPrefix:"TRACE_"`
}

type LogConfig struct {
	Level    string   `yaml:"level" env:"LEVEL"`
	Encoding string   `yaml:"encoding" env:"ENCODING"`
	Output   []string `yaml:"output" env:"OUTPUT" envSeparator:","`
}

type TraceConfig struct {
	// Workers bounds how many jobs are traced at once.
	Workers int `yaml:"workers" env:"WORKERS"`
	// MaxVoxels caps the path length of a single job.
	MaxVoxels int `yaml:"max_voxels" env:"MAX_VOXELS"`
	// StreamCapacity is the initial buffer size of pooled frame streams.
	StreamCapacity int `yaml:"stream_capacity" env:"STREAM_CAPACITY"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
			Output:   []string{"stderr"},
		},
		Trace: TraceConfig{
			Workers:        4,
			MaxVoxels:      1 << 16,
			StreamCapacity: 256,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. An empty
// path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		// an empty file keeps the defaults
		if err = yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overwrites the fields of target whose VOXKIT_* variable is set.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error

	if _, ok := log.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.encoding: must be json or console, got %q", c.Log.Encoding))
	}
	if c.Trace.Workers < 1 {
		errs = append(errs, fmt.Errorf("trace.workers: must be at least 1, got %d", c.Trace.Workers))
	}
	if c.Trace.MaxVoxels < 1 {
		errs = append(errs, fmt.Errorf("trace.max_voxels: must be at least 1, got %d", c.Trace.MaxVoxels))
	}
	if c.Trace.StreamCapacity < 0 {
		errs = append(errs, fmt.Errorf("trace.stream_capacity: must not be negative, got %d", c.Trace.StreamCapacity))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoggerConfig converts the log section for log.NewWithConfig.
func (c Config) LoggerConfig() log.Config {
	level, _ := log.ParseLevel(c.Log.Level)
	return log.Config{
		Level:       level,
		Encoding:    c.Log.Encoding,
		OutputPaths: c.Log.Output,
	}
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
