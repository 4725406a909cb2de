package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"edm4hep2lcio/internal/convert"
	"edm4hep2lcio/internal/logging"
	"edm4hep2lcio/internal/metrics"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EDM4HEP2LCIO_"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds converter settings.
type Config struct {
	Collections      []string         `yaml:"collections"       env:"COLLECTIONS" envSeparator:","`
	RunNumber        *int32           `yaml:"run_number"        env:"RUN_NUMBER"`
	EventKey         string           `yaml:"event_key"         env:"EVENT_KEY"`
	Resolution       string           `yaml:"resolution"        env:"RESOLUTION"`
	TrackCovariance  string           `yaml:"track_covariance"  env:"TRACK_COVARIANCE"`
	VertexAlgorithms map[int32]string `yaml:"vertex_algorithms"`
	LogLevel         string           `yaml:"log_level"         env:"LOG_LEVEL"`
	LogFormat        string           `yaml:"log_format"        env:"LOG_FORMAT"`
	Output           string           `yaml:"output"            env:"OUTPUT"`
}

// LoadFile loads and parses a YAML config file from the given path and
// applies the process environment on top.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Load(data, env.ToMap(os.Environ()))
}

// Load parses YAML data, overlays environ and validates the result.
// A nil environ skips the overlay.
func Load(data []byte, environ map[string]string) (*Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if environ != nil {
		err = env.ParseWithOptions(cfg, env.Options{
			Prefix:      EnvPrefix,
			Environment: environ,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to apply environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse parses YAML data into a Config with defaults applied.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.RunNumber == nil {
		run := int32(convert.DefaultRunNumber)
		cfg.RunNumber = &run
	}

	if cfg.EventKey == "" {
		cfg.EventKey = convert.DefaultEventKey
	}

	if cfg.Resolution == "" {
		cfg.Resolution = convert.ResolveByValue.String()
	}

	if cfg.TrackCovariance == "" {
		cfg.TrackCovariance = convert.TrackCovarianceDiagonal.String()
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = FormatText
	}
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	if _, err := convert.ParseResolutionMode(c.Resolution); err != nil {
		return err
	}

	if _, err := convert.ParseTrackCovarianceMode(c.TrackCovariance); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}

	return nil
}

// Logger builds the logger described by the config.
func (c *Config) Logger(w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	if c.LogFormat == FormatJSON {
		return logging.NewJSONLogger(w, level), nil
	}

	return logging.NewTextLogger(w, level), nil
}

// Options translates the config into converter options.
func (c *Config) Options(log *logging.Logger, rec *metrics.Recorder) ([]convert.Option, error) {
	resolution, err := convert.ParseResolutionMode(c.Resolution)
	if err != nil {
		return nil, err
	}

	cov, err := convert.ParseTrackCovarianceMode(c.TrackCovariance)
	if err != nil {
		return nil, err
	}

	run := int32(convert.DefaultRunNumber)
	if c.RunNumber != nil {
		run = *c.RunNumber
	}

	return []convert.Option{
		convert.WithLogger(log),
		convert.WithMetrics(rec),
		convert.WithRunNumber(run),
		convert.WithEventKey(c.EventKey),
		convert.WithResolution(resolution),
		convert.WithTrackCovariance(cov),
		convert.WithVertexAlgorithms(c.VertexAlgorithms),
	}, nil
}

