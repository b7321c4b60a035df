package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Output        OutputConfig        `yaml:"output"`
	Input         InputConfig         `yaml:"input"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// OutputConfig holds the defaults used to resolve the ranking table destination.
type OutputConfig struct {
	DefaultPath      string   `yaml:"default_path"`
	DefaultFilename  string   `yaml:"default_filename"`
	DefaultExtension string   `yaml:"default_extension"`
	ValidExtensions  []string `yaml:"valid_extensions"`
}

// InputConfig holds input file settings.
type InputConfig struct {
	ValidExtensions []string `yaml:"valid_extensions"`
	SkipInvalid     bool     `yaml:"skip_invalid"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"` // text|json
	MetricsTextfile string `yaml:"metrics_textfile"`
	Environment     string `yaml:"environment"`
	ServiceName     string `yaml:"service_name"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultPath:      "output",
			DefaultFilename:  "ranking_table",
			DefaultExtension: ".txt",
			ValidExtensions:  []string{".txt", ".csv", ".xlsx", ".png"},
		},
		Input: InputConfig{
			ValidExtensions: []string{".txt", ".csv", ".xlsx"},
		},
		Observability: ObservabilityConfig{
			LogLevel:    "error",
			LogFormat:   "text",
			Environment: "local",
			ServiceName: "league-ranker",
		},
	}
}

// LoadConfig loads the configuration from a YAML file. A missing file yields the
// defaults; values set in the file replace the defaults, and environment variables
// override both.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if v := os.Getenv("LEAGUE_RANKER_OUTPUT_PATH"); v != "" {
		cfg.Output.DefaultPath = v
	}
	if v := os.Getenv("LEAGUE_RANKER_OUTPUT_FILENAME"); v != "" {
		cfg.Output.DefaultFilename = v
	}
	if v := os.Getenv("LEAGUE_RANKER_OUTPUT_EXTENSION"); v != "" {
		cfg.Output.DefaultExtension = v
	}
	if v := os.Getenv("LEAGUE_RANKER_SKIP_INVALID"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LEAGUE_RANKER_SKIP_INVALID value: %v", err)
		}
		cfg.Input.SkipInvalid = b
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
	if v := os.Getenv("METRICS_TEXTFILE"); v != "" {
		cfg.Observability.MetricsTextfile = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the output defaults are usable.
func (c *Config) Validate() error {
	if len(c.Output.ValidExtensions) == 0 {
		return errors.New("output.valid_extensions must not be empty")
	}
	if len(c.Input.ValidExtensions) == 0 {
		return errors.New("input.valid_extensions must not be empty")
	}
	if !strings.HasPrefix(c.Output.DefaultExtension, ".") {
		return fmt.Errorf("output.default_extension %q must start with '.'", c.Output.DefaultExtension)
	}
	if !slices.Contains(c.Output.ValidExtensions, c.Output.DefaultExtension) {
		return fmt.Errorf("output.default_extension %q is not one of %v", c.Output.DefaultExtension, c.Output.ValidExtensions)
	}
	if c.Output.DefaultFilename == "" {
		return errors.New("output.default_filename must not be empty")
	}
	return nil
}
