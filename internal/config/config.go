package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Config holds all application configuration.
type Config struct {
	Shell   ShellConfig   `yaml:"shell" toml:"shell"`
	Files   FilesConfig   `yaml:"files" toml:"files"`
	Logging LogConfig     `yaml:"logging" toml:"logging"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
}

// ShellConfig holds REPL settings.
type ShellConfig struct {
	DefaultUsername string `envconfig:"FM_DEFAULT_USERNAME" yaml:"default_username" toml:"default_username"`
	StartDir        string `envconfig:"FM_START_DIR" yaml:"start_dir" toml:"start_dir"`
	Prompt          string `envconfig:"FM_PROMPT" yaml:"prompt" toml:"prompt"`
}

// FilesConfig holds file operation settings.
type FilesConfig struct {
	HashAlgorithm   string `envconfig:"FM_HASH" yaml:"hash" toml:"hash"`
	Codec           string `envconfig:"FM_CODEC" yaml:"codec" toml:"codec"`
	ListConcurrency int    `envconfig:"FM_LS_CONCURRENCY" yaml:"ls_concurrency" toml:"ls_concurrency"`
	BufferSize      int    `envconfig:"FM_BUFFER_SIZE" yaml:"buffer_size" toml:"buffer_size"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FM_LOG_LEVEL" yaml:"level" toml:"level"`
	Development bool   `envconfig:"FM_LOG_DEV" yaml:"development" toml:"development"`
	Output      string `envconfig:"FM_LOG_OUTPUT" yaml:"output" toml:"output"`
}

// MetricsConfig holds the Prometheus listener address. Empty disables it.
type MetricsConfig struct {
	Addr string `envconfig:"FM_METRICS_ADDR" yaml:"addr" toml:"addr"`
}

// OutputConfig holds terminal rendering settings.
type OutputConfig struct {
	Color bool `envconfig:"FM_COLOR" yaml:"color" toml:"color"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			DefaultUsername: "Username",
		},
		Files: FilesConfig{
			HashAlgorithm:   string(utils.SHA256),
			Codec:           "gzip",
			ListConcurrency: 16,
			BufferSize:      64 * 1024,
		},
		Logging: LogConfig{
			Level:  "warn",
			Output: "stderr",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load builds the configuration from defaults, then the optional file at
// path, then FM_* environment variables. Fields carry no envconfig defaults
// so values from the file survive unset variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("FM_CONFIG")
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML or TOML file at path onto cfg. Keys missing
// from the file keep their current value.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks values that cannot be expressed as struct tags.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Shell.DefaultUsername) == "" {
		return errors.New("default username cannot be empty")
	}
	if _, err := utils.ParseAlgorithm(c.Files.HashAlgorithm); err != nil {
		return err
	}
	if c.Files.ListConcurrency <= 0 {
		return fmt.Errorf("ls concurrency must be positive, got %d", c.Files.ListConcurrency)
	}
	if c.Files.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", c.Files.BufferSize)
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return nil
}
