package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/JiepengTan/ja2cp"
)

// DefaultPath is read when --config is not given
const DefaultPath = "ja2cp.yaml"

// Config holds all ja2cp configuration.
type Config struct {
	// Content Patcher format version written to content.json
	Format string `yaml:"format"`

	// Prefix of every patch LogName; empty means the source manifest's Name
	LogPrefix string `yaml:"log_prefix"`

	// Vanilla object index (raw Data/Objects.json or a saved index)
	VanillaIndex string `yaml:"vanilla_index"`

	// Per-mode naming, keyed by mode name
	Modes map[string]ModeConfig `yaml:"modes"`

	Logging LoggingConfig `yaml:"logging"`
}

// ModeConfig names the outputs of one conversion mode.
type ModeConfig struct {
	Label       string `yaml:"label"`
	Subdir      string `yaml:"subdir"`
	ObjectSheet string `yaml:"object_sheet"`
	ExtraSheet  string `yaml:"extra_sheet"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	modes := make(map[string]ModeConfig, len(ja2cp.Modes))
	for _, m := range ja2cp.Modes {
		s := ja2cp.DefaultModeSettings(m)
		modes[string(m)] = ModeConfig{
			Label:       s.Label,
			Subdir:      s.Subdir,
			ObjectSheet: s.ObjectSheet,
			ExtraSheet:  s.ExtraSheet,
		}
	}
	return &Config{
		Format: ja2cp.DefaultFormat,
		Modes:  modes,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JA2CP_VANILLA_INDEX"); v != "" {
		c.VanillaIndex = v
	}
	if v := os.Getenv("JA2CP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the converter cannot use.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Format) == "" {
		errs = append(errs, errors.New("format is empty"))
	}
	for name := range c.Modes {
		if _, err := ja2cp.ParseMode(name); err != nil {
			errs = append(errs, fmt.Errorf("modes: %w", err))
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.encoding: unknown encoding %q", c.Logging.Encoding))
	}
	return errors.Join(errs...)
}

// ModeSettings returns the naming for mode, falling back to the defaults
// for anything left empty.
func (c *Config) ModeSettings(mode ja2cp.Mode) ja2cp.ModeSettings {
	mc := c.Modes[string(mode)]
	return ja2cp.ModeSettings{
		Label:       mc.Label,
		Subdir:      mc.Subdir,
		ObjectSheet: mc.ObjectSheet,
		ExtraSheet:  mc.ExtraSheet,
	}
}

// BuildLogger creates the zap logger described by the logging section.
// verbose forces debug level.
func (c *Config) BuildLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = c.Logging.Encoding
	if zc.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level := zapcore.InfoLevel
	if c.Logging.Level != "" {
		parsed, err := zapcore.ParseLevel(c.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = !verbose

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
