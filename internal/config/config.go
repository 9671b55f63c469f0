package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is the config file looked up when no --config is given.
	DefaultPath = "fixgen.yaml"
	// DefaultInput is the table path used by the fixture scripts.
	DefaultInput = "analysis/input.csv"

	defaultLogLevel = "warn"

	// EnvConfig names the config file, overriding DefaultPath.
	EnvConfig = "FIXGEN_CONFIG"
	// EnvInput overrides the input path from the config file.
	EnvInput = "FIXGEN_INPUT"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Load reads config from path (or returns defaults when the file does not
// exist). ${VAR} references are expanded before parsing. Files ending in
// .json are parsed as JSON, anything else as YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		expanded := []byte(os.ExpandEnv(string(data)))
		if isJSON(path) {
			err = json.Unmarshal(expanded, cfg)
		} else {
			err = yaml.Unmarshal(expanded, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.OverrideInput(os.Getenv(EnvInput))
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks field values that have a fixed set of options.
func (c *Config) Validate() error {
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	var (
		data []byte
		err  error
	)
	if isJSON(c.path) {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}

// OverrideInput sets the table path for this run only. Save keeps writing
// the file's own input. An empty path leaves the current override.
func (c *Config) OverrideInput(path string) {
	if path != "" {
		c.inputOverride = path
	}
}

// TableInput returns the table path to read: the override when set,
// otherwise Input.
func (c *Config) TableInput() string {
	if c.inputOverride != "" {
		return c.inputOverride
	}
	return c.Input
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.path
}

// Level returns the slog level for LogLevel.
func (c *Config) Level() slog.Level {
	return logLevels[strings.ToLower(c.LogLevel)]
}

// --- helpers ---

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
