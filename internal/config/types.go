package config

// Config holds fixgen configuration.
type Config struct {
	Input       string `json:"input"        yaml:"input"`        // CSV table path, "-" for stdin
	DefaultMode string `json:"default_mode" yaml:"default_mode"` // mode used when none is given
	LogLevel    string `json:"log_level"    yaml:"log_level"`    // "debug" | "info" | "warn" | "error"

	// internal: file path used for Save()
	path string
	// internal: --input / FIXGEN_INPUT value, never saved
	inputOverride string
}
