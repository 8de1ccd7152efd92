package config

// Default values.
const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultSuggestions = true
)

// Config holds the full configuration for task.
type Config struct {
	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Suggestions enables "did you mean" hints for unknown commands and
	// missing tasks.
	Suggestions bool `toml:"suggestions"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`

	// TaskFile is tasks.txt under ProjectRoot (computed)
	TaskFile string `toml:"-"`
}
