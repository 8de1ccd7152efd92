package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// projectConfigNames are tried in order in the working directory, next to
// tasks.txt.
var projectConfigNames = []string{"task.toml", ".task.toml"}

// findProjectConfigFile returns the first project config file present in the
// working directory, or "".
func findProjectConfigFile() string {
	for _, name := range projectConfigNames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// findUserConfigFile returns the per-user config file, or "".
// A ~/.task/task.toml wins over task/task.toml under the platform config
// directory.
func findUserConfigFile() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".task", "task.toml"))
	}
	if dir := osUserConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "task", "task.toml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// osUserConfigDir is the platform config directory: APPDATA on Windows,
// Library/Application Support on macOS and XDG_CONFIG_HOME (default
// ~/.config) elsewhere. It is "" when none can be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// setDefaults resets cfg to the built-in values.
func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.Suggestions = DefaultSuggestions
}
