package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/task-go/internal/tasks"
)

// ErrInvalidFlags marks a Load failure caused by the command line itself.
// For any other Load error the flags have been parsed and fs.Args() holds
// the command.
var ErrInvalidFlags = errors.New("invalid flags")

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.task/task.toml or OS-specific config dir)
// 3. Project config file (task.toml or .task.toml in current directory)
// 4. Environment variables
// 5. CLI flags
//
// Flags are registered on fs and parsed from args before any file is read;
// callers read the remaining arguments from fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	if fs == nil {
		fs = flag.NewFlagSet("task", flag.ContinueOnError)
	}
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// Parse CLI flags first and remember the ones given explicitly.
	explicit, err := parseFlags(cfg, fs, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	// 2. Try to load from user config file
	userConfigFile := findUserConfigFile()
	if userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	projectConfigFile := findProjectConfigFile()
	if projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Explicit flags override everything
	if err := applyFlags(fs, explicit); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile validates the TOML file at path against the config schema
// and decodes it over cfg. Keys absent from the file keep their current value.
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return decodeConfig(cfg, string(data))
}

func decodeConfig(cfg *Config, data string) error {
	var raw map[string]interface{}
	if _, err := toml.Decode(data, &raw); err != nil {
		return err
	}
	if err := validateRaw(raw); err != nil {
		return err
	}
	_, err := toml.Decode(data, cfg)
	return err
}

// finalizeConfig computes derived values.
func finalizeConfig(cfg *Config) error {
	// Determine project root
	if cfg.ProjectRoot == "" {
		// Use current working directory
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	cfg.TaskFile = filepath.Join(cfg.ProjectRoot, tasks.DefaultFile)

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", cfg.LogLevel)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format %q (expected text|json|logfmt)", cfg.LogFormat)
	}

	return nil
}

// Default returns a config with built-in defaults rooted at projectRoot,
// without reading files, environment or flags.
func Default(projectRoot string) *Config {
	cfg := &Config{ProjectRoot: projectRoot}
	setDefaults(cfg)
	_ = finalizeConfig(cfg)
	return cfg
}
