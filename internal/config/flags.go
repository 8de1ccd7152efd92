package config

import "flag"

// parseFlags defines and parses global CLI flags into cfg.
// Flag parsing stops at the first non-flag argument, which is the command.
// It returns the flags set on the command line with their values.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) (map[string]string, error) {
	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	// Hints
	fs.BoolVar(&cfg.Suggestions, "suggest", cfg.Suggestions, "Suggest close matches for unknown commands and tasks")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	explicit := make(map[string]string)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = f.Value.String()
	})
	return explicit, nil
}

// applyFlags restores explicitly given flag values after config files and
// the environment have been applied.
func applyFlags(fs *flag.FlagSet, explicit map[string]string) error {
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
