package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# task configuration file
# Place in ./task.toml, ./.task.toml or ~/.task/task.toml.
# Values can be overridden by TASK_* environment variables or CLI flags.
# The task list itself is always tasks.txt in the working directory.

# Log level: debug, info, warn, error
log_level = "warn"

# Log format: text, json, logfmt
log_format = "text"

# Show timestamps and caller location in log lines
log_timestamps = false
log_caller = false

# Suggest close matches for unknown commands and missing tasks
suggestions = true
`
}
