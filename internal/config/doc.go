// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.task/task.toml or OS-specific config directory)
// 3. Project config file (task.toml or .task.toml in the working directory)
// 4. Environment variables (TASK_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// Config files are checked against an embedded JSON Schema before they are
// decoded, so a misspelled key or an unknown log level is reported instead of
// silently ignored.
//
// The task file itself is not configurable: it is always tasks.txt in the
// working directory.
package config
