// Package config tests configuration loading.
package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME, XDG_CONFIG_HOME and the working directory at fresh
// temp dirs and clears TASK_* variables. It returns the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range []string{"TASK_LOG_LEVEL", "TASK_LOG_FORMAT", "TASK_LOG_TIMESTAMPS", "TASK_LOG_CALLER", "TASK_SUGGESTIONS"} {
		t.Setenv(name, "")
	}
	work := t.TempDir()
	chdir(t, work)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	return wd
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("task", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.Suggestions != DefaultSuggestions {
		t.Errorf("Suggestions: got %v, want %v", cfg.Suggestions, DefaultSuggestions)
	}
}

func TestDefault(t *testing.T) {
	root := t.TempDir()
	cfg := Default(root)
	if cfg.ProjectRoot != root {
		t.Errorf("ProjectRoot: got %q, want %q", cfg.ProjectRoot, root)
	}
	if want := filepath.Join(root, "tasks.txt"); cfg.TaskFile != want {
		t.Errorf("TaskFile: got %q, want %q", cfg.TaskFile, want)
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	wd := isolate(t)

	fs := newFlagSet()
	cfg, err := Load(fs, []string{"add", "buy", "milk"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ProjectRoot != wd {
		t.Errorf("ProjectRoot: got %q, want %q", cfg.ProjectRoot, wd)
	}
	if want := filepath.Join(wd, "tasks.txt"); cfg.TaskFile != want {
		t.Errorf("TaskFile: got %q, want %q", cfg.TaskFile, want)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if got, want := fs.Args(), []string{"add", "buy", "milk"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Args: got %q, want %q", got, want)
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Run("project file", func(t *testing.T) {
		wd := isolate(t)
		writeConfig(t, filepath.Join(wd, "task.toml"), "log_level = \"debug\"\nsuggestions = false\n")

		cfg, err := Load(newFlagSet(), nil)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
		}
		if cfg.Suggestions {
			t.Error("Suggestions: got true, want false")
		}
		if cfg.LogFormat != DefaultLogFormat {
			t.Errorf("LogFormat: got %q, want default", cfg.LogFormat)
		}
	})

	t.Run("hidden project file", func(t *testing.T) {
		wd := isolate(t)
		writeConfig(t, filepath.Join(wd, ".task.toml"), "log_format = \"json\"\n")

		cfg, err := Load(newFlagSet(), nil)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.LogFormat != "json" {
			t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
		}
	})

	t.Run("user file then project file", func(t *testing.T) {
		wd := isolate(t)
		home := os.Getenv("HOME")
		writeConfig(t, filepath.Join(home, ".task", "task.toml"), "log_level = \"info\"\nlog_format = \"logfmt\"\n")
		writeConfig(t, filepath.Join(wd, "task.toml"), "log_level = \"error\"\n")

		cfg, err := Load(newFlagSet(), nil)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.LogLevel != "error" {
			t.Errorf("LogLevel: got %q, want error (project overrides user)", cfg.LogLevel)
		}
		if cfg.LogFormat != "logfmt" {
			t.Errorf("LogFormat: got %q, want logfmt (from user file)", cfg.LogFormat)
		}
	})

	t.Run("xdg user file", func(t *testing.T) {
		isolate(t)
		writeConfig(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "task", "task.toml"), "log_caller = true\n")
		if cfg, err := Load(newFlagSet(), nil); err != nil {
			t.Fatalf("Load() error = %v", err)
		} else if osUserConfigDir() == os.Getenv("XDG_CONFIG_HOME") && !cfg.LogCaller {
			t.Error("LogCaller: got false, want true")
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		wd := isolate(t)
		writeConfig(t, filepath.Join(wd, "task.toml"), "log_level = \"debug\"\n")
		t.Setenv("TASK_LOG_LEVEL", "error")
		t.Setenv("TASK_LOG_TIMESTAMPS", "yes")
		t.Setenv("TASK_SUGGESTIONS", "0")

		cfg, err := Load(newFlagSet(), nil)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.LogLevel != "error" {
			t.Errorf("LogLevel: got %q, want error", cfg.LogLevel)
		}
		if !cfg.LogTimestamps {
			t.Error("LogTimestamps: got false, want true")
		}
		if cfg.Suggestions {
			t.Error("Suggestions: got true, want false")
		}
	})

	t.Run("flags override env", func(t *testing.T) {
		isolate(t)
		t.Setenv("TASK_LOG_LEVEL", "error")

		fs := newFlagSet()
		cfg, err := Load(fs, []string{"-log-level", "debug", "-suggest=false", "list"})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
		}
		if cfg.Suggestions {
			t.Error("Suggestions: got true, want false")
		}
		if got := fs.Args(); !reflect.DeepEqual(got, []string{"list"}) {
			t.Errorf("Args: got %q, want [list]", got)
		}
	})
}

func TestLoadFlagsOverrideProjectFile(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, filepath.Join(wd, "task.toml"), "log_level = \"error\"\nsuggestions = false\n")

	cfg, err := Load(newFlagSet(), []string{"-log-level=info", "-suggest", "sort"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if !cfg.Suggestions {
		t.Error("Suggestions: got false, want true")
	}
}

func TestLoadFileErrorKeepsArgs(t *testing.T) {
	wd := isolate(t)
	writeConfig(t, filepath.Join(wd, "task.toml"), "colour = 1\n")

	fs := newFlagSet()
	_, err := Load(fs, []string{"-log-level", "debug", "list", "x"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrInvalidFlags) {
		t.Errorf("file error %v reported as ErrInvalidFlags", err)
	}
	if got := fs.Args(); !reflect.DeepEqual(got, []string{"list", "x"}) {
		t.Errorf("Args: got %q, want [list x]", got)
	}
}

func TestLoadUnknownFlagIsInvalidFlags(t *testing.T) {
	isolate(t)
	_, err := Load(newFlagSet(), []string{"-nope"})
	if !errors.Is(err, ErrInvalidFlags) {
		t.Errorf("error = %v, want ErrInvalidFlags", err)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     string
		args    []string
		wantSub string
	}{
		{name: "unknown key", file: "lgo_level = \"debug\"\n", wantSub: "lgo_level"},
		{name: "bad enum", file: "log_level = \"loud\"\n", wantSub: "log_level"},
		{name: "wrong type", file: "suggestions = \"yes\"\n", wantSub: "suggestions"},
		{name: "bad toml", file: "log_level = \n", wantSub: "task.toml"},
		{name: "bad env level", env: "loud", wantSub: "invalid log level"},
		{name: "bad flag format", args: []string{"-log-format", "xml"}, wantSub: "invalid log format"},
		{name: "unknown flag", args: []string{"-nope"}, wantSub: "invalid flags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wd := isolate(t)
			if tt.file != "" {
				writeConfig(t, filepath.Join(wd, "task.toml"), tt.file)
			}
			if tt.env != "" {
				t.Setenv("TASK_LOG_LEVEL", tt.env)
			}

			_, err := Load(newFlagSet(), tt.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestExampleConfigIsValid(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	if err := decodeConfig(cfg, ExampleConfig()); err != nil {
		t.Fatalf("example config rejected: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" || !cfg.Suggestions {
		t.Errorf("example config decoded to %+v", cfg)
	}
}

func TestSchemaIsJSON(t *testing.T) {
	if !strings.Contains(configSchemaJSON, "additionalProperties") {
		t.Error("schema should reject unknown keys")
	}
	if _, err := compiledSchema(); err != nil {
		t.Fatalf("compiledSchema() error = %v", err)
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"#":          "",
		"/log_level": "log_level",
		"#/a/0/b":    "a[0].b",
		"/a~1b/c~0d": "a/b.c~d",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestConfigFileLookup(t *testing.T) {
	wd := isolate(t)
	home := os.Getenv("HOME")

	if got := findUserConfigFile(); got != "" {
		t.Errorf("findUserConfigFile() = %q, want none", got)
	}
	if got := findProjectConfigFile(); got != "" {
		t.Errorf("findProjectConfigFile() = %q, want none", got)
	}

	if dir := osUserConfigDir(); dir != "" {
		platform := filepath.Join(dir, "task", "task.toml")
		writeConfig(t, platform, "log_caller = true\n")
		if got := findUserConfigFile(); got != platform {
			t.Errorf("findUserConfigFile() = %q, want %q", got, platform)
		}
	}
	dotTask := filepath.Join(home, ".task", "task.toml")
	writeConfig(t, dotTask, "log_caller = true\n")
	if got := findUserConfigFile(); got != dotTask {
		t.Errorf("findUserConfigFile() = %q, want %q", got, dotTask)
	}

	writeConfig(t, filepath.Join(wd, ".task.toml"), "")
	if got := findProjectConfigFile(); got != ".task.toml" {
		t.Errorf("findProjectConfigFile() = %q, want .task.toml", got)
	}
	writeConfig(t, filepath.Join(wd, "task.toml"), "")
	if got := findProjectConfigFile(); got != "task.toml" {
		t.Errorf("findProjectConfigFile() = %q, want task.toml", got)
	}
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
