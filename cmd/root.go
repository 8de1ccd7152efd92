// Package cmd implements the CLI command structure for task.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/task-go/internal/command"
	"github.com/nibzard/task-go/internal/config"
	"github.com/nibzard/task-go/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Main runs the CLI, reports any fatal error on stderr and returns the
// process exit code.
func Main(args []string, stdout, stderr io.Writer) int {
	err := Execute(args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps the result of Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// Execute parses global flags and runs one command.
// Task output goes to stdout; help for a bad command line, warnings and logs
// go to stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("task", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")
	printConfig := fs.Bool("print-config", false, "Print an example task.toml")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		informational := *help || *showVersion || *printConfig || fs.NArg() == 0
		if errors.Is(err, config.ErrInvalidFlags) || !informational {
			return fmt.Errorf("loading config: %w", err)
		}
		// Help, version and the example config do not depend on a valid config.
		fmt.Fprintf(stderr, "Warning: loading config: %v\n", err)
		cfg = nil
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}
	if *printConfig {
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}
	if cfg == nil {
		printUsage(fs, stdout)
		return nil
	}

	logger := logging.New(stderr, logging.OptionsFromConfig(cfg))
	return dispatch(cfg, fs, fs.Args(), stdout, stderr, logger)
}

// dispatch parses the command tokens and runs the command.
func dispatch(cfg *config.Config, fs *flag.FlagSet, args []string, stdout, stderr io.Writer, logger *log.Logger) error {
	c, err := command.Parse(args)
	if err != nil {
		var unknown *command.UnknownCommandError
		switch {
		case errors.Is(err, command.ErrNoCommand):
			printUsage(fs, stdout)
			return nil
		case errors.As(err, &unknown):
			if cfg.Suggestions {
				unknown.Suggest()
			}
			printUsage(fs, stderr)
			return unknown
		default:
			return err
		}
	}

	d := command.NewDispatcher(cfg, stdout, logger)
	res, err := d.Dispatch(c)
	if err != nil {
		return err
	}
	logger.Debug("command finished", "command", res.Command, "tasks", res.Tasks, "warnings", len(res.Warnings))
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "task version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Task - a flat-file task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  task [options] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <description>     Add a task")
	fmt.Fprintln(w, "  list                  Display the task list")
	fmt.Fprintln(w, "  remove <description>  Remove the first task matching the description")
	fmt.Fprintln(w, "  sort                  Sort tasks alphabetically")
	fmt.Fprintln(w, "  init                  Create an empty tasks.txt")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tasks are stored one per line in tasks.txt in the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
