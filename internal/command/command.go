// Package command parses CLI tokens into commands and runs them against the
// task file.
//
// Every command is one load, at most one edit, and at most one save. Storage
// errors stop the command and are returned to the caller; tasks that cannot
// be found by remove are reported as warnings and do not stop it.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Command is one of Add, List, Remove, Sort or Init.
type Command interface {
	// Name returns the CLI token for the command.
	Name() string
	isCommand()
}

// Add appends descriptions to the task file.
type Add struct {
	Descriptions []string
}

// List prints every task.
type List struct{}

// Remove deletes the first matching task for each description.
type Remove struct {
	Descriptions []string
}

// Sort orders the task file ascending.
type Sort struct{}

// Init creates an empty task file.
type Init struct{}

func (Add) Name() string    { return "add" }
func (List) Name() string   { return "list" }
func (Remove) Name() string { return "remove" }
func (Sort) Name() string   { return "sort" }
func (Init) Name() string   { return "init" }

func (Add) isCommand()    {}
func (List) isCommand()   {}
func (Remove) isCommand() {}
func (Sort) isCommand()   {}
func (Init) isCommand()   {}

// Names lists the recognized command tokens in help order.
var Names = []string{"add", "list", "remove", "sort", "init"}

// ErrNoCommand is returned by Parse when no command token was given.
var ErrNoCommand = errors.New("no command given")

// UnknownCommandError reports an unrecognized command token.
type UnknownCommandError struct {
	Name string
	// Suggestion is the closest known command, if any.
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// Parse turns CLI tokens into a Command. The words after add and remove are
// joined by single spaces into one description. Extra words after list, sort
// and init are ignored.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, ErrNoCommand
	}

	name, rest := args[0], args[1:]
	switch name {
	case "add":
		return Add{Descriptions: []string{strings.Join(rest, " ")}}, nil
	case "list":
		return List{}, nil
	case "remove":
		return Remove{Descriptions: []string{strings.Join(rest, " ")}}, nil
	case "sort":
		return Sort{}, nil
	case "init":
		return Init{}, nil
	default:
		return nil, &UnknownCommandError{Name: name}
	}
}

// maxCommandDistance is the largest edit distance for a command suggestion.
const maxCommandDistance = 2

// Suggest fills in the closest known command, compared case-insensitively.
// Ties go to the command listed first in Names.
func (e *UnknownCommandError) Suggest() {
	name := strings.ToLower(e.Name)
	best := maxCommandDistance + 1
	for _, known := range Names {
		d := levenshtein.ComputeDistance(name, known)
		if d < best && d < len(known) {
			best = d
			e.Suggestion = known
		}
	}
}
