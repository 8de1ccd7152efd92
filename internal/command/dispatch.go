package command

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/task-go/internal/config"
	"github.com/nibzard/task-go/internal/logging"
	"github.com/nibzard/task-go/internal/tasks"
)

// Dispatcher runs commands against one task file.
type Dispatcher struct {
	// TaskFile is the path of the backing file.
	TaskFile string
	// Out receives the output of list.
	Out io.Writer
	// Logger receives warnings and debug tracing.
	Logger *log.Logger
	// Suggestions adds "did you mean" hints to not-found warnings.
	Suggestions bool
}

// NewDispatcher returns a dispatcher for the task file named in cfg.
func NewDispatcher(cfg *config.Config, out io.Writer, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		TaskFile:    cfg.TaskFile,
		Out:         out,
		Logger:      logger,
		Suggestions: cfg.Suggestions,
	}
}

// Result describes a command that ran to completion.
type Result struct {
	Command string
	// Tasks is the number of entries after the command ran.
	Tasks int
	// Warnings holds non-fatal problems, such as tasks remove could not find.
	Warnings []error
}

// Dispatch runs c. A returned error is fatal for the invocation and means the
// task file was not saved; warnings are carried in the Result.
func (d *Dispatcher) Dispatch(c Command) (*Result, error) {
	switch c := c.(type) {
	case Add:
		return d.update(c, func(l *tasks.List) []error {
			l.Add(c.Descriptions...)
			return nil
		})
	case List:
		return d.list()
	case Remove:
		return d.update(c, func(l *tasks.List) []error {
			return d.remove(l, c.Descriptions)
		})
	case Sort:
		return d.update(c, func(l *tasks.List) []error {
			l.Sort()
			return nil
		})
	case Init:
		return d.create()
	default:
		return nil, fmt.Errorf("unsupported command %T", c)
	}
}

// update runs the load, edit, save cycle shared by the mutating commands.
// The file is saved even when edit changed nothing.
func (d *Dispatcher) update(c Command, edit func(*tasks.List) []error) (*Result, error) {
	list, err := d.load()
	if err != nil {
		return nil, err
	}

	warnings := edit(list)

	if err := list.Save(d.TaskFile); err != nil {
		return nil, fmt.Errorf("saving tasks: %w", err)
	}
	d.logger().Debug("saved tasks", "command", c.Name(), "path", d.TaskFile, "count", list.Len())

	return &Result{Command: c.Name(), Tasks: list.Len(), Warnings: warnings}, nil
}

func (d *Dispatcher) load() (*tasks.List, error) {
	list, err := tasks.Load(d.TaskFile)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	d.logger().Debug("loaded tasks", "path", d.TaskFile, "count", list.Len())
	return list, nil
}

// remove reports each missing description with Print, which no log level
// filters out.
func (d *Dispatcher) remove(list *tasks.List, descriptions []string) []error {
	result := list.Remove(descriptions...)
	for _, removed := range result.Removed {
		d.logger().Debug("removed task", "description", removed)
	}
	for _, missing := range result.Missing {
		fields := []any{"description", missing.Description}
		if d.Suggestions {
			if s, ok := list.Closest(missing.Description); ok {
				missing.Suggestion = s
				fields = append(fields, "suggestion", s)
			}
		}
		d.logger().Print("warning: "+tasks.ErrEntryNotFound.Error(), fields...)
	}
	return result.Warnings()
}

func (d *Dispatcher) list() (*Result, error) {
	list, err := d.load()
	if err != nil {
		return nil, err
	}

	out := d.Out
	if out == nil {
		out = io.Discard
	}
	for _, item := range list.Items() {
		if _, err := fmt.Fprintln(out, item); err != nil {
			return nil, fmt.Errorf("printing tasks: %w", err)
		}
	}

	return &Result{Command: List{}.Name(), Tasks: list.Len()}, nil
}

func (d *Dispatcher) create() (*Result, error) {
	if err := tasks.Create(d.TaskFile); err != nil {
		return nil, fmt.Errorf("creating task file: %w", err)
	}
	d.logger().Info("created task file", "path", d.TaskFile)
	return &Result{Command: Init{}.Name()}, nil
}

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return d.Logger
}
