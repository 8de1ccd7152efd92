package tasks

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageNotFound means the task file is missing or unreadable.
	ErrStorageNotFound = errors.New("task file not found")
	// ErrStorageWriteFailed means the task file could not be opened for writing.
	ErrStorageWriteFailed = errors.New("task file not writable")
	// ErrStorageAlreadyExists means Create found an existing task file.
	ErrStorageAlreadyExists = errors.New("task file already exists")
	// ErrEntryNotFound means Remove found no entry with the requested description.
	ErrEntryNotFound = errors.New("task not found")
)

// StorageError reports a failed operation on the task file.
type StorageError struct {
	Op   string // load, save or create
	Path string
	Kind error // one of the ErrStorage* sentinels
	Err  error // underlying filesystem error, may be nil
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
}

// Unwrap returns both the kind and the underlying error so either can be
// matched with errors.Is.
func (e *StorageError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// EntryError reports a description that Remove could not find.
type EntryError struct {
	Description string
	// Suggestion is the closest existing entry, if any was close enough.
	Suggestion string
}

func (e *EntryError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %q (did you mean %q?)", ErrEntryNotFound, e.Description, e.Suggestion)
	}
	return fmt.Sprintf("%s: %q", ErrEntryNotFound, e.Description)
}

// Unwrap returns ErrEntryNotFound.
func (e *EntryError) Unwrap() error {
	return ErrEntryNotFound
}
