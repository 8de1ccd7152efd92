package tasks

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// DefaultFile is the task file name, resolved against the working directory.
const DefaultFile = "tasks.txt"

// List is the in-memory, ordered copy of a task file.
type List struct {
	items []string
}

// NewList returns a list holding descriptions in the given order.
func NewList(descriptions ...string) *List {
	items := make([]string, len(descriptions))
	copy(items, descriptions)
	return &List{items: items}
}

// Load reads the task file at path.
// A missing or unreadable file is reported as ErrStorageNotFound.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Kind: ErrStorageNotFound, Err: err}
	}
	return NewList(parse(data)...), nil
}

// parse splits file content into descriptions. The final "\n" terminates the
// last line and does not start a new, empty one.
func parse(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	data = bytes.TrimSuffix(data, []byte{'\n'})
	return strings.Split(string(data), "\n")
}

// Save overwrites the task file at path with the list, one description per
// line. The file must already exist.
func (l *List) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &StorageError{Op: "save", Path: path, Kind: ErrStorageWriteFailed, Err: err}
	}

	if _, err := f.Write(l.encode()); err != nil {
		f.Close()
		return &StorageError{Op: "save", Path: path, Kind: ErrStorageWriteFailed, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StorageError{Op: "save", Path: path, Kind: ErrStorageWriteFailed, Err: err}
	}
	return nil
}

// encode joins descriptions with "\n" and adds a trailing newline.
// An empty list encodes to an empty file.
func (l *List) encode() []byte {
	if len(l.items) == 0 {
		return nil
	}
	var b bytes.Buffer
	for _, item := range l.items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Create makes a new, empty task file at path.
func Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &StorageError{Op: "create", Path: path, Kind: ErrStorageAlreadyExists}
		}
		return &StorageError{Op: "create", Path: path, Kind: ErrStorageWriteFailed, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StorageError{Op: "create", Path: path, Kind: ErrStorageWriteFailed, Err: err}
	}
	return nil
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the entries in list order.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Add appends descriptions to the end of the list as given.
func (l *List) Add(descriptions ...string) {
	l.items = append(l.items, descriptions...)
}

// RemoveResult describes what a Remove call did.
type RemoveResult struct {
	Removed []string
	Missing []*EntryError
}

// Warnings returns the missing descriptions as errors, in request order.
func (r RemoveResult) Warnings() []error {
	if len(r.Missing) == 0 {
		return nil
	}
	warnings := make([]error, 0, len(r.Missing))
	for _, m := range r.Missing {
		warnings = append(warnings, m)
	}
	return warnings
}

// Remove deletes, for each description in order, the first entry equal to
// it. Descriptions with no matching entry are skipped and reported in
// RemoveResult.Missing without a suggestion; see Closest.
func (l *List) Remove(descriptions ...string) RemoveResult {
	var result RemoveResult
	for _, d := range descriptions {
		i := l.index(d)
		if i < 0 {
			result.Missing = append(result.Missing, &EntryError{Description: d})
			continue
		}
		l.items = append(l.items[:i], l.items[i+1:]...)
		result.Removed = append(result.Removed, d)
	}
	return result
}

func (l *List) index(description string) int {
	for i, item := range l.items {
		if item == description {
			return i
		}
	}
	return -1
}

// Sort orders entries ascending by byte-wise comparison. Equal entries keep
// their relative order.
func (l *List) Sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		return l.items[i] < l.items[j]
	})
}
