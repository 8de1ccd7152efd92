// Package tasks loads, edits, and saves the flat task file.
//
// The task file (tasks.txt) holds one description per line:
//
//	buy milk
//	walk dog
//	call mom
//
// There is no header, metadata, or escaping. Lines are terminated by "\n";
// a description containing a newline cannot be represented. Blank lines are
// kept as empty descriptions.
//
// # Lifecycle
//
// Every invocation loads the whole file into a List, edits it in memory, and
// writes the whole file back with Save. Save truncates the existing file and
// never creates one; Create is the only way to bring a task file into
// existence.
//
// # Duplicates
//
// Descriptions are not unique. Remove deletes the first matching entry once
// per requested description, so asking to remove "x" twice deletes up to two
// copies of "x".
//
// # Concurrency
//
// Nothing here locks the file. Two processes editing the same task file at
// the same time can lose each other's changes.
package tasks
