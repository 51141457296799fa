package store

import (
	"errors"
	"fmt"
)

// ErrNoBackup signals that a restore was requested but no backup file exists.
// It is always wrapped in a RestoreError.
var ErrNoBackup = errors.New("no backup file exists")

// IOError reports a filesystem failure against a specific path. It is kept
// distinct from CorruptionError because callers react differently: I/O
// failures are fatal to the command, corruption is recoverable via restore.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CorruptionError means the file exists but its content is not a valid,
// complete serialization of a task list. An absent file is not corruption.
type CorruptionError struct {
	Path string
	Err  error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("task file %s is corrupted: %v", e.Path, e.Err)
}

func (e *CorruptionError) Unwrap() error { return e.Err }

// RestoreError means a restore could not be performed. The primary file is
// left untouched whenever this error is returned.
type RestoreError struct {
	Path string
	Err  error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("cannot restore from %s: %v", e.Path, e.Err)
}

func (e *RestoreError) Unwrap() error { return e.Err }
