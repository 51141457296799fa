package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"

	"github.com/tagirov/rusk/models"
)

const (
	backupSuffix        = ".backup"
	beforeRestoreSuffix = ".before-restore"
	tempSuffix          = ".tmp"
)

// taskListSchema describes the on-disk format: a JSON array of task objects
// with integer IDs, non-empty text, an optional DD-MM-YYYY date, and a done
// flag. Loads validate against it before unmarshalling so corruption reports
// can say precisely what is wrong.
const taskListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "text", "done"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "text": {"type": "string", "minLength": 1},
      "date": {"type": ["string", "null"], "pattern": "^[0-9]{2}-[0-9]{2}-[0-9]{4}$"},
      "done": {"type": "boolean"}
    },
    "additionalProperties": false
  }
}`

var compiledTaskListSchema = jsonschema.MustCompileString("tasks.schema.json", taskListSchema)

// FileStore persists a task list to a single JSON file. Writes go through a
// temp file and an atomic rename, with the previous generation copied to a
// .backup sibling first. The filesystem is abstracted behind afero so tests
// can run against an in-memory fs.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore creates a store backed by the OS filesystem at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{fs: afero.NewOsFs(), path: path}
}

// NewFileStoreWithFs creates a store over an arbitrary afero filesystem.
func NewFileStoreWithFs(fsys afero.Fs, path string) *FileStore {
	return &FileStore{fs: fsys, path: path}
}

// Path returns the primary file path.
func (f *FileStore) Path() string { return f.path }

// BackupPath returns the sibling path holding the pre-save snapshot.
func (f *FileStore) BackupPath() string { return f.path + backupSuffix }

// Load reads the task list from the primary file. A genuinely absent file is
// a first run and yields an empty list; a present-but-empty or malformed file
// is a CorruptionError.
func (f *FileStore) Load() ([]models.Task, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return nil, &IOError{Op: "read", Path: f.path, Err: err}
	}
	return decodeTasks(f.path, data)
}

// decodeTasks parses and validates raw file content as a task list.
func decodeTasks(path string, data []byte) ([]models.Task, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &CorruptionError{Path: path, Err: errors.New("file is empty")}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, &CorruptionError{Path: path, Err: err}
	}
	// A valid JSON prefix followed by trailing bytes is corruption, not
	// something to silently truncate.
	if dec.More() {
		return nil, &CorruptionError{Path: path, Err: errors.New("trailing data after the task list")}
	}

	if err := compiledTaskListSchema.Validate(raw); err != nil {
		return nil, &CorruptionError{Path: path, Err: err}
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &CorruptionError{Path: path, Err: err}
	}

	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			return nil, &CorruptionError{Path: path, Err: fmt.Errorf("duplicate task id %d", t.ID)}
		}
		seen[t.ID] = true
	}
	return tasks, nil
}

// Save durably writes the task list to the primary file. The previous
// primary, if any, is copied to the .backup sibling before the new content is
// in place, then the new content is written to a temp file, synced, and
// renamed over the primary path.
func (f *FileStore) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	dir := filepath.Dir(f.path)
	if dir != "." && dir != "" {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "create directory", Path: dir, Err: err}
		}
	}

	if exists, err := afero.Exists(f.fs, f.path); err != nil {
		return &IOError{Op: "stat", Path: f.path, Err: err}
	} else if exists {
		if err := f.copyFile(f.path, f.BackupPath()); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}
	data = append(data, '\n')

	return f.writeAtomic(f.path, data)
}

// writeAtomic writes data to a temp file in the target's directory, syncs it,
// and renames it over the target path.
func (f *FileStore) writeAtomic(target string, data []byte) error {
	tmp := target + tempSuffix
	file, err := f.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &IOError{Op: "write", Path: tmp, Err: err}
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = f.fs.Remove(tmp)
		return &IOError{Op: "write", Path: tmp, Err: err}
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		_ = f.fs.Remove(tmp)
		return &IOError{Op: "sync", Path: tmp, Err: err}
	}
	if err := file.Close(); err != nil {
		_ = f.fs.Remove(tmp)
		return &IOError{Op: "close", Path: tmp, Err: err}
	}
	if err := f.fs.Rename(tmp, target); err != nil {
		_ = f.fs.Remove(tmp)
		return &IOError{Op: "rename", Path: target, Err: err}
	}
	return nil
}

// Restore promotes the .backup sibling to be the new primary. The backup is
// validated first; on any error the primary is left byte-for-byte untouched.
// Before promotion the current primary, if present, is parked at a
// .before-restore sibling so the restore itself is reversible. The parked
// path is returned alongside the restored tasks ("" when there was no
// primary to park).
func (f *FileStore) Restore() ([]models.Task, string, error) {
	backup := f.BackupPath()

	data, err := afero.ReadFile(f.fs, backup)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", &RestoreError{Path: backup, Err: ErrNoBackup}
		}
		return nil, "", &RestoreError{Path: backup, Err: err}
	}

	tasks, err := decodeTasks(backup, data)
	if err != nil {
		return nil, "", &RestoreError{Path: backup, Err: err}
	}

	parked := ""
	if exists, err := afero.Exists(f.fs, f.path); err != nil {
		return nil, "", &RestoreError{Path: backup, Err: err}
	} else if exists {
		parked = f.path + beforeRestoreSuffix
		if err := f.copyFile(f.path, parked); err != nil {
			return nil, "", &RestoreError{Path: backup, Err: err}
		}
	}

	if err := f.writeAtomic(f.path, data); err != nil {
		return nil, "", &RestoreError{Path: backup, Err: err}
	}
	return tasks, parked, nil
}

// copyFile copies src to dst, replacing dst if it exists.
func (f *FileStore) copyFile(src, dst string) error {
	data, err := afero.ReadFile(f.fs, src)
	if err != nil {
		return &IOError{Op: "read", Path: src, Err: err}
	}
	if err := afero.WriteFile(f.fs, dst, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: dst, Err: err}
	}
	return nil
}
