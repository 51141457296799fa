package store

import (
	"errors"
	"strings"

	"github.com/tagirov/rusk/models"
)

// Store owns the ordered in-memory task collection. Insertion order is the
// canonical list order and survives save/load round trips. Mutations that
// actually change data mark the store dirty and trigger a save through the
// file store; no-op mutations leave the file (and its backup) untouched.
type Store struct {
	file  *FileStore
	tasks []models.Task
	dirty bool
}

// Open loads the task list from the file store. A missing file yields an
// empty store.
func Open(file *FileStore) (*Store, error) {
	tasks, err := file.Load()
	if err != nil {
		return nil, err
	}
	return &Store{file: file, tasks: tasks}, nil
}

// NewStore creates an empty store that saves through the given file store.
func NewStore(file *FileStore) *Store {
	return &Store{file: file, tasks: []models.Task{}}
}

// File exposes the underlying file store, e.g. for restore.
func (s *Store) File() *FileStore { return s.file }

// Dirty reports whether in-memory state differs from the last known on-disk
// state.
func (s *Store) Dirty() bool { return s.dirty }

// Tasks returns a snapshot of all tasks in canonical order.
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Find returns the task with the given ID, if present.
func (s *Store) Find(id int) (models.Task, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.tasks[idx], true
	}
	return models.Task{}, false
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextID allocates max-existing+1, never recycling a deleted ID below the
// current maximum.
func (s *Store) nextID() int {
	max := 0
	for _, t := range s.tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Add appends a new task with the next free ID and saves.
func (s *Store) Add(text string, date *models.Date) (models.Task, error) {
	task, err := models.NewTask(s.nextID(), text, copyDate(date))
	if err != nil {
		return models.Task{}, err
	}
	s.tasks = append(s.tasks, task)
	s.dirty = true
	if err := s.flush(); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// MarkResult is the per-ID outcome of a Mark batch.
type MarkResult struct {
	ID    int
	Found bool
	Done  bool // new state, meaningful only when Found
}

// Mark toggles the done flag for each existing ID. Unknown IDs are reported
// individually rather than aborting the batch; a save happens only when at
// least one task actually changed state.
func (s *Store) Mark(ids []int) ([]MarkResult, error) {
	results := make([]MarkResult, 0, len(ids))
	changed := false
	for _, id := range ids {
		idx := s.indexOf(id)
		if idx < 0 {
			results = append(results, MarkResult{ID: id})
			continue
		}
		s.tasks[idx].Done = !s.tasks[idx].Done
		results = append(results, MarkResult{ID: id, Found: true, Done: s.tasks[idx].Done})
		changed = true
	}
	if changed {
		s.dirty = true
		if err := s.flush(); err != nil {
			return results, err
		}
	}
	return results, nil
}

// DateChange is the tri-state date argument to Edit: leave the date alone
// (Set false), set it to a value, or clear it (Set true, Date nil).
type DateChange struct {
	Set  bool
	Date *models.Date
}

// EditOutcome tags the per-ID result of an Edit batch.
type EditOutcome int

const (
	EditNotFound EditOutcome = iota
	EditUnchanged
	EditApplied
)

// EditResult is the per-ID outcome of an Edit batch.
type EditResult struct {
	ID      int
	Outcome EditOutcome
}

// Edit applies the same text and/or date change to every listed task.
// Unknown IDs are reported individually. Tasks whose text and date already
// match the requested values are reported unchanged, and if nothing in the
// batch changed no save occurs. Blank new text is rejected unless a date
// change is also requested, in which case the edit degrades to date-only.
func (s *Store) Edit(ids []int, newText *string, date DateChange) ([]EditResult, error) {
	text := ""
	hasText := false
	if newText != nil {
		text = strings.TrimSpace(*newText)
		if text == "" {
			if !date.Set {
				return nil, errors.New("task text cannot be empty")
			}
		} else {
			hasText = true
		}
	}
	if !hasText && !date.Set {
		return nil, errors.New("nothing to edit: give new text and/or a date")
	}

	results := make([]EditResult, 0, len(ids))
	changed := false
	for _, id := range ids {
		idx := s.indexOf(id)
		if idx < 0 {
			results = append(results, EditResult{ID: id, Outcome: EditNotFound})
			continue
		}
		task := &s.tasks[idx]
		was := false
		if hasText && task.Text != text {
			task.Text = text
			was = true
		}
		if date.Set && !datesEqual(task.Date, date.Date) {
			task.Date = copyDate(date.Date)
			was = true
		}
		if was {
			results = append(results, EditResult{ID: id, Outcome: EditApplied})
			changed = true
		} else {
			results = append(results, EditResult{ID: id, Outcome: EditUnchanged})
		}
	}
	if changed {
		s.dirty = true
		if err := s.flush(); err != nil {
			return results, err
		}
	}
	return results, nil
}

// DeleteResult is the per-ID outcome of a Delete batch.
type DeleteResult struct {
	ID    int
	Found bool
}

// Delete removes the listed tasks, reporting not-found IDs individually.
// Remaining tasks keep their order; a save happens only when something was
// actually removed.
func (s *Store) Delete(ids []int) ([]DeleteResult, error) {
	results := make([]DeleteResult, 0, len(ids))
	remove := make(map[int]bool)
	for _, id := range ids {
		if s.indexOf(id) >= 0 {
			remove[id] = true
			results = append(results, DeleteResult{ID: id, Found: true})
		} else {
			results = append(results, DeleteResult{ID: id})
		}
	}
	if len(remove) == 0 {
		return results, nil
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !remove[t.ID] {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.dirty = true
	if err := s.flush(); err != nil {
		return results, err
	}
	return results, nil
}

// DeleteDone removes every completed task and returns how many were removed.
// A store with no completed tasks is a no-op with no save.
func (s *Store) DeleteDone() (int, error) {
	kept := make([]models.Task, 0, len(s.tasks))
	removed := 0
	for _, t := range s.tasks {
		if t.Done {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return 0, nil
	}
	s.tasks = kept
	s.dirty = true
	if err := s.flush(); err != nil {
		return removed, err
	}
	return removed, nil
}

// flush saves dirty state and marks the store clean on success.
func (s *Store) flush() error {
	if !s.dirty {
		return nil
	}
	if err := s.file.Save(s.tasks); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func datesEqual(a, b *models.Date) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// copyDate clones a date pointer so stored tasks never alias caller memory.
func copyDate(d *models.Date) *models.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
