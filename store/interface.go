package store

import "github.com/tagirov/rusk/models"

// TaskStore defines the contract the command layer programs against. It
// covers the CRUD operations over the ordered task collection; persistence
// happens behind these methods, with saves skipped for mutations that change
// nothing.
type TaskStore interface {
	// Tasks returns a snapshot of all tasks in canonical list order.
	Tasks() []models.Task

	// Find returns the task with the given ID, if present.
	Find(id int) (models.Task, bool)

	// Add appends a new task with the next free ID and saves.
	// Text is trimmed; empty text is rejected.
	Add(text string, date *models.Date) (models.Task, error)

	// Mark toggles the done flag for each existing ID and reports the
	// per-ID outcome. Unknown IDs never abort the batch.
	Mark(ids []int) ([]MarkResult, error)

	// Edit applies the same text and/or tri-state date change to every
	// listed task, with unchanged-detection per task.
	Edit(ids []int, newText *string, date DateChange) ([]EditResult, error)

	// Delete removes the listed tasks, reporting not-found IDs
	// individually.
	Delete(ids []int) ([]DeleteResult, error)

	// DeleteDone removes every completed task and returns the count.
	DeleteDone() (int, error)

	// Dirty reports whether in-memory state differs from the last known
	// on-disk state.
	Dirty() bool
}

var _ TaskStore = (*Store)(nil)
