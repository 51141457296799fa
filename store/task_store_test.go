package store

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/tagirov/rusk/models"
)

func newTestStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	s, err := Open(NewFileStoreWithFs(fsys, "/data/tasks.json"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, fsys
}

func date(t *testing.T, year int, month time.Month, day int) *models.Date {
	t.Helper()
	d, err := models.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate failed: %v", err)
	}
	return &d
}

func fileContent(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	return string(data)
}

func TestStore_AddThenFind(t *testing.T) {
	s, _ := newTestStore(t)
	due := date(t, 2025, time.June, 5)

	task, err := s.Add("  Walk dog  ", due)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("first task id = %d, want 1", task.ID)
	}

	got, ok := s.Find(task.ID)
	if !ok {
		t.Fatal("Find did not locate the added task")
	}
	if got.Text != "Walk dog" {
		t.Errorf("Text = %q, want trimmed %q", got.Text, "Walk dog")
	}
	if got.Date == nil || !got.Date.Equal(*due) {
		t.Errorf("Date = %v, want %s", got.Date, due)
	}
	if got.Done {
		t.Error("new task should not be done")
	}
}

func TestStore_AddRejectsBlankText(t *testing.T) {
	s, fsys := newTestStore(t)

	if _, err := s.Add("   ", nil); err == nil {
		t.Fatal("Add with blank text should have failed")
	}
	if exists, _ := afero.Exists(fsys, s.File().Path()); exists {
		t.Error("rejected add must not create the task file")
	}
}

func TestStore_IDsAreMaxPlusOneNeverRecycled(t *testing.T) {
	s, _ := newTestStore(t)

	for _, text := range []string{"one", "two", "three"} {
		if _, err := s.Add(text, nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Deleting the highest ID frees nothing: the next task still gets
	// second-highest-max + 1, never the recycled 3.
	if _, err := s.Delete([]int{3}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	task, err := s.Add("four", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("id after deleting the max = %d, want 3 (second-highest max + 1)", task.ID)
	}

	// Deleting a middle ID leaves the max alone.
	if _, err := s.Delete([]int{2}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	task, err = s.Add("five", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID != 4 {
		t.Errorf("id after deleting a middle task = %d, want 4", task.ID)
	}
}

func TestStore_ListPreservesInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	for _, text := range []string{"one", "two", "three"} {
		if _, err := s.Add(text, nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if _, err := s.Mark([]int{2}); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	tasks := s.Tasks()
	want := []string{"one", "two", "three"}
	for i, text := range want {
		if tasks[i].Text != text {
			t.Errorf("tasks[%d].Text = %q, want %q (done/undone must stay interleaved)", i, tasks[i].Text, text)
		}
	}
}

func TestStore_MarkToggles(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("toggle me", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	results, err := s.Mark([]int{task.ID})
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if !results[0].Found || !results[0].Done {
		t.Errorf("first mark = %+v, want found and done", results[0])
	}

	results, err = s.Mark([]int{task.ID})
	if err != nil {
		t.Fatalf("second Mark failed: %v", err)
	}
	if !results[0].Found || results[0].Done {
		t.Errorf("second mark = %+v, want found and undone", results[0])
	}
}

func TestStore_MarkPartialFailure(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("exists", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	results, err := s.Mark([]int{task.ID, 999})
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].Found || !results[0].Done {
		t.Errorf("results[0] = %+v, want found and toggled", results[0])
	}
	if results[1].Found {
		t.Errorf("results[1] = %+v, want not found", results[1])
	}

	got, _ := s.Find(task.ID)
	if !got.Done {
		t.Error("valid id must still be toggled when siblings are invalid")
	}
}

func TestStore_MarkOnlyUnknownIDsDoesNotSave(t *testing.T) {
	s, fsys := newTestStore(t)

	results, err := s.Mark([]int{999})
	if err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if len(results) != 1 || results[0].Found {
		t.Fatalf("results = %+v, want a single not-found entry", results)
	}
	if s.Dirty() {
		t.Error("store must stay clean when nothing changed")
	}
	if exists, _ := afero.Exists(fsys, s.File().Path()); exists {
		t.Error("no-op mark must not create the task file")
	}
	if exists, _ := afero.Exists(fsys, s.File().BackupPath()); exists {
		t.Error("no-op mark must not create a backup")
	}
}

func TestStore_EditAppliesTextAndDate(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("old text", date(t, 2025, time.January, 1))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	text := "new text"
	results, err := s.Edit([]int{task.ID}, &text, DateChange{Set: true, Date: date(t, 2025, time.December, 31)})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if results[0].Outcome != EditApplied {
		t.Errorf("outcome = %v, want EditApplied", results[0].Outcome)
	}

	got, _ := s.Find(task.ID)
	if got.Text != "new text" {
		t.Errorf("Text = %q, want %q", got.Text, "new text")
	}
	if got.Date == nil || got.Date.String() != "31-12-2025" {
		t.Errorf("Date = %v, want 31-12-2025", got.Date)
	}
}

func TestStore_EditClearsDate(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("dated", date(t, 2025, time.June, 5))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	results, err := s.Edit([]int{task.ID}, nil, DateChange{Set: true})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if results[0].Outcome != EditApplied {
		t.Errorf("outcome = %v, want EditApplied", results[0].Outcome)
	}
	got, _ := s.Find(task.ID)
	if got.Date != nil {
		t.Errorf("Date = %v, want cleared", got.Date)
	}
}

func TestStore_EditUnchangedDoesNotSave(t *testing.T) {
	s, fsys := newTestStore(t)
	task, err := s.Add("same text", date(t, 2025, time.June, 5))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	primaryBefore := fileContent(t, fsys, s.File().Path())
	backupExistsBefore, _ := afero.Exists(fsys, s.File().BackupPath())

	text := "same text"
	results, err := s.Edit([]int{task.ID}, &text, DateChange{Set: true, Date: date(t, 2025, time.June, 5)})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if results[0].Outcome != EditUnchanged {
		t.Errorf("outcome = %v, want EditUnchanged", results[0].Outcome)
	}
	if s.Dirty() {
		t.Error("store must stay clean after an identical edit")
	}

	primaryAfter := fileContent(t, fsys, s.File().Path())
	if primaryBefore != primaryAfter {
		t.Error("primary file changed although the edit was a no-op")
	}
	backupExistsAfter, _ := afero.Exists(fsys, s.File().BackupPath())
	if backupExistsBefore != backupExistsAfter {
		t.Error("backup state changed although the edit was a no-op")
	}
}

func TestStore_EditBatchMixedOutcomes(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Add("Task 2", nil); err != nil { // id 1
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("other", nil); err != nil { // id 2
		t.Fatalf("Add failed: %v", err)
	}

	text := "Task 2"
	results, err := s.Edit([]int{1, 2, 99}, &text, DateChange{})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	want := []EditOutcome{EditUnchanged, EditApplied, EditNotFound}
	for i, outcome := range want {
		if results[i].Outcome != outcome {
			t.Errorf("results[%d].Outcome = %v, want %v", i, results[i].Outcome, outcome)
		}
	}
}

func TestStore_EditBlankTextRejectedUnlessDateOnly(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("keep me", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	blank := "   "
	if _, err := s.Edit([]int{task.ID}, &blank, DateChange{}); err == nil {
		t.Error("blank text with no date change should be rejected")
	}

	// With a date change the blank text degrades to a date-only edit.
	results, err := s.Edit([]int{task.ID}, &blank, DateChange{Set: true, Date: date(t, 2025, time.June, 5)})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if results[0].Outcome != EditApplied {
		t.Errorf("outcome = %v, want EditApplied", results[0].Outcome)
	}
	got, _ := s.Find(task.ID)
	if got.Text != "keep me" {
		t.Errorf("Text = %q, want untouched %q", got.Text, "keep me")
	}
	if got.Date == nil {
		t.Error("date should have been set")
	}
}

func TestStore_DeletePartialFailure(t *testing.T) {
	s, _ := newTestStore(t)
	for _, text := range []string{"one", "two"} {
		if _, err := s.Add(text, nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	results, err := s.Delete([]int{1, 999})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !results[0].Found || results[1].Found {
		t.Errorf("results = %+v, want found then not-found", results)
	}

	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("remaining tasks = %+v, want only task 2", tasks)
	}
}

func TestStore_DeleteDone(t *testing.T) {
	s, _ := newTestStore(t)
	for _, text := range []string{"one", "two", "three"} {
		if _, err := s.Add(text, nil); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if _, err := s.Mark([]int{1, 3}); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	count, err := s.DeleteDone()
	if err != nil {
		t.Fatalf("DeleteDone failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	tasks := s.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "two" {
		t.Errorf("remaining tasks = %+v, want only 'two'", tasks)
	}
}

func TestStore_DeleteDoneNoopDoesNotSave(t *testing.T) {
	s, fsys := newTestStore(t)
	if _, err := s.Add("pending", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	primaryBefore := fileContent(t, fsys, s.File().Path())

	count, err := s.DeleteDone()
	if err != nil {
		t.Fatalf("DeleteDone failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if s.Dirty() {
		t.Error("store must stay clean after a no-op DeleteDone")
	}
	if got := fileContent(t, fsys, s.File().Path()); got != primaryBefore {
		t.Error("primary file changed although nothing was deleted")
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path := "/data/tasks.json"

	s, err := Open(NewFileStoreWithFs(fsys, path))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Add("persist me", date(t, 2025, time.June, 5)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("me too", nil); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Mark([]int{2}); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	reopened, err := Open(NewFileStoreWithFs(fsys, path))
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	tasks := reopened.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks after reopen, want 2", len(tasks))
	}
	if tasks[0].Text != "persist me" || tasks[0].Date == nil || tasks[0].Done {
		t.Errorf("tasks[0] = %+v", tasks[0])
	}
	if tasks[1].Text != "me too" || tasks[1].Date != nil || !tasks[1].Done {
		t.Errorf("tasks[1] = %+v", tasks[1])
	}
}

// Mirrors the documented end-to-end flow: add two tasks, toggle one, clear a
// date, delete, list.
func TestStore_Scenario(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.Add("Buy milk", nil)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first id = %d, want 1", first.ID)
	}

	second, err := s.Add("Walk dog", date(t, 2025, time.June, 5))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("second id = %d, want 2", second.ID)
	}

	if _, err := s.Mark([]int{1}); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if got, _ := s.Find(1); !got.Done {
		t.Error("task 1 should be done")
	}

	if _, err := s.Edit([]int{2}, nil, DateChange{Set: true}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	if _, err := s.Delete([]int{1}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	got := tasks[0]
	if got.ID != 2 || got.Text != "Walk dog" || got.Date != nil || got.Done {
		t.Errorf("final task = %+v, want {id:2, text:\"Walk dog\", no date, not done}", got)
	}
}
