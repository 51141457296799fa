package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/tagirov/rusk/models"
)

func mustDate(t *testing.T, year int, month time.Month, day int) *models.Date {
	t.Helper()
	d, err := models.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate failed: %v", err)
	}
	return &d
}

// Styling may add escape sequences depending on the terminal, so these tests
// assert on the stable tokens rather than exact bytes.
func TestRenderTaskLines_SingleLine(t *testing.T) {
	today, _ := models.NewDate(2025, time.June, 5)
	task := models.Task{ID: 7, Text: "Walk dog", Date: mustDate(t, 2025, time.June, 10)}

	lines := renderTaskLines(task, today, 40)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "  7") {
		t.Errorf("line %q does not contain the padded id", lines[0])
	}
	if !strings.Contains(lines[0], "10-06-2025") {
		t.Errorf("line %q does not contain the date token", lines[0])
	}
	if !strings.HasSuffix(lines[0], "Walk dog") {
		t.Errorf("line %q does not end with the task text", lines[0])
	}
	if !strings.Contains(lines[0], markerPending) {
		t.Errorf("line %q does not carry the pending marker", lines[0])
	}
}

func TestRenderTaskLines_DoneMarker(t *testing.T) {
	today, _ := models.NewDate(2025, time.June, 5)
	task := models.Task{ID: 1, Text: "done thing", Done: true}

	lines := renderTaskLines(task, today, 40)
	if !strings.Contains(lines[0], markerDone) {
		t.Errorf("line %q does not carry the done marker", lines[0])
	}
	if strings.Contains(lines[0], markerPending) {
		t.Errorf("line %q should not carry the pending marker", lines[0])
	}
}

func TestRenderTaskLines_WrapsWithStableIndent(t *testing.T) {
	today, _ := models.NewDate(2025, time.June, 5)
	task := models.Task{ID: 1, Text: "alpha beta gamma delta"}

	lines := renderTaskLines(task, today, 11)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "alpha beta") {
		t.Errorf("first line %q should end with the first wrapped chunk", lines[0])
	}
	indent := strings.Repeat(" ", linePrefixWidth)
	if lines[1] != indent+"gamma delta" {
		t.Errorf("continuation line = %q, want %q", lines[1], indent+"gamma delta")
	}
}
