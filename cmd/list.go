package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tagirov/rusk/models"
)

const (
	markerDone    = "✔"
	markerPending = "•"
	// dateColumnWidth fits the fixed DD-MM-YYYY token.
	dateColumnWidth = 10
	// linePrefixWidth is marker + id + date columns plus separating spaces.
	// Completion scripts parse this shape; keep it stable.
	linePrefixWidth = 1 + 1 + 3 + 1 + dateColumnWidth + 1
	minTextWidth    = 20
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all tasks",
	Long:    `List all tasks in the order they were added, with their id, due date and done marker.`,
	Aliases: []string{"l", "ls"},
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := getStore()
	if err != nil {
		return err
	}

	tasks := s.Tasks()
	if len(tasks) == 0 {
		fmt.Println(warnStyle.Render("No tasks"))
		return nil
	}

	textWidth := terminalWidth() - linePrefixWidth
	if textWidth < minTextWidth {
		textWidth = minTextWidth
	}
	today := models.DateOf(time.Now())

	fmt.Println("\n  #  id    date       task")
	fmt.Println("  ──────────────────────────────────────────────")
	for _, task := range tasks {
		for _, line := range renderTaskLines(task, today, textWidth) {
			fmt.Println(line)
		}
	}
	fmt.Println()
	return nil
}

// renderTaskLines renders one task as its list line plus indented
// continuation lines for wrapped text. The first line keeps the stable
// <marker> <id> <date-or-blank> <text> shape: id is the leftmost numeric
// field and the date, when present, a fixed-width DD-MM-YYYY token.
func renderTaskLines(task models.Task, today models.Date, textWidth int) []string {
	marker := markerPending
	if task.Done {
		marker = successStyle.Render(markerDone)
	}

	dateCell := fmt.Sprintf("%-*s", dateColumnWidth, "")
	if task.Date != nil {
		cell := fmt.Sprintf("%-*s", dateColumnWidth, task.Date.String())
		if task.Date.Before(today) && !task.Done {
			dateCell = overdueStyle.Render(cell)
		} else {
			dateCell = dateStyle.Render(cell)
		}
	}

	wrapped := wrapTextByWords(task.Text, textWidth)
	lines := make([]string, 0, len(wrapped))
	lines = append(lines, fmt.Sprintf("%s %s %s %s", marker, boldStyle.Render(fmt.Sprintf("%3d", task.ID)), dateCell, wrapped[0]))
	indent := strings.Repeat(" ", linePrefixWidth)
	for _, cont := range wrapped[1:] {
		lines = append(lines, indent+cont)
	}
	return lines
}
