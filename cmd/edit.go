package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tagirov/rusk/models"
	"github.com/tagirov/rusk/parse"
	"github.com/tagirov/rusk/store"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <ids>... [flags]",
	Short: "Edit the text and/or due date of tasks",
	Long: `Apply the same new text and/or due date to one or more tasks.

Pass --date none to remove a due date. Tasks that already have the requested
text and date are left alone, and if nothing changes the task file is not
rewritten.

Examples:
  rusk edit 3 -t "Buy oat milk"
  rusk edit 1,4 -d 05-06-2025
  rusk edit 2 -d none`,
	Aliases: []string{"e"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runEdit,
}

var (
	editText string
	editDate string
)

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editText, "text", "t", "", "new task text")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", `new due date, or "none" to clear it`)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ids, err := parse.IDs(args)
	if err != nil {
		return err
	}

	var newText *string
	if cmd.Flags().Changed("text") {
		newText = &editText
	}

	// The date argument is tri-state: not provided, set to a value, or
	// cleared explicitly.
	var dateChange store.DateChange
	if cmd.Flags().Changed("date") {
		dateChange.Set = true
		if trimmed := strings.TrimSpace(editDate); trimmed != "" && !strings.EqualFold(trimmed, "none") {
			d, err := resolveDateArg(editDate, models.DateOf(time.Now()))
			if err != nil {
				return err
			}
			dateChange.Date = &d
		}
	}

	s, err := getStore()
	if err != nil {
		return err
	}

	results, err := s.Edit(ids, newText, dateChange)
	if err != nil {
		return err
	}

	var notFound []int
	for _, r := range results {
		switch r.Outcome {
		case store.EditApplied:
			task, _ := s.Find(r.ID)
			fmt.Printf("%s %d: %s\n", successStyle.Render("Edited task:"), r.ID, boldStyle.Render(task.Text))
		case store.EditUnchanged:
			task, _ := s.Find(r.ID)
			fmt.Printf("%s %d: %s\n", unchangedStyle.Render("Task already has this content:"), r.ID, boldStyle.Render(task.Text))
		case store.EditNotFound:
			notFound = append(notFound, r.ID)
		}
	}
	reportNotFound(notFound)
	return nil
}
