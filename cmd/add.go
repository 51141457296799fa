package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tagirov/rusk/models"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new task",
	Long: `Add a new task with an optional due date.

The date is flexible: day-month-year with '-' or '/' separators, leading
zeros optional, 2- or 4-digit year. The keywords "today" and "tomorrow" also
work.

Examples:
  rusk add Buy milk
  rusk add -d 31-12-2025 File the report
  rusk add -d 1/3/26 Water the plants
  rusk add -d tomorrow Call the dentist`,
	Aliases: []string{"a"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runAdd,
}

var addDate string

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "due date (DD-MM-YYYY, today, tomorrow)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	var date *models.Date
	if addDate != "" {
		d, err := resolveDateArg(addDate, models.DateOf(time.Now()))
		if err != nil {
			return err
		}
		date = &d
	}

	s, err := getStore()
	if err != nil {
		return err
	}

	task, err := s.Add(text, date)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d: %s\n", successStyle.Render("Added task:"), task.ID, boldStyle.Render(task.Text))
	return nil
}
