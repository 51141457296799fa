package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagirov/rusk/parse"
)

// markCmd represents the mark command
var markCmd = &cobra.Command{
	Use:   "mark <ids>...",
	Short: "Mark tasks as done or undone (toggle)",
	Long: `Toggle the done flag of one or more tasks.

IDs are flexible: "1 2 3", "1,2,3" and "1,2 3" all work. Unknown IDs are
reported without aborting the rest of the batch.`,
	Aliases: []string{"m", "done"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runMark,
}

func init() {
	rootCmd.AddCommand(markCmd)
}

func runMark(cmd *cobra.Command, args []string) error {
	ids, err := parse.IDs(args)
	if err != nil {
		return err
	}

	s, err := getStore()
	if err != nil {
		return err
	}

	results, err := s.Mark(ids)
	if err != nil {
		return err
	}

	var notFound []int
	for _, r := range results {
		if !r.Found {
			notFound = append(notFound, r.ID)
			continue
		}
		task, _ := s.Find(r.ID)
		status := "undone"
		if r.Done {
			status = "done"
		}
		fmt.Printf("%s %d: %s\n", successStyle.Render("Marked task as "+status+":"), r.ID, boldStyle.Render(task.Text))
	}
	reportNotFound(notFound)
	return nil
}
