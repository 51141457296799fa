package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagirov/rusk/parse"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [<ids>...]",
	Short: "Delete tasks",
	Long: `Delete one or more tasks by ID, or every completed task with --done.

Unknown IDs are reported without aborting the rest of the batch.`,
	Aliases: []string{"d", "rm"},
	RunE:    runDelete,
}

var deleteDone bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVar(&deleteDone, "done", false, "delete all completed tasks")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := getStore()
	if err != nil {
		return err
	}

	if deleteDone {
		if len(args) > 0 {
			return fmt.Errorf("--done does not take task IDs")
		}
		count, err := s.DeleteDone()
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Println(warnStyle.Render("No done tasks to delete."))
			return nil
		}
		fmt.Println(errorStyle.Render(fmt.Sprintf("Deleted %d done task(s).", count)))
		return nil
	}

	ids, err := parse.IDs(args)
	if err != nil {
		if err == parse.ErrNoIDs {
			fmt.Println(warnStyle.Render("Please specify id(s) or --done."))
			return nil
		}
		return err
	}

	results, err := s.Delete(ids)
	if err != nil {
		return err
	}

	deleted := 0
	var notFound []int
	for _, r := range results {
		if r.Found {
			deleted++
		} else {
			notFound = append(notFound, r.ID)
		}
	}
	if deleted > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Deleted %d task(s).", deleted)))
	}
	reportNotFound(notFound)
	return nil
}
