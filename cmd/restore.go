package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the task file from its backup",
	Long: `Replace the task file with the backup written before the last save.

The backup is validated first; if it is missing or corrupt nothing is
changed. The displaced task file is kept next to the original so the restore
itself can be undone by hand.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	fileStore, err := getFileStore()
	if err != nil {
		return err
	}

	tasks, parked, err := fileStore.Restore()
	if err != nil {
		return err
	}

	if parked != "" {
		fmt.Println("Previous task file kept at:", parked)
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("Restored %d task(s) from backup.", len(tasks))))
	fmt.Println("Backup file:", fileStore.BackupPath())
	return nil
}
