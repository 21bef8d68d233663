// ABOUTME: Undo command for moving a completed entry back to the to-do list
// ABOUTME: Clears rating, note, and completion date together

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var undoCmd = &cobra.Command{
	Use:     "undo <catalog> <id>",
	Aliases: []string{"reopen"},
	Short:   "Mark an entry not completed",
	Long:    "Move an entry back to to-read, to-watch, or to-make, forgetting its rating, note, and completion date",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, entry, err := catalogAndEntry(args)
		if err != nil {
			return err
		}

		if entry.CurrentStatus() != cat.Statuses().Completed {
			fmt.Fprintf(cmd.OutOrStdout(), "Entry is not marked as %s\n", cat.Statuses().Completed)
			return nil
		}

		if _, err := cat.MarkIncomplete(entry.EntryID()); err != nil {
			return fmt.Errorf("failed to mark entry incomplete: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Moved back to %s: %s\n", cat.Statuses().NotStarted, entry.DisplayTitle())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(undoCmd)
}
