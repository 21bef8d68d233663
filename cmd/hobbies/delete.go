// ABOUTME: Delete command for removing a book or movie
// ABOUTME: Recipes cannot be deleted

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <catalog> <id>",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a book or movie",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, entry, err := catalogAndEntry(args)
		if err != nil {
			return err
		}

		if _, err := cat.Delete(entry.EntryID()); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s from %s\n", entry.DisplayTitle(), cat.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
