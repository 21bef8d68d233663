// ABOUTME: Update command for editing entry fields
// ABOUTME: Merges a JSON object into the entry; id and date added are preserved

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:     "update <catalog> <id>",
	Aliases: []string{"edit"},
	Short:   "Edit entry fields",
	Long: `Replace fields of an entry with values from a JSON object.

Field names are the ones 'hobbies export' writes. The id and dateAdded fields
cannot be changed. Rating, review, notes, and completion dates belong to
'hobbies done' and 'hobbies undo'; status may only move an unfinished entry
between its to-do statuses.

Examples:
  hobbies update books book-2 --set '{"tags": ["book club"]}'
  hobbies update movies movie-3 --set '{"status": "currently-watching"}'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _ := cmd.Flags().GetString("set")

		cat, entry, err := catalogAndEntry(args)
		if err != nil {
			return err
		}

		updated, err := cat.Patch(entry.EntryID(), []byte(set))
		if err != nil {
			return fmt.Errorf("failed to update entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", bold(updated.DisplayTitle()), faint(updated.EntryID()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().String("set", "", "JSON object of fields to replace")
	_ = updateCmd.MarkFlagRequired("set")
}
