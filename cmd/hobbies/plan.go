// ABOUTME: Plan command for putting an entry on the to-do list
// ABOUTME: Mostly used for recipes, which start outside the to-make list

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan <catalog> <id>",
	Short: "Add an entry to the to-do list",
	Long: `Put an entry on the to-read, to-watch, or to-make list.

Entries already in progress are left alone. Completed entries lose their
rating and note, as with 'hobbies undo'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, entry, err := catalogAndEntry(args)
		if err != nil {
			return err
		}

		if cat.Statuses().IsPending(entry.CurrentStatus()) {
			fmt.Fprintf(cmd.OutOrStdout(), "Already on the list (%s): %s\n", entry.CurrentStatus(), entry.DisplayTitle())
			return nil
		}

		if _, err := cat.Plan(entry.EntryID()); err != nil {
			return fmt.Errorf("failed to plan entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added to %s: %s\n", cat.Statuses().NotStarted, entry.DisplayTitle())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
