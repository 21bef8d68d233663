// ABOUTME: Reset command for restoring catalogs to the bundled sample lists
// ABOUTME: Asks for confirmation unless --yes is given

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/collection"
)

var resetCmd = &cobra.Command{
	Use:   "reset [catalog]",
	Short: "Restore catalogs to the sample lists",
	Long: `Replace a catalog, or every catalog, with the bundled sample list.

Your ratings, notes, and added entries in that catalog are lost.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		targets := state.Catalogs()
		if len(args) == 1 {
			cat, err := state.Catalog(args[0])
			if err != nil {
				return err
			}
			targets = []collection.Catalog{cat}
		}

		names := make([]string, len(targets))
		for i, cat := range targets {
			names[i] = cat.Name()
		}

		if !yes {
			prompt := fmt.Sprintf("This will replace %s with the sample list.\n\nContinue? [y/N] ", strings.Join(names, ", "))
			if !confirm(cmd, prompt, "y", "Y") {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
		}

		for _, cat := range targets {
			if err := cat.Reset(); err != nil {
				return fmt.Errorf("failed to reset %s: %w", cat.Name(), err)
			}
			fmt.Fprintln(out, color.GreenString("  ✓ %s reset (%d entries)", cat.Name(), cat.Len()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
