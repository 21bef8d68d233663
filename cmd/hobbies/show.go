// ABOUTME: Show command for viewing one catalog entry in full
// ABOUTME: Renders the entry's Markdown detail page with glamour

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/content"
)

var showCmd = &cobra.Command{
	Use:     "show <catalog> <id>",
	Aliases: []string{"view"},
	Short:   "Show an entry",
	Long:    "Display every detail of an entry: summary, ingredients and steps for recipes, and your rating and notes",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		cat, entry, err := catalogAndEntry(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		markdown := content.Detail(entry)

		if raw {
			fmt.Fprint(out, markdown)
			return nil
		}

		fmt.Fprintln(out, strings.Repeat("─", config.SeparatorWidth))
		fmt.Fprintf(out, "%s %s  %s %s\n", faint("Catalog:"), cat.Name(), faint("ID:"), entry.EntryID())
		fmt.Fprintln(out, strings.Repeat("─", config.SeparatorWidth))

		rendered, err := glamour.Render(markdown, "dark")
		if err != nil {
			// Fall back to plain markdown if rendering fails
			fmt.Fprintf(out, "%s\n", faint("(markdown rendering unavailable, showing plain text)"))
			fmt.Fprintf(out, "\n%s\n", markdown)
			return nil
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("raw", false, "print the Markdown source instead of rendering it")
}
