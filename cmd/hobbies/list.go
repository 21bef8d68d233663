// ABOUTME: List command for viewing a catalog through the view pipeline
// ABOUTME: Applies tab, search, category, and sort, then prints rows with color formatting

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/query"
)

var listCmd = &cobra.Command{
	Use:     "list <catalog>",
	Aliases: []string{"ls", "l"},
	Short:   "List catalog entries",
	Long: `List entries from books, movies, or recipes.

Filters run in a fixed order: tab, then text search, then category, then sort.

Examples:
  hobbies list books
  hobbies list movies --tab todo --sort year
  hobbies list recipes --category Italian --search basil`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tabFlag, _ := cmd.Flags().GetString("tab")
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")
		sortFlag, _ := cmd.Flags().GetString("sort")
		limit, _ := cmd.Flags().GetInt("limit")

		cat, err := state.Catalog(args[0])
		if err != nil {
			return err
		}
		tab, err := query.ParseTab(tabFlag)
		if err != nil {
			return err
		}
		sortKey, err := query.ParseSort(sortFlag)
		if err != nil {
			return err
		}

		entries := cat.Entries(query.Params{Tab: tab, Search: search, Category: category, Sort: sortKey})
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries found")
			return nil
		}
		if limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}

		printEntries(out, entries)

		counts := cat.Counts()
		fmt.Fprintln(out, faint(fmt.Sprintf("\n%d shown · %d total · %d completed · %d to do", len(entries), counts.Total, counts.Completed, counts.Todo)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("tab", "t", "all", "status grouping: all, completed, or todo")
	listCmd.Flags().StringP("search", "s", "", "case-insensitive text search")
	listCmd.Flags().StringP("category", "c", "", "genre or cuisine (see 'hobbies categories')")
	listCmd.Flags().String("sort", "", "sort by: title, rating, date, or year")
	listCmd.Flags().IntP("limit", "n", 0, "max entries to show (0 for all)")
}
