// ABOUTME: Categories command for listing genres or cuisines in a catalog
// ABOUTME: Prints the category filter values with entry counts

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/query"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories <catalog>",
	Aliases: []string{"cats", "genres"},
	Short:   "List genres or cuisines",
	Long:    "List the values accepted by 'hobbies list --category': genres for books and movies, cuisines for recipes",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := state.Catalog(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range cat.Categories() {
			n := len(cat.Entries(query.Params{Category: c}))
			fmt.Fprintf(out, "%s %s\n", c, faint(fmt.Sprintf("(%d)", n)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
