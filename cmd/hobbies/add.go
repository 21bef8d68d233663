// ABOUTME: Add command for putting a new book or movie in its catalog
// ABOUTME: New entries start on the to-do list with a generated ID

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/collection"
	"github.com/harper/hobbies/internal/content"
	"github.com/harper/hobbies/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add <catalog> <title>",
	Short: "Add a book or movie",
	Long: `Add a book or movie. It starts as to-read or to-watch.

Recipes come from the bundled recipe list and cannot be added.

Examples:
  hobbies add books "The Left Hand of Darkness" --by "Ursula K. Le Guin" --genre "Science Fiction"
  hobbies add movies "Paterson" --by "Jim Jarmusch" --year 2016 --genre Drama,Comedy`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		by, _ := cmd.Flags().GetString("by")
		year, _ := cmd.Flags().GetInt("year")
		genreFlag, _ := cmd.Flags().GetString("genre")
		summary, _ := cmd.Flags().GetString("summary")
		link, _ := cmd.Flags().GetString("link")

		title := strings.TrimSpace(args[1])
		by = strings.TrimSpace(by)
		if title == "" || by == "" {
			return fmt.Errorf("title and --by are required")
		}
		genres := splitList(genreFlag)

		cat, err := state.Catalog(args[0])
		if err != nil {
			return err
		}

		var added models.Entry
		switch cat.Name() {
		case state.Books.Name():
			b := models.NewBook(title, by, genres...)
			b.OfficialSummary = content.ToMarkdown(summary)
			b.OfficialLink = link
			stored, err := state.Books.Add(*b)
			if err != nil {
				return fmt.Errorf("failed to add book: %w", err)
			}
			added = &stored
		case state.Movies.Name():
			m := models.NewMovie(title, by, year, genres...)
			m.OfficialSummary = content.ToMarkdown(summary)
			m.OfficialLink = link
			stored, err := state.Movies.Add(*m)
			if err != nil {
				return fmt.Errorf("failed to add movie: %w", err)
			}
			added = &stored
		default:
			return fmt.Errorf("add %s: %w", cat.Name(), collection.ErrUnsupported)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", bold(added.DisplayTitle()), faint(added.EntryID()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("by", "b", "", "author (books) or director (movies)")
	addCmd.Flags().IntP("year", "y", 0, "release year (movies)")
	addCmd.Flags().StringP("genre", "g", "", "comma-separated genres")
	addCmd.Flags().String("summary", "", "official summary; HTML is converted to Markdown")
	addCmd.Flags().String("link", "", "official link")
	_ = addCmd.MarkFlagRequired("by")
}
