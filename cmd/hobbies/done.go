// ABOUTME: Done command for marking an entry read, watched, or made
// ABOUTME: Records rating, note, and completion date together

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/content"
	"github.com/harper/hobbies/internal/timeutil"
)

// clock is replaced in tests.
var clock = time.Now

var doneCmd = &cobra.Command{
	Use:     "done <catalog> <id>",
	Aliases: []string{"finish", "complete"},
	Short:   "Mark an entry completed",
	Long: `Mark a book as read, a movie as watched, or a recipe as made.

A rating from 1 to 5 is required. The note becomes the review for books and
movies and the cooking notes for recipes.

Examples:
  hobbies done books book-3 --rating 4
  hobbies done movies movie-2 -r 5 --note "rewatch soon" --date yesterday
  hobbies done recipes recipe-1 -r 3 --date 2024-05-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, _ := cmd.Flags().GetInt("rating")
		note, _ := cmd.Flags().GetString("note")
		dateFlag, _ := cmd.Flags().GetString("date")

		if rating < config.MinRating || rating > config.MaxRating {
			return fmt.Errorf("rating must be between %d and %d, got %d", config.MinRating, config.MaxRating, rating)
		}
		date, err := timeutil.CompletionDate(dateFlag, clock())
		if err != nil {
			return err
		}

		cat, entry, err := catalogAndEntry(args)
		if err != nil {
			return err
		}
		if _, err := cat.MarkCompleted(entry.EntryID(), rating, note, date); err != nil {
			return fmt.Errorf("failed to mark entry completed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Marked as %s: %s %s %s\n",
			cat.Statuses().Completed, entry.DisplayTitle(), amber(content.Stars(rating, config.MaxRating)), faint(date))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)

	doneCmd.Flags().IntP("rating", "r", 0, "rating from 1 to 5 (required)")
	doneCmd.Flags().StringP("note", "m", "", "review or cooking notes")
	doneCmd.Flags().StringP("date", "d", "today", "completion date: today, yesterday, or YYYY-MM-DD")
	_ = doneCmd.MarkFlagRequired("rating")
}
