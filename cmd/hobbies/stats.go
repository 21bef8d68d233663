// ABOUTME: Stats command for per-catalog progress summaries
// ABOUTME: Shows counts, average rating, completions in a period, and top-rated entries

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/hobbies/internal/app"
	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/content"
	"github.com/harper/hobbies/internal/storage"
	"github.com/harper/hobbies/internal/timeutil"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Summarize every catalog: totals, completed and to-do counts, average
rating, how much you finished in the chosen period, when each catalog was last
saved, and your top-rated entries.

Examples:
  hobbies stats
  hobbies stats --period year --top 10
  hobbies stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		period, _ := cmd.Flags().GetString("period")
		top, _ := cmd.Flags().GetInt("top")
		asJSON, _ := cmd.Flags().GetBool("json")

		since, ok := timeutil.ParsePeriod(period, clock())
		if !ok {
			return fmt.Errorf("invalid period %q: use today, yesterday, week, month, or year", period)
		}
		stats := state.Stats(since)
		out := cmd.OutOrStdout()

		if asJSON {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		for _, st := range stats {
			printCatalogStats(cmd, st, period)
		}

		if top > 0 {
			best := state.TopRated(top)
			if len(best) > 0 {
				fmt.Fprintln(out, bold("Top rated"))
				printEntries(out, best)
			}
		}
		return nil
	},
}

func printCatalogStats(cmd *cobra.Command, st app.CatalogStats, period string) {
	out := cmd.OutOrStdout()
	c := st.Counts

	fmt.Fprintln(out, bold(strings.ToUpper(st.Catalog)))
	fmt.Fprintf(out, "  %s %d  %s %d  %s %d", faint("total"), c.Total, faint("completed"), c.Completed, faint("to do"), c.Todo)
	if c.InProgress > 0 {
		fmt.Fprintf(out, "  %s %d", faint("in progress"), c.InProgress)
	}
	fmt.Fprintln(out)
	if c.Rated > 0 {
		fmt.Fprintf(out, "  %s %.1f %s\n", faint("average rating"), c.AverageRating, faint(fmt.Sprintf("(%d rated)", c.Rated)))
	}
	fmt.Fprintf(out, "  %s %d\n", faint("completed ("+period+")"), st.CompletedSince)
	for _, r := range st.Recent {
		fmt.Fprintf(out, "  %s %s %s\n", faint(r.Date), r.Title, amber(content.Stars(r.Rating, config.MaxRating)))
	}
	if at, ok := lastSaved(st.Catalog); ok {
		fmt.Fprintf(out, "  %s %s\n", faint("last saved"), at.Local().Format(config.DateFormatShort+" 15:04"))
	}
	fmt.Fprintln(out)
}

// lastSaved reports when the backend last wrote catalog. Catalogs still on
// the sample list and backends without timestamps report false.
func lastSaved(catalog string) (time.Time, bool) {
	ts, ok := kvStore.(storage.Timestamped)
	if !ok {
		return time.Time{}, false
	}
	at, found, err := ts.UpdatedAt(catalog)
	if err != nil {
		logger.Debug().Err(err).Str("catalog", catalog).Msg("could not read last saved time")
		return time.Time{}, false
	}
	return at, found
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("period", "p", "month", "count completions since: today, yesterday, week, month, or year")
	statsCmd.Flags().Int("top", 5, "number of top-rated entries to show (0 to hide)")
	statsCmd.Flags().Bool("json", false, "print statistics as JSON")
}
