// ABOUTME: Cross-catalog statistics shared by the stats command and the MCP stats resource
// ABOUTME: Per-catalog counts plus completions since a cutoff and the latest finished entries

package app

import (
	"sort"
	"time"

	"github.com/harper/hobbies/internal/models"
	"github.com/harper/hobbies/internal/query"
)

// RecentLimit caps how many recently completed entries are reported per catalog.
const RecentLimit = 3

// CatalogStats summarizes one catalog.
type CatalogStats struct {
	Catalog string       `json:"catalog"`
	Counts  query.Counts `json:"counts"`
	// CompletedSince counts entries completed on or after the cutoff.
	CompletedSince int             `json:"completedSince"`
	Recent         []RecentSummary `json:"recent"`
}

// RecentSummary is a completed entry in a stats report.
type RecentSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"`
	Rating int    `json:"rating,omitempty"`
}

// Stats summarizes every catalog. Completions on or after since are counted
// separately; a zero since counts nothing.
func (s *State) Stats(since time.Time) []CatalogStats {
	out := make([]CatalogStats, 0, 3)
	for _, cat := range s.Catalogs() {
		st := CatalogStats{Catalog: cat.Name(), Counts: cat.Counts(), Recent: []RecentSummary{}}

		done := cat.Entries(query.Params{Tab: query.TabCompleted, Sort: query.SortDate})
		for _, e := range done {
			d, ok := e.CompletionDate()
			if !ok {
				continue
			}
			if !since.IsZero() && !d.Before(startOfDate(since)) {
				st.CompletedSince++
			}
			if len(st.Recent) < RecentLimit {
				st.Recent = append(st.Recent, summarize(e, d))
			}
		}
		out = append(out, st)
	}
	return out
}

// TopRated returns up to n completed entries across all catalogs with the
// highest rating, most recent first among equals.
func (s *State) TopRated(n int) []models.Entry {
	var all []models.Entry
	for _, cat := range s.Catalogs() {
		all = append(all, cat.Entries(query.Params{Tab: query.TabCompleted, Sort: query.SortDate})...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		ri, _ := all[i].Rating()
		rj, _ := all[j].Rating()
		return ri > rj
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

func summarize(e models.Entry, d time.Time) RecentSummary {
	r, _ := e.Rating()
	return RecentSummary{
		ID:     e.EntryID(),
		Title:  e.DisplayTitle(),
		Date:   d.Format(models.DateLayout),
		Rating: r,
	}
}

// startOfDate drops the clock and zone so cutoffs compare against calendar
// dates, which parse as UTC midnight.
func startOfDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
