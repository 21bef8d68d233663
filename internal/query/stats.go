// ABOUTME: Category listing and per-tab counts for catalog page headers
// ABOUTME: Both derive from the full list without touching the store

package query

import (
	"sort"

	"github.com/harper/hobbies/internal/models"
)

// Counts summarizes a catalog by status grouping.
type Counts struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Todo       int `json:"todo"`
	Rated      int `json:"rated"`
	// AverageRating is zero when nothing is rated.
	AverageRating float64 `json:"averageRating"`
}

// Categories returns AllCategories followed by every distinct category tag
// in lexical order.
func Categories[T any, P interface {
	*T
	models.Entry
}](items []T) []string {
	seen := make(map[string]bool)
	var cats []string
	for i := range items {
		for _, tag := range P(&items[i]).CategoryTags() {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			cats = append(cats, tag)
		}
	}
	sort.Strings(cats)
	return append([]string{AllCategories}, cats...)
}

// Count tallies items by tab. Todo includes in-progress entries.
func Count[T any, P interface {
	*T
	models.Entry
}](items []T) Counts {
	var c Counts
	sum := 0
	for i := range items {
		e := P(&items[i])
		vocab := e.Statuses()
		status := e.CurrentStatus()

		c.Total++
		switch {
		case status == vocab.Completed:
			c.Completed++
		case vocab.IsPending(status):
			c.Todo++
			if vocab.InProgress != "" && status == vocab.InProgress {
				c.InProgress++
			}
		}
		if r, ok := e.Rating(); ok {
			c.Rated++
			sum += r
		}
	}
	if c.Rated > 0 {
		c.AverageRating = float64(sum) / float64(c.Rated)
	}
	return c
}
