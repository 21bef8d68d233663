// ABOUTME: View query pipeline that turns a catalog into what a page shows
// ABOUTME: Tab filter, text search, category filter, then a stable sort; pure and side-effect free

package query

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/harper/hobbies/internal/models"
)

// Tab is a coarse status grouping.
type Tab string

const (
	TabAll       Tab = "all"
	TabCompleted Tab = "completed"
	TabTodo      Tab = "todo"
)

// SortKey selects the ordering of the result. The zero value keeps the
// order of the underlying list.
type SortKey string

const (
	SortNone   SortKey = ""
	SortTitle  SortKey = "title"
	SortRating SortKey = "rating"
	SortDate   SortKey = "date"
	SortYear   SortKey = "year"
)

// AllCategories is the category sentinel meaning no category restriction.
const AllCategories = "all"

// Params are the user-controlled view parameters.
type Params struct {
	Tab      Tab
	Search   string
	Category string
	Sort     SortKey
}

// ParseTab converts a flag value into a Tab. Empty means TabAll.
func ParseTab(s string) (Tab, error) {
	switch Tab(strings.ToLower(s)) {
	case "", TabAll, "browse", "search":
		return TabAll, nil
	case TabCompleted, "done":
		return TabCompleted, nil
	case TabTodo, "to-do":
		return TabTodo, nil
	}
	return "", fmt.Errorf("unknown tab %q (want all, completed, or todo)", s)
}

// ParseSort converts a flag value into a SortKey. Empty means SortNone.
func ParseSort(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(s)); k {
	case SortNone, SortTitle, SortRating, SortDate, SortYear:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort %q (want title, rating, date, or year)", s)
}

// Apply runs the pipeline over items and returns a new slice. items is not
// reordered or modified.
func Apply[T any, P interface {
	*T
	models.Entry
}](items []T, p Params) []T {
	needle := strings.ToLower(p.Search)
	out := make([]T, 0, len(items))
	for i := range items {
		e := P(&items[i])
		if !inTab(e, p.Tab) || !matchesSearch(e, needle) || !inCategory(e, p.Category) {
			continue
		}
		out = append(out, items[i])
	}

	if less := lessFunc[T, P](p.Sort); less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(P(&out[i]), P(&out[j]))
		})
	}
	return out
}

func inTab(e models.Entry, tab Tab) bool {
	vocab := e.Statuses()
	switch tab {
	case TabCompleted:
		return e.CurrentStatus() == vocab.Completed
	case TabTodo:
		return vocab.IsPending(e.CurrentStatus())
	}
	return true
}

func matchesSearch(e models.Entry, needle string) bool {
	if needle == "" {
		return true
	}
	for _, f := range e.SearchFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func inCategory(e models.Entry, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	for _, tag := range e.CategoryTags() {
		if tag == category {
			return true
		}
	}
	return false
}

func lessFunc[T any, P interface {
	*T
	models.Entry
}](key SortKey) func(a, b P) bool {
	switch key {
	case SortTitle:
		// Collators keep internal buffers, so each Apply gets its own.
		c := collate.New(language.English, collate.IgnoreCase)
		return func(a, b P) bool {
			at, bt := a.DisplayTitle(), b.DisplayTitle()
			if r := c.CompareString(at, bt); r != 0 {
				return r < 0
			}
			return strings.ToLower(at) < strings.ToLower(bt)
		}
	case SortRating:
		return func(a, b P) bool {
			ar, aok := a.Rating()
			br, bok := b.Rating()
			if aok != bok {
				return aok
			}
			return ar > br
		}
	case SortDate:
		return func(a, b P) bool {
			ad, aok := a.CompletionDate()
			bd, bok := b.CompletionDate()
			if aok != bok {
				return aok
			}
			return ad.After(bd)
		}
	case SortYear:
		return func(a, b P) bool {
			return yearOf(a) > yearOf(b)
		}
	}
	return nil
}

func yearOf(e models.Entry) int {
	if y, ok := e.(models.Yearly); ok {
		return y.ReleaseYear()
	}
	return 0
}
