// ABOUTME: Catalog entry contract shared by books, movies, and recipes
// ABOUTME: Defines the status vocabulary and the completed/not-started lifecycle methods

package models

import "time"

// DateLayout is the calendar-date format used for completion dates.
const DateLayout = "2006-01-02"

// Status is a domain-specific status value (e.g. "to-read", "watched").
type Status string

// Vocabulary maps the generic three-state lifecycle onto a domain's status values.
// InProgress is empty for domains without an in-progress state.
type Vocabulary struct {
	NotStarted Status
	InProgress Status
	Completed  Status
}

// IsPending reports whether s is the not-started or in-progress status.
func (v Vocabulary) IsPending(s Status) bool {
	if s == "" {
		return false
	}
	return s == v.NotStarted || (v.InProgress != "" && s == v.InProgress)
}

// Valid reports whether s belongs to the vocabulary.
func (v Vocabulary) Valid(s Status) bool {
	return s == v.Completed || v.IsPending(s)
}

// Entry is the behavior every catalog entry exposes to the collection store
// and the view query. Implemented on pointer receivers.
type Entry interface {
	EntryID() string
	SetEntryID(id string)
	AddedAt() time.Time
	SetDateAdded(t time.Time)
	DisplayTitle() string

	Statuses() Vocabulary
	CurrentStatus() Status
	SetStatus(s Status)

	// Rating returns the personal rating, if any.
	Rating() (int, bool)
	// CompletionDate returns the parsed completion date, if any.
	CompletionDate() (time.Time, bool)

	// CategoryTags are the classification values used by the category filter.
	CategoryTags() []string
	// SearchFields are the values matched by text search.
	SearchFields() []string

	// CompletionFields are the JSON names of the completion date, rating,
	// and note, which only MarkCompleted and MarkIncomplete may change.
	CompletionFields() []string

	// MarkCompleted moves the entry to the completed status and records the
	// rating, note, and completion date together.
	MarkCompleted(rating int, note, date string)
	// MarkIncomplete moves the entry back to the not-started status and
	// clears rating, note, and completion date together.
	MarkIncomplete()
}

// Yearly is implemented by entries that carry a release year.
type Yearly interface {
	ReleaseYear() int
}

// parseDate parses an optional completion date.
func parseDate(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		// Accept full timestamps written by older clients
		t, err = time.Parse(time.RFC3339, *s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

func ratingOf(r *int) (int, bool) {
	if r == nil {
		return 0, false
	}
	return *r, true
}

func ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
