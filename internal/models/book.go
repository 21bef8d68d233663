// ABOUTME: Book model representing a tracked book with reading status
// ABOUTME: Provides read/to-read transitions that keep rating, review, and finish date in lockstep

package models

import (
	"slices"
	"time"
)

// Book statuses
const (
	BookToRead           Status = "to-read"
	BookCurrentlyReading Status = "currently-reading"
	BookRead             Status = "read"
)

// BookStatuses is the lifecycle vocabulary for books.
var BookStatuses = Vocabulary{
	NotStarted: BookToRead,
	InProgress: BookCurrentlyReading,
	Completed:  BookRead,
}

// Book represents a single book in the reading catalog
type Book struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Author          string    `json:"author" yaml:"author"`
	Genre           []string  `json:"genre" yaml:"genre"`
	CoverImageURL   string    `json:"coverImageUrl" yaml:"coverImageUrl"`
	OfficialSummary string    `json:"officialSummary" yaml:"officialSummary"`
	OfficialLink    string    `json:"officialLink" yaml:"officialLink"`
	Status          Status    `json:"status" yaml:"status"`
	DateAdded       time.Time `json:"dateAdded" yaml:"dateAdded"`
	DateFinished    *string   `json:"dateFinished,omitempty" yaml:"dateFinished,omitempty"`
	MyRating        *int      `json:"myRating,omitempty" yaml:"myRating,omitempty"`
	MyReview        *string   `json:"myReview,omitempty" yaml:"myReview,omitempty"`
	Tags            []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewBook creates a to-read Book with the given title and author.
// ID and DateAdded are assigned by the collection store on add.
func NewBook(title, author string, genre ...string) *Book {
	return &Book{
		Title:  title,
		Author: author,
		Genre:  genre,
		Status: BookToRead,
	}
}

func (b *Book) EntryID() string { return b.ID }
func (b *Book) SetEntryID(id string) { b.ID = id }
func (b *Book) AddedAt() time.Time { return b.DateAdded }
func (b *Book) SetDateAdded(t time.Time) { b.DateAdded = t }
func (b *Book) DisplayTitle() string { return b.Title }
func (b *Book) Statuses() Vocabulary { return BookStatuses }
func (b *Book) CurrentStatus() Status { return b.Status }
func (b *Book) SetStatus(s Status) { b.Status = s }
func (b *Book) Rating() (int, bool) { return ratingOf(b.MyRating) }
func (b *Book) CompletionFields() []string { return []string{"dateFinished", "myRating", "myReview"} }
func (b *Book) CategoryTags() []string { return b.Genre }

// CompletionDate returns when the book was finished.
func (b *Book) CompletionDate() (time.Time, bool) {
	return parseDate(b.DateFinished)
}

// SearchFields returns title, author, and every genre.
func (b *Book) SearchFields() []string {
	fields := make([]string, 0, len(b.Genre)+2)
	fields = append(fields, b.Title, b.Author)
	return append(fields, b.Genre...)
}

// Clone returns a copy of the book that shares no memory with b.
func (b *Book) Clone() Book {
	c := *b
	c.Genre = slices.Clone(b.Genre)
	c.Tags = slices.Clone(b.Tags)
	c.DateFinished = clonePtr(b.DateFinished)
	c.MyRating = clonePtr(b.MyRating)
	c.MyReview = clonePtr(b.MyReview)
	return c
}

// MarkCompleted marks the book as read with a rating, review, and finish date
func (b *Book) MarkCompleted(rating int, review, date string) {
	b.Status = BookRead
	b.MyRating = ptr(rating)
	b.MyReview = ptr(review)
	b.DateFinished = ptr(date)
}

// MarkIncomplete moves the book back to the to-read pile and forgets the
// rating, review, and finish date
func (b *Book) MarkIncomplete() {
	b.Status = BookToRead
	b.MyRating = nil
	b.MyReview = nil
	b.DateFinished = nil
}
