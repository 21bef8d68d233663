// ABOUTME: Movie model representing a tracked film with watch status
// ABOUTME: Provides watched/to-watch transitions and exposes the release year for sorting

package models

import (
	"slices"
	"time"
)

// Movie statuses
const (
	MovieToWatch           Status = "to-watch"
	MovieCurrentlyWatching Status = "currently-watching"
	MovieWatched           Status = "watched"
)

// MovieStatuses is the lifecycle vocabulary for movies.
var MovieStatuses = Vocabulary{
	NotStarted: MovieToWatch,
	InProgress: MovieCurrentlyWatching,
	Completed:  MovieWatched,
}

// Movie represents a single film in the watch catalog
type Movie struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Director        string    `json:"director" yaml:"director"`
	Year            int       `json:"year" yaml:"year"`
	Genre           []string  `json:"genre" yaml:"genre"`
	PosterURL       string    `json:"posterUrl" yaml:"posterUrl"`
	OfficialSummary string    `json:"officialSummary" yaml:"officialSummary"`
	OfficialLink    string    `json:"officialLink" yaml:"officialLink"`
	Status          Status    `json:"status" yaml:"status"`
	DateAdded       time.Time `json:"dateAdded" yaml:"dateAdded"`
	DateWatched     *string   `json:"dateWatched,omitempty" yaml:"dateWatched,omitempty"`
	MyRating        *int      `json:"myRating,omitempty" yaml:"myRating,omitempty"`
	MyReview        *string   `json:"myReview,omitempty" yaml:"myReview,omitempty"`
	Tags            []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Runtime         *int      `json:"runtime,omitempty" yaml:"runtime,omitempty"` // minutes
}

// NewMovie creates a to-watch Movie.
func NewMovie(title, director string, year int, genre ...string) *Movie {
	return &Movie{
		Title:    title,
		Director: director,
		Year:     year,
		Genre:    genre,
		Status:   MovieToWatch,
	}
}

func (m *Movie) EntryID() string { return m.ID }
func (m *Movie) SetEntryID(id string) { m.ID = id }
func (m *Movie) AddedAt() time.Time { return m.DateAdded }
func (m *Movie) SetDateAdded(t time.Time) { m.DateAdded = t }
func (m *Movie) DisplayTitle() string { return m.Title }
func (m *Movie) Statuses() Vocabulary { return MovieStatuses }
func (m *Movie) CurrentStatus() Status { return m.Status }
func (m *Movie) SetStatus(s Status) { m.Status = s }
func (m *Movie) Rating() (int, bool) { return ratingOf(m.MyRating) }
func (m *Movie) CompletionFields() []string { return []string{"dateWatched", "myRating", "myReview"} }
func (m *Movie) CategoryTags() []string { return m.Genre }
func (m *Movie) ReleaseYear() int { return m.Year }

func (m *Movie) CompletionDate() (time.Time, bool) {
	return parseDate(m.DateWatched)
}

// SearchFields returns title, director, and every genre.
func (m *Movie) SearchFields() []string {
	fields := make([]string, 0, len(m.Genre)+2)
	fields = append(fields, m.Title, m.Director)
	return append(fields, m.Genre...)
}

// Clone returns a copy of the movie that shares no memory with m.
func (m *Movie) Clone() Movie {
	c := *m
	c.Genre = slices.Clone(m.Genre)
	c.Tags = slices.Clone(m.Tags)
	c.DateWatched = clonePtr(m.DateWatched)
	c.MyRating = clonePtr(m.MyRating)
	c.MyReview = clonePtr(m.MyReview)
	c.Runtime = clonePtr(m.Runtime)
	return c
}

// MarkCompleted marks the movie as watched
func (m *Movie) MarkCompleted(rating int, review, date string) {
	m.Status = MovieWatched
	m.MyRating = ptr(rating)
	m.MyReview = ptr(review)
	m.DateWatched = ptr(date)
}

// MarkIncomplete returns the movie to the watchlist
func (m *Movie) MarkIncomplete() {
	m.Status = MovieToWatch
	m.MyRating = nil
	m.MyReview = nil
	m.DateWatched = nil
}
