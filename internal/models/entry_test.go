// ABOUTME: Tests for catalog entry models and their status lifecycle
// ABOUTME: Verifies completion fields are set and cleared together for every domain

package models

import (
	"testing"
	"time"
)

func TestBookMarkCompletedAndIncomplete(t *testing.T) {
	book := NewBook("Dune", "Frank Herbert", "Sci-Fi")

	book.MarkCompleted(5, "Spice must flow", "2024-03-01")

	if book.Status != BookRead {
		t.Errorf("expected status %q, got %q", BookRead, book.Status)
	}
	if r, ok := book.Rating(); !ok || r != 5 {
		t.Errorf("expected rating 5, got %d (present=%v)", r, ok)
	}
	if book.MyReview == nil || *book.MyReview != "Spice must flow" {
		t.Errorf("expected review to be set, got %v", book.MyReview)
	}
	date, ok := book.CompletionDate()
	if !ok {
		t.Fatal("expected completion date to be present")
	}
	if !date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected completion date %v", date)
	}

	book.MarkIncomplete()

	if book.Status != BookToRead {
		t.Errorf("expected status %q, got %q", BookToRead, book.Status)
	}
	if book.MyRating != nil || book.MyReview != nil || book.DateFinished != nil {
		t.Error("expected rating, review, and finish date to be cleared together")
	}
}

func TestMovieLifecycle(t *testing.T) {
	movie := NewMovie("Arrival", "Denis Villeneuve", 2016, "Sci-Fi", "Drama")
	movie.MarkCompleted(4, "", "2024-01-10")

	if movie.Status != MovieWatched {
		t.Errorf("expected status %q, got %q", MovieWatched, movie.Status)
	}
	if movie.DateWatched == nil || *movie.DateWatched != "2024-01-10" {
		t.Errorf("expected dateWatched to be set, got %v", movie.DateWatched)
	}
	if movie.ReleaseYear() != 2016 {
		t.Errorf("expected year 2016, got %d", movie.ReleaseYear())
	}

	movie.MarkIncomplete()
	if movie.Status != MovieToWatch {
		t.Errorf("expected status %q, got %q", MovieToWatch, movie.Status)
	}
	if _, ok := movie.CompletionDate(); ok {
		t.Error("expected completion date to be cleared")
	}
}

func TestRecipeLifecycle(t *testing.T) {
	recipe := &Recipe{Name: "Pad Thai", Cuisine: "Thai", Status: RecipeNone}

	recipe.MarkCompleted(3, "needs more lime", "2024-05-05")
	if recipe.Status != RecipeMade {
		t.Errorf("expected status %q, got %q", RecipeMade, recipe.Status)
	}
	if recipe.MyNotes == nil || *recipe.MyNotes != "needs more lime" {
		t.Errorf("expected notes to be set, got %v", recipe.MyNotes)
	}

	recipe.MarkIncomplete()
	if recipe.Status != RecipeToMake {
		t.Errorf("expected status %q, got %q", RecipeToMake, recipe.Status)
	}
	if recipe.MyRating != nil || recipe.MyNotes != nil || recipe.DateMade != nil {
		t.Error("expected rating, notes, and date made to be cleared together")
	}
}

func TestRecipeCategoryTags(t *testing.T) {
	if tags := (&Recipe{}).CategoryTags(); tags != nil {
		t.Errorf("expected no tags for empty cuisine, got %v", tags)
	}
	tags := (&Recipe{Cuisine: "Italian"}).CategoryTags()
	if len(tags) != 1 || tags[0] != "Italian" {
		t.Errorf("expected [Italian], got %v", tags)
	}
}

func TestVocabulary(t *testing.T) {
	tests := []struct {
		name    string
		vocab   Vocabulary
		status  Status
		pending bool
		valid   bool
	}{
		{"book to-read", BookStatuses, BookToRead, true, true},
		{"book currently-reading", BookStatuses, BookCurrentlyReading, true, true},
		{"book read", BookStatuses, BookRead, false, true},
		{"movie bogus", MovieStatuses, "bogus", false, false},
		{"recipe to-make", RecipeStatuses, RecipeToMake, true, true},
		{"recipe none", RecipeStatuses, RecipeNone, false, false},
		{"recipe empty", RecipeStatuses, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vocab.IsPending(tt.status); got != tt.pending {
				t.Errorf("IsPending(%q) = %v, want %v", tt.status, got, tt.pending)
			}
			if got := tt.vocab.Valid(tt.status); got != tt.valid {
				t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestCompletionDateParsing(t *testing.T) {
	bad := "not-a-date"
	book := &Book{DateFinished: &bad}
	if _, ok := book.CompletionDate(); ok {
		t.Error("expected unparseable date to be treated as absent")
	}

	stamp := "2024-02-03T10:00:00Z"
	book.DateFinished = &stamp
	if _, ok := book.CompletionDate(); !ok {
		t.Error("expected RFC3339 timestamps to be accepted")
	}
}

func TestSearchFields(t *testing.T) {
	recipe := &Recipe{Name: "Carbonara", Cuisine: "Italian", Ingredients: []string{"guanciale", "pecorino"}}
	fields := recipe.SearchFields()
	want := []string{"Carbonara", "Italian", "guanciale", "pecorino"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: got %q, want %q", i, fields[i], want[i])
		}
	}
}

func TestCloneSharesNothing(t *testing.T) {
	movie := NewMovie("Arrival", "Denis Villeneuve", 2016, "Sci-Fi")
	movie.Runtime = ptr(116)
	movie.MarkCompleted(5, "heptapods", "2024-01-05")
	c := movie.Clone()
	c.Genre[0] = "changed"
	*c.MyRating = 1
	*c.Runtime = 90
	*c.DateWatched = "1999-01-01"
	if movie.Genre[0] != "Sci-Fi" || *movie.MyRating != 5 || *movie.Runtime != 116 || *movie.DateWatched != "2024-01-05" {
		t.Errorf("clone shares memory with movie: %+v", movie)
	}

	recipe := &Recipe{Name: "Pad Thai", Ingredients: []string{"tamarind"}, Instructions: []string{"soak noodles"}, Tags: []string{}}
	rc := recipe.Clone()
	rc.Ingredients[0] = "ketchup"
	rc.Instructions[0] = "boil"
	if recipe.Ingredients[0] != "tamarind" || recipe.Instructions[0] != "soak noodles" {
		t.Errorf("clone shares memory with recipe: %+v", recipe)
	}
	if rc.Tags == nil || rc.MyNotes != nil {
		t.Errorf("clone should keep empty tags and nil notes: %+v", rc)
	}

	book := NewBook("Emma", "Jane Austen")
	bc := book.Clone()
	if bc.MyRating != nil || bc.DateFinished != nil {
		t.Errorf("clone should keep nil pointers: %+v", bc)
	}
}
