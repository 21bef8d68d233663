// ABOUTME: Recipe model representing a dish with cooking status
// ABOUTME: Recipes start uncatalogued ("none"), get planned ("to-make"), and are marked "made"

package models

import (
	"slices"
	"time"
)

// Recipe statuses. RecipeNone is outside the lifecycle vocabulary: the recipe
// is in the catalog but not on the to-make list.
const (
	RecipeNone   Status = "none"
	RecipeToMake Status = "to-make"
	RecipeMade   Status = "made"
)

// RecipeStatuses is the lifecycle vocabulary for recipes (no in-progress state).
var RecipeStatuses = Vocabulary{
	NotStarted: RecipeToMake,
	Completed:  RecipeMade,
}

// Recipe difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Recipe represents a single dish in the cooking catalog
type Recipe struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Cuisine      string    `json:"cuisine" yaml:"cuisine"`
	ImageURL     string    `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	PrepTime     int       `json:"prepTime" yaml:"prepTime"` // minutes
	CookTime     int       `json:"cookTime" yaml:"cookTime"` // minutes
	Servings     int       `json:"servings" yaml:"servings"`
	Difficulty   string    `json:"difficulty" yaml:"difficulty"`
	Ingredients  []string  `json:"ingredients" yaml:"ingredients"`
	Instructions []string  `json:"instructions" yaml:"instructions"`
	Status       Status    `json:"status" yaml:"status"`
	DateAdded    time.Time `json:"dateAdded" yaml:"dateAdded"`
	DateMade     *string   `json:"dateMade,omitempty" yaml:"dateMade,omitempty"`
	MyRating     *int      `json:"myRating,omitempty" yaml:"myRating,omitempty"`
	MyNotes      *string   `json:"myNotes,omitempty" yaml:"myNotes,omitempty"`
	Tags         []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (r *Recipe) EntryID() string { return r.ID }
func (r *Recipe) SetEntryID(id string) { r.ID = id }
func (r *Recipe) AddedAt() time.Time { return r.DateAdded }
func (r *Recipe) SetDateAdded(t time.Time) { r.DateAdded = t }
func (r *Recipe) DisplayTitle() string { return r.Name }
func (r *Recipe) Statuses() Vocabulary { return RecipeStatuses }
func (r *Recipe) CurrentStatus() Status { return r.Status }
func (r *Recipe) SetStatus(s Status) { r.Status = s }
func (r *Recipe) Rating() (int, bool) { return ratingOf(r.MyRating) }
func (r *Recipe) CompletionFields() []string { return []string{"dateMade", "myRating", "myNotes"} }

// CategoryTags returns the single cuisine value.
func (r *Recipe) CategoryTags() []string {
	if r.Cuisine == "" {
		return nil
	}
	return []string{r.Cuisine}
}

func (r *Recipe) CompletionDate() (time.Time, bool) {
	return parseDate(r.DateMade)
}

// SearchFields returns name, cuisine, and every ingredient.
func (r *Recipe) SearchFields() []string {
	fields := make([]string, 0, len(r.Ingredients)+2)
	fields = append(fields, r.Name, r.Cuisine)
	return append(fields, r.Ingredients...)
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Clone returns a copy of the recipe that shares no memory with r.
func (r *Recipe) Clone() Recipe {
	c := *r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Instructions = slices.Clone(r.Instructions)
	c.Tags = slices.Clone(r.Tags)
	c.DateMade = clonePtr(r.DateMade)
	c.MyRating = clonePtr(r.MyRating)
	c.MyNotes = clonePtr(r.MyNotes)
	return c
}

// MarkCompleted marks the recipe as made with a rating, notes, and date
func (r *Recipe) MarkCompleted(rating int, notes, date string) {
	r.Status = RecipeMade
	r.MyRating = ptr(rating)
	r.MyNotes = ptr(notes)
	r.DateMade = ptr(date)
}

// MarkIncomplete puts the recipe back on the to-make list and clears the
// rating, notes, and date made
func (r *Recipe) MarkIncomplete() {
	r.Status = RecipeToMake
	r.MyRating = nil
	r.MyNotes = nil
	r.DateMade = nil
}
