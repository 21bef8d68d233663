// ABOUTME: Tests for the embedded seed datasets
// ABOUTME: Checks ids are unique and completion fields agree with each entry's status

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/hobbies/internal/models"
)

func checkEntries[T any, P interface {
	*T
	models.Entry
}](t *testing.T, items []T) {
	t.Helper()

	require.NotEmpty(t, items)
	seen := make(map[string]bool, len(items))
	for i := range items {
		e := P(&items[i])
		assert.NotEmpty(t, e.EntryID())
		assert.False(t, seen[e.EntryID()], "duplicate id %s", e.EntryID())
		seen[e.EntryID()] = true

		assert.NotEmpty(t, e.DisplayTitle())

		_, hasDate := e.CompletionDate()
		completed := e.CurrentStatus() == e.Statuses().Completed
		assert.Equal(t, completed, hasDate, "%s: completion date must be present exactly when completed", e.EntryID())
		if completed {
			r, ok := e.Rating()
			assert.True(t, ok && r > 0, "%s: completed entries carry a positive rating", e.EntryID())
		}
	}
}

func TestBooks(t *testing.T) {
	books, err := Books()
	require.NoError(t, err)
	checkEntries(t, books)
	assert.False(t, books[0].DateAdded.IsZero())
}

func TestMovies(t *testing.T) {
	movies, err := Movies()
	require.NoError(t, err)
	checkEntries(t, movies)
	for _, m := range movies {
		assert.Positive(t, m.Year, "%s has no year", m.ID)
	}
}

func TestRecipes(t *testing.T) {
	recipes, err := Recipes()
	require.NoError(t, err)
	checkEntries(t, recipes)
	for _, r := range recipes {
		assert.NotEmpty(t, r.Ingredients, "%s has no ingredients", r.ID)
		assert.Contains(t, []models.Status{models.RecipeNone, models.RecipeToMake, models.RecipeMade}, r.Status)
	}
}

func TestSeedsAreFreshCopies(t *testing.T) {
	first, err := Books()
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := Books()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}
