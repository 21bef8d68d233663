// ABOUTME: Tests for content processing and entry detail rendering
// ABOUTME: Validates HTML detection, Markdown conversion, and per-domain detail pages

package content

import (
	"strings"
	"testing"

	"github.com/harper/hobbies/internal/models"
)

func TestIsHTML(t *testing.T) {
	tests := []struct {
		content  string
		expected bool
	}{
		{"A linguist is recruited by the military.", false},
		{"<p>Set on the desert planet Arrakis.</p>", true},
		{"Read the <a href=\"https://openlibrary.org\">record</a>.", true},
		{"<!DOCTYPE html><html><body>Test</body></html>", true},
		{"Line one<br>Line two", true},
		{"", false},
		{"5 < 10 and 10 > 5", false},
	}

	for _, tt := range tests {
		if got := IsHTML(tt.content); got != tt.expected {
			t.Errorf("IsHTML(%q) = %v, want %v", tt.content, got, tt.expected)
		}
	}
}

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "plain summary is trimmed",
			input:    "  Paul Atreides unites with Chani.\n",
			contains: []string{"Paul Atreides unites with Chani."},
		},
		{
			name:     "emphasis converted",
			input:    "<p>Set on <strong>Arrakis</strong>, a <em>desert</em> planet.</p>",
			contains: []string{"**Arrakis**", "*desert*"},
			excludes: []string{"<p>", "<strong>", "<em>"},
		},
		{
			name:     "link converted",
			input:    "<a href=\"https://example.com\">Example</a>",
			contains: []string{"[Example]", "(https://example.com)"},
			excludes: []string{"<a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToMarkdown(tt.input)
			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("ToMarkdown() should contain %q, got %q", s, result)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(result, s) {
					t.Errorf("ToMarkdown() should NOT contain %q, got %q", s, result)
				}
			}
		})
	}

	if got := ToMarkdown(""); got != "" {
		t.Errorf("ToMarkdown(\"\") = %q", got)
	}
}

func TestLists(t *testing.T) {
	if got := Bullets([]string{"eggs", "pecorino"}); got != "- eggs\n- pecorino\n" {
		t.Errorf("Bullets() = %q", got)
	}
	if got := Steps([]string{"Boil", "Toss"}); got != "1. Boil\n2. Toss\n" {
		t.Errorf("Steps() = %q", got)
	}
	if got := Bullets(nil); got != "" {
		t.Errorf("Bullets(nil) = %q", got)
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{9, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := Stars(tt.rating, 5); got != tt.want {
			t.Errorf("Stars(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestDetailBook(t *testing.T) {
	b := models.NewBook("Dune", "Frank Herbert", "Science Fiction")
	b.ID = "book-1"
	b.OfficialSummary = "<p>Spice <strong>must</strong> flow.</p>"
	b.MarkCompleted(4, "Worms!", "2024-02-14")

	got := Detail(b)
	for _, want := range []string{"# Dune", "Frank Herbert", "Science Fiction", "★★★★☆", "2024-02-14", "**must**", "> Worms!", "`book-1`"} {
		if !strings.Contains(got, want) {
			t.Errorf("Detail(book) missing %q:\n%s", want, got)
		}
	}
}

func TestDetailRecipe(t *testing.T) {
	r := &models.Recipe{
		ID:           "recipe-1",
		Name:         "Carbonara",
		Cuisine:      "Italian",
		PrepTime:     10,
		CookTime:     15,
		Servings:     2,
		Ingredients:  []string{"spaghetti", "guanciale"},
		Instructions: []string{"Boil pasta", "Crisp guanciale"},
		Status:       models.RecipeToMake,
	}

	got := Detail(r)
	for _, want := range []string{"# Carbonara", "Italian", "10 min prep", "## Ingredients", "- guanciale", "## Instructions", "2. Crisp guanciale"} {
		if !strings.Contains(got, want) {
			t.Errorf("Detail(recipe) missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Rating") || strings.Contains(got, "## Notes") {
		t.Errorf("uncompleted recipe should not show rating or notes:\n%s", got)
	}
}

func TestDetailMovie(t *testing.T) {
	m := models.NewMovie("Arrival", "Denis Villeneuve", 2016, "Drama")
	m.ID = "movie-1"
	got := Detail(m)
	for _, want := range []string{"# Arrival", "Denis Villeneuve", "2016", "to-watch"} {
		if !strings.Contains(got, want) {
			t.Errorf("Detail(movie) missing %q:\n%s", want, got)
		}
	}
}
