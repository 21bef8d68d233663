// ABOUTME: Content processing for catalog entries
// ABOUTME: Normalizes HTML summaries to Markdown and builds the detail page shown by `show`

package content

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/harper/hobbies/internal/models"
)

// htmlTagPattern matches common HTML tags
var htmlTagPattern = regexp.MustCompile(`<\s*(p|div|span|a|br|img|h[1-6]|ul|ol|li|table|tr|td|th|strong|em|b|i|code|pre|blockquote)[^>]*>`)

// IsHTML checks if content appears to be HTML
func IsHTML(content string) bool {
	if strings.Contains(content, "<!DOCTYPE") || strings.Contains(content, "<html") {
		return true
	}
	return htmlTagPattern.MatchString(content)
}

// ToMarkdown converts HTML content to Markdown.
// If the content doesn't appear to be HTML, returns it trimmed.
func ToMarkdown(content string) string {
	if !IsHTML(content) {
		return strings.TrimSpace(content)
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(markdown)
}

// Bullets renders items as a Markdown bullet list.
func Bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", ToMarkdown(item))
	}
	return b.String()
}

// Steps renders items as a numbered Markdown list.
func Steps(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ToMarkdown(item))
	}
	return b.String()
}

// Stars renders a rating as filled and empty stars out of max.
func Stars(rating, max int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > max {
		rating = max
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", max-rating)
}

// Detail renders the Markdown detail page for an entry.
func Detail(e models.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.DisplayTitle())

	switch v := e.(type) {
	case *models.Book:
		fmt.Fprintf(&b, "**Author:** %s  \n", v.Author)
		writeTags(&b, "Genre", v.Genre)
		writeCommon(&b, e)
		writeSection(&b, "Summary", ToMarkdown(v.OfficialSummary))
		writeNote(&b, "Review", v.MyReview)
		writeLink(&b, v.OfficialLink)
	case *models.Movie:
		fmt.Fprintf(&b, "**Director:** %s  \n", v.Director)
		if v.Year > 0 {
			fmt.Fprintf(&b, "**Year:** %d  \n", v.Year)
		}
		if v.Runtime != nil {
			fmt.Fprintf(&b, "**Runtime:** %d min  \n", *v.Runtime)
		}
		writeTags(&b, "Genre", v.Genre)
		writeCommon(&b, e)
		writeSection(&b, "Summary", ToMarkdown(v.OfficialSummary))
		writeNote(&b, "Review", v.MyReview)
		writeLink(&b, v.OfficialLink)
	case *models.Recipe:
		fmt.Fprintf(&b, "**Cuisine:** %s  \n", v.Cuisine)
		fmt.Fprintf(&b, "**Time:** %d min prep, %d min cook  \n", v.PrepTime, v.CookTime)
		fmt.Fprintf(&b, "**Serves:** %d  \n", v.Servings)
		if v.Difficulty != "" {
			fmt.Fprintf(&b, "**Difficulty:** %s  \n", v.Difficulty)
		}
		writeCommon(&b, e)
		writeSection(&b, "Ingredients", Bullets(v.Ingredients))
		writeSection(&b, "Instructions", Steps(v.Instructions))
		writeNote(&b, "Notes", v.MyNotes)
	default:
		writeCommon(&b, e)
	}
	return b.String()
}

func writeTags(b *strings.Builder, label string, tags []string) {
	if len(tags) > 0 {
		fmt.Fprintf(b, "**%s:** %s  \n", label, strings.Join(tags, ", "))
	}
}

func writeCommon(b *strings.Builder, e models.Entry) {
	fmt.Fprintf(b, "**Status:** %s  \n", e.CurrentStatus())
	if r, ok := e.Rating(); ok {
		fmt.Fprintf(b, "**Rating:** %s  \n", Stars(r, 5))
	}
	if d, ok := e.CompletionDate(); ok {
		fmt.Fprintf(b, "**Completed:** %s  \n", d.Format(models.DateLayout))
	}
	fmt.Fprintf(b, "**ID:** `%s`\n", e.EntryID())
}

func writeSection(b *strings.Builder, heading, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n%s\n", heading, strings.TrimRight(body, "\n"))
}

func writeNote(b *strings.Builder, heading string, note *string) {
	if note != nil && strings.TrimSpace(*note) != "" {
		writeSection(b, heading, "> "+strings.ReplaceAll(strings.TrimSpace(*note), "\n", "\n> "))
	}
}

func writeLink(b *strings.Builder, link string) {
	if link != "" {
		fmt.Fprintf(b, "\n[More info](%s)\n", link)
	}
}
