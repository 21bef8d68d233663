// ABOUTME: Shared terminal output helpers for catalog commands
// ABOUTME: Formats entry rows, bylines, and status marks with color

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/harper/hobbies/internal/collection"
	"github.com/harper/hobbies/internal/config"
	"github.com/harper/hobbies/internal/content"
	"github.com/harper/hobbies/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	amber = color.New(color.FgYellow).SprintFunc()
)

// shortID trims an id for list display.
func shortID(id string) string {
	if len(id) > config.DisplayIDLength {
		return id[:config.DisplayIDLength]
	}
	return id
}

// truncate shortens s to width runes with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// byline is the secondary text shown next to a title.
func byline(e models.Entry) string {
	switch v := e.(type) {
	case *models.Book:
		return v.Author
	case *models.Movie:
		if v.Year > 0 {
			return fmt.Sprintf("%s, %d", v.Director, v.Year)
		}
		return v.Director
	case *models.Recipe:
		parts := []string{v.Cuisine}
		if t := v.TotalTime(); t > 0 {
			parts = append(parts, strconv.Itoa(t)+" min")
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// statusMark is a one-character summary of where an entry is in its lifecycle.
func statusMark(e models.Entry) string {
	vocab := e.Statuses()
	switch status := e.CurrentStatus(); {
	case status == vocab.Completed:
		return green("✓")
	case vocab.InProgress != "" && status == vocab.InProgress:
		return amber("▸")
	case status == vocab.NotStarted:
		return "·"
	}
	return " "
}

// printEntries writes one row per entry: id, status, title, byline, rating, date.
func printEntries(w io.Writer, entries []models.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s %s %s", config.DisplayIDLength, faint(shortID(e.EntryID())), statusMark(e), truncate(e.DisplayTitle(), config.TitleWidth))
		if by := byline(e); by != "" {
			fmt.Fprintf(w, " %s", faint("("+by+")"))
		}
		if r, ok := e.Rating(); ok {
			fmt.Fprintf(w, " %s", amber(content.Stars(r, config.MaxRating)))
		}
		if d, ok := e.CompletionDate(); ok {
			fmt.Fprintf(w, " %s", faint(d.Format(config.DateFormatShort)))
		}
		fmt.Fprintln(w)
	}
}

// catalogAndEntry resolves the <catalog> <id> argument pair shared by the
// entry commands.
func catalogAndEntry(args []string) (collection.Catalog, models.Entry, error) {
	cat, err := state.Catalog(args[0])
	if err != nil {
		return nil, nil, err
	}
	entry, err := cat.Find(strings.TrimSpace(args[1]))
	if err != nil {
		return nil, nil, err
	}
	return cat, entry, nil
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
