// ABOUTME: Date helpers for completion dates and stats periods
// ABOUTME: Resolves "today"/"yesterday"/YYYY-MM-DD inputs and period cutoffs like this week

package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/hobbies/internal/models"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent Sunday.
// Note: Week starts on Sunday
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns midnight of January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// ParsePeriod converts a period string to the start of that period relative
// to now. Supported values: "today", "yesterday", "week", "month", "year".
func ParsePeriod(period string, now time.Time) (time.Time, bool) {
	switch strings.ToLower(period) {
	case "today":
		return StartOfDay(now), true
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), true
	case "week":
		return StartOfWeek(now), true
	case "month":
		return StartOfMonth(now), true
	case "year":
		return StartOfYear(now), true
	default:
		return time.Time{}, false
	}
}

// CompletionDate resolves user input into a calendar date string.
// Empty input and "today" mean now's date; "yesterday" the day before;
// anything else must already be YYYY-MM-DD.
func CompletionDate(input string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return now.Format(models.DateLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(models.DateLayout), nil
	}

	d, err := time.Parse(models.DateLayout, strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD, today, or yesterday)", input)
	}
	return d.Format(models.DateLayout), nil
}
