// ABOUTME: Tests for date helpers
// ABOUTME: Uses a fixed clock so period boundaries are deterministic

package timeutil

import (
	"testing"
	"time"
)

// Wednesday afternoon.
var now = time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(now)
	want := time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, expected %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	got := StartOfWeek(now)
	if got.Weekday() != time.Sunday {
		t.Errorf("StartOfWeek() weekday = %v, expected Sunday", got.Weekday())
	}
	if want := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartOfWeek() = %v, expected %v", got, want)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		period   string
		expected time.Time
		valid    bool
	}{
		{"today", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), true},
		{"week", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"Month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"invalid", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tc := range tests {
		result, ok := ParsePeriod(tc.period, now)
		if ok != tc.valid {
			t.Errorf("ParsePeriod(%q) valid = %v, expected %v", tc.period, ok, tc.valid)
			continue
		}
		if tc.valid && !result.Equal(tc.expected) {
			t.Errorf("ParsePeriod(%q) = %v, expected %v", tc.period, result, tc.expected)
		}
	}
}

func TestCompletionDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "2024-03-13", false},
		{"today", "2024-03-13", false},
		{"Yesterday", "2024-03-12", false},
		{"2023-12-31", "2023-12-31", false},
		{" 2023-01-02 ", "2023-01-02", false},
		{"31/12/2023", "", true},
		{"last tuesday", "", true},
	}

	for _, tc := range tests {
		got, err := CompletionDate(tc.input, now)
		if (err != nil) != tc.wantErr {
			t.Errorf("CompletionDate(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("CompletionDate(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
