package domain

import (
	"testing"
	"time"
)

// d parses a YYYY-MM-DD date for tests.
func d(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic("bad test date: " + s)
	}
	return t
}

func TestDateOnly_StripsTimeAndZone(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	in := time.Date(2024, 3, 10, 23, 45, 12, 999, loc)

	got := DateOnly(in)

	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly() = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     int
	}{
		{"same day", "2024-03-10", "2024-03-10", 0},
		{"one day", "2024-03-10", "2024-03-11", 1},
		{"across month", "2024-02-28", "2024-03-10", 11},
		{"negative", "2024-03-10", "2024-03-01", -9},
		{"across year", "2023-12-31", "2024-01-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(d(tt.from), d(tt.to)); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(d("2024-03-17"))
	if !got.Equal(d("2024-03-01")) {
		t.Errorf("MonthStart() = %v, want 2024-03-01", got)
	}
}

func TestSameMonth(t *testing.T) {
	if !SameMonth(d("2024-03-01"), d("2024-03-31")) {
		t.Error("SameMonth() = false for dates in the same month")
	}
	if SameMonth(d("2024-03-31"), d("2024-04-01")) {
		t.Error("SameMonth() = true for dates in adjacent months")
	}
}
