package domain

import (
	"testing"
	"time"
)

// zeroOr parses a date or returns the zero time for "".
func zeroOr(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	return d(s)
}

func TestLastVisit(t *testing.T) {
	logs := []ActivityLog{
		{Date: d("2024-03-01"), GymName: "Boulder Base", UserName: "ayaka", Type: LogTypeCompleted},
		{Date: d("2024-03-08"), GymName: "Boulder Base", UserName: "ayaka", Type: LogTypeCompleted},
		{Date: d("2024-03-09"), GymName: "Boulder Base", UserName: "ayaka", Type: LogTypePlanned},
		{Date: d("2024-03-05"), GymName: "Crux Hall", UserName: "ayaka", Type: LogTypeCompleted},
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "ben", Type: LogTypeCompleted},
	}

	t.Run("max completed date for user and gym", func(t *testing.T) {
		got, ok := LastVisit("ayaka", "Boulder Base", logs)
		if !ok {
			t.Fatal("expected a visit")
		}
		if !got.Equal(d("2024-03-08")) {
			t.Errorf("LastVisit = %v, want 2024-03-08", got)
		}
	})

	t.Run("planned visits don't count", func(t *testing.T) {
		_, ok := LastVisit("ayaka", "Slab City", logs)
		if ok {
			t.Error("expected no visit for a gym with no completed logs")
		}
	})

	t.Run("empty logs", func(t *testing.T) {
		_, ok := LastVisit("ayaka", "Boulder Base", nil)
		if ok {
			t.Error("expected no visit with empty logs")
		}
	})
}

func TestClimbedSinceReset(t *testing.T) {
	tests := []struct {
		name      string
		lastVisit string
		visited   bool
		latestSet string
		hasSet    bool
		want      bool
	}{
		{"visit after set", "2024-03-01", true, "2024-02-28", true, true},
		{"visit on set end", "2024-02-28", true, "2024-02-28", true, true},
		{"visit before set", "2024-02-20", true, "2024-02-28", true, false},
		{"never visited", "", false, "2024-02-28", true, false},
		{"no set data", "2024-03-01", true, "", false, false},
		{"neither", "", false, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lv, ls = zeroOr(tt.lastVisit), zeroOr(tt.latestSet)
			got := ClimbedSinceReset(lv, tt.visited, ls, tt.hasSet)
			if got != tt.want {
				t.Errorf("ClimbedSinceReset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeersPlanning(t *testing.T) {
	logs := []ActivityLog{
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "ben", Type: LogTypePlanned},
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "ben", Type: LogTypePlanned}, // duplicate row
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "chie", Type: LogTypePlanned},
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "ayaka", Type: LogTypePlanned}, // excluded user
		{Date: d("2024-03-11"), GymName: "Boulder Base", UserName: "dai", Type: LogTypePlanned},   // other day
		{Date: d("2024-03-10"), GymName: "Crux Hall", UserName: "dai", Type: LogTypePlanned},      // other gym
		{Date: d("2024-03-10"), GymName: "Boulder Base", UserName: "dai", Type: LogTypeCompleted}, // not planned
	}

	// Row-count policy: ben's duplicate planned row counts twice.
	if got := PeersPlanning("Boulder Base", d("2024-03-10"), "ayaka", logs); got != 3 {
		t.Errorf("PeersPlanning() = %d, want 3", got)
	}

	if got := PeersPlanning("Boulder Base", d("2024-03-12"), "ayaka", logs); got != 0 {
		t.Errorf("PeersPlanning() on a quiet day = %d, want 0", got)
	}

	if got := PeersPlanning("Boulder Base", d("2024-03-10"), "ayaka", nil); got != 0 {
		t.Errorf("PeersPlanning() with no logs = %d, want 0", got)
	}
}
