package domain

import (
	"sort"
	"time"
)

// LeaderboardEntry is one user's monthly standing.
type LeaderboardEntry struct {
	User  User `json:"user"`
	Count int  `json:"count"`
	Rank  int  `json:"rank"`
}

// MonthlyLeaderboard counts completed visits per user on or after
// monthStart and assigns competition ranks: tied counts share a rank and
// the next distinct count resumes at 1 + number of strictly better users
// (counts [5,5,3,0] rank as [1,1,3,4]). Users with no visits stay in the
// board at count zero. Ordered by rank, then user name.
func MonthlyLeaderboard(users []User, logs []ActivityLog, monthStart time.Time) []LeaderboardEntry {
	start := DateOnly(monthStart)

	counts := make(map[string]int, len(users))
	for _, u := range users {
		counts[u.Name] = 0
	}

	for _, l := range logs {
		if !l.IsCompleted() || DateOnly(l.Date).Before(start) {
			continue
		}
		if _, known := counts[l.UserName]; !known {
			// Log row for an unknown user: absorb, don't rank.
			continue
		}
		counts[l.UserName]++
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{User: u, Count: counts[u.Name]})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].User.Name < entries[j].User.Name
	})

	// Competition ranking over the sorted board.
	for i := range entries {
		if i > 0 && entries[i].Count == entries[i-1].Count {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}

	return entries
}
