package domain

import (
	"sort"
	"time"
)

// VisitedGym is a gym the user has completed at least one visit to.
type VisitedGym struct {
	Gym       Gym       `json:"gym"`
	LastVisit time.Time `json:"last_visit"`

	// NoScheduleThisMonth flags that no new-set period starts in the
	// reference month. Informational only.
	NoScheduleThisMonth bool `json:"no_schedule_this_month"`
}

// VisitSplit partitions the full gym set for one user.
type VisitSplit struct {
	Visited   []VisitedGym `json:"visited"`
	Unvisited []Gym        `json:"unvisited"`
}

// PartitionVisits splits gyms into visited (most recent first) and
// unvisited (name order) for the given user. Every gym lands in exactly
// one of the two lists.
func PartitionVisits(gyms []Gym, user string, logs []ActivityLog, schedules []Schedule, refDate time.Time) VisitSplit {
	ref := DateOnly(refDate)

	split := VisitSplit{
		Visited:   []VisitedGym{},
		Unvisited: []Gym{},
	}

	for _, gym := range gyms {
		last, visited := LastVisit(user, gym.Name, logs)
		if !visited {
			split.Unvisited = append(split.Unvisited, gym)
			continue
		}

		split.Visited = append(split.Visited, VisitedGym{
			Gym:                 gym,
			LastVisit:           last,
			NoScheduleThisMonth: !hasScheduleInMonth(gym.Name, schedules, ref),
		})
	}

	sort.Slice(split.Visited, func(i, j int) bool {
		a, b := split.Visited[i], split.Visited[j]
		if !a.LastVisit.Equal(b.LastVisit) {
			return a.LastVisit.After(b.LastVisit)
		}
		return a.Gym.Name < b.Gym.Name
	})

	sort.Slice(split.Unvisited, func(i, j int) bool {
		return split.Unvisited[i].Name < split.Unvisited[j].Name
	})

	return split
}

// hasScheduleInMonth reports whether any schedule for gym starts within
// ref's calendar month.
func hasScheduleInMonth(gym string, schedules []Schedule, ref time.Time) bool {
	for _, s := range schedules {
		if s.GymName == gym && SameMonth(s.StartDate, ref) {
			return true
		}
	}
	return false
}
